package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/ftorres/marketplace-insights/internal/domain/insights"
)

// OllamaService implements insights.GenerationService against a local
// Ollama server. It is stateless; every call is a single non-streamed
// request bounded by the caller's context deadline.
type OllamaService struct {
	baseURL string
	client  *http.Client
}

// NewOllamaService creates a new Ollama generation service
func NewOllamaService(baseURL string) *OllamaService {
	return &OllamaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate issues one completion call and returns the generated text.
// Failures come back as *insights.InferenceError with a distinct kind.
func (s *OllamaService) Generate(ctx context.Context, prompt, model string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &insights.InferenceError{
			Kind:    insights.InferenceServerError,
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
		}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", &insights.InferenceError{
			Kind:    insights.InferenceEmptyResponse,
			Message: "malformed response body",
		}
	}

	text := strings.TrimSpace(genResp.Response)
	if text == "" {
		return "", &insights.InferenceError{
			Kind:    insights.InferenceEmptyResponse,
			Message: "model returned no text",
		}
	}

	return text, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// ListModels returns the locally available model names in server order
func (s *OllamaService) ListModels(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &insights.InferenceError{
			Kind:    insights.InferenceServerError,
			Message: fmt.Sprintf("status %d", resp.StatusCode),
		}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, &insights.InferenceError{
			Kind:    insights.InferenceEmptyResponse,
			Message: "malformed response body",
		}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// classifyTransportError splits connection-level failures into the timeout
// and unreachable kinds
func classifyTransportError(err error) *insights.InferenceError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &insights.InferenceError{Kind: insights.InferenceTimeout, Message: err.Error()}
	}
	return &insights.InferenceError{Kind: insights.InferenceUnreachable, Message: err.Error()}
}
