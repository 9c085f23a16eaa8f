package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ftorres/marketplace-insights/internal/domain/insights"
	"github.com/stretchr/testify/assert"
)

func TestOllamaService_Generate(t *testing.T) {
	t.Run("sends a non-streamed request and returns the text", func(t *testing.T) {
		var captured map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/generate", r.URL.Path)
			json.NewDecoder(r.Body).Decode(&captured)
			json.NewEncoder(w).Encode(map[string]any{"response": "Recommended range: $24.99-$34.99"})
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)

		text, err := service.Generate(context.Background(), "analyze this product", "llama3.2")

		assert.NoError(t, err)
		assert.Equal(t, "Recommended range: $24.99-$34.99", text)
		assert.Equal(t, "llama3.2", captured["model"])
		assert.Equal(t, "analyze this product", captured["prompt"])
		assert.Equal(t, false, captured["stream"])
	})

	t.Run("classifies a non-success status as server_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model 'llama3.2' not found", http.StatusNotFound)
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)

		text, err := service.Generate(context.Background(), "prompt", "llama3.2")

		assert.Empty(t, text)
		var infErr *insights.InferenceError
		assert.ErrorAs(t, err, &infErr)
		assert.Equal(t, insights.InferenceServerError, infErr.Kind)
		assert.Contains(t, infErr.Message, "model 'llama3.2' not found")
	})

	t.Run("classifies a blank generated text as empty_response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"response": "   "})
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)

		_, err := service.Generate(context.Background(), "prompt", "llama3.2")

		var infErr *insights.InferenceError
		assert.ErrorAs(t, err, &infErr)
		assert.Equal(t, insights.InferenceEmptyResponse, infErr.Kind)
	})

	t.Run("classifies a malformed body as empty_response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)

		_, err := service.Generate(context.Background(), "prompt", "llama3.2")

		var infErr *insights.InferenceError
		assert.ErrorAs(t, err, &infErr)
		assert.Equal(t, insights.InferenceEmptyResponse, infErr.Kind)
	})

	t.Run("classifies an expired deadline as timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			json.NewEncoder(w).Encode(map[string]any{"response": "too late"})
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := service.Generate(ctx, "prompt", "llama3.2")

		var infErr *insights.InferenceError
		assert.ErrorAs(t, err, &infErr)
		assert.Equal(t, insights.InferenceTimeout, infErr.Kind)
	})

	t.Run("classifies a refused connection as unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // nothing listening anymore

		service := NewOllamaService(server.URL)

		_, err := service.Generate(context.Background(), "prompt", "llama3.2")

		var infErr *insights.InferenceError
		assert.ErrorAs(t, err, &infErr)
		assert.Equal(t, insights.InferenceUnreachable, infErr.Kind)
	})
}

func TestOllamaService_ListModels(t *testing.T) {
	t.Run("returns model names in server order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{
				"models": []map[string]any{
					{"name": "llama3.2"},
					{"name": "mistral"},
					{"name": "phi3:mini"},
				},
			})
		}))
		defer server.Close()

		service := NewOllamaService(server.URL)

		models, err := service.ListModels(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, []string{"llama3.2", "mistral", "phi3:mini"}, models)
	})

	t.Run("returns an error on transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		service := NewOllamaService(server.URL)

		models, err := service.ListModels(context.Background())

		assert.Error(t, err)
		assert.Nil(t, models)
	})
}
