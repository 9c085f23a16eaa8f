package http

import (
	"encoding/json"
	"log"
	"net/http"

	appInsights "github.com/ftorres/marketplace-insights/internal/application/insights"
	"github.com/ftorres/marketplace-insights/internal/domain/insights"
	"github.com/google/uuid"
)

// MetricsReader exposes the collected generation counters
type MetricsReader interface {
	GetMetrics() map[string]int64
}

// InsightsHandlers handles HTTP requests for insight operations
type InsightsHandlers struct {
	insightsService *appInsights.Service
	metrics         MetricsReader
}

// NewInsightsHandlers creates new insights HTTP handlers
func NewInsightsHandlers(insightsService *appInsights.Service, metrics MetricsReader) *InsightsHandlers {
	return &InsightsHandlers{
		insightsService: insightsService,
		metrics:         metrics,
	}
}

type ProductSummaryPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Features string  `json:"features"`
}

type GenerateInsightRequest struct {
	ProductID          string                  `json:"product_id"`
	ProductName        string                  `json:"product_name"`
	ProductPrice       float64                 `json:"product_price"`
	Features           string                  `json:"features"`
	InsightType        string                  `json:"insight_type"`
	Context            string                  `json:"context"`
	IncludeCompetitors bool                    `json:"include_competitors"`
	Competitors        []ProductSummaryPayload `json:"competitors"`
	Model              string                  `json:"model"`
}

type InsightResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id,omitempty"`
	InsightType string `json:"insight_type"`
	Content     string `json:"content,omitempty"`
	Error       string `json:"error,omitempty"`
	Model       string `json:"model"`
	GeneratedAt string `json:"generated_at"`
	Success     bool   `json:"success"`
}

func toInsightResponse(insight *insights.Insight) InsightResponse {
	resp := InsightResponse{
		ID:          insight.ID.String(),
		InsightType: string(insight.Type),
		Content:     insight.Content,
		Error:       insight.Error,
		Model:       insight.Model,
		GeneratedAt: insight.GeneratedAt.Format("2006-01-02T15:04:05Z"),
		Success:     !insight.Failed(),
	}
	if insight.ProductID != nil {
		resp.ProductID = insight.ProductID.String()
	}
	return resp
}

func toSummaries(payloads []ProductSummaryPayload) []insights.ProductSummary {
	summaries := make([]insights.ProductSummary, 0, len(payloads))
	for _, p := range payloads {
		summaries = append(summaries, insights.ProductSummary{
			Name:     p.Name,
			Price:    p.Price,
			Features: p.Features,
		})
	}
	return summaries
}

func (h *InsightsHandlers) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	var payload GenerateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Printf("[GenerateInsight] Invalid request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	insightType, err := insights.ParseInsightType(payload.InsightType)
	if err != nil {
		writeError(w, err)
		return
	}

	req := &insights.InsightRequest{
		Type:               insightType,
		Context:            payload.Context,
		IncludeCompetitors: payload.IncludeCompetitors,
		Competitors:        toSummaries(payload.Competitors),
		Model:              payload.Model,
	}

	if payload.ProductID != "" {
		id, err := uuid.Parse(payload.ProductID)
		if err != nil {
			http.Error(w, "invalid product_id", http.StatusBadRequest)
			return
		}
		req.ProductID = &id
	}
	if payload.ProductName != "" {
		req.Inline = &insights.ProductSummary{
			Name:     payload.ProductName,
			Price:    payload.ProductPrice,
			Features: payload.Features,
		}
	}

	insight, err := h.insightsService.GenerateInsight(r.Context(), req)
	if err != nil {
		log.Printf("[GenerateInsight] Failed: %v", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toInsightResponse(insight))
}

func (h *InsightsHandlers) GetProductInsights(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Path[len("/api/insights/product/"):]
	if idStr == "" {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	productID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	log.Printf("[GetProductInsights] Fetching insights: product_id=%s", productID)
	list, err := h.insightsService.ListInsightsByProduct(r.Context(), productID)
	if err != nil {
		log.Printf("[GetProductInsights] Failed: %v", err)
		writeError(w, err)
		return
	}

	responses := make([]InsightResponse, 0, len(list))
	for _, insight := range list {
		responses = append(responses, toInsightResponse(insight))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"product_id": productID.String(),
		"insights":   responses,
		"count":      len(responses),
	})
}

type CompareRequest struct {
	Products []ProductSummaryPayload `json:"products"`
	Model    string                  `json:"model"`
}

type ComparisonResponse struct {
	Products    []ProductSummaryPayload `json:"products"`
	Narrative   string                  `json:"narrative,omitempty"`
	Error       string                  `json:"error,omitempty"`
	Model       string                  `json:"model"`
	GeneratedAt string                  `json:"generated_at"`
	Success     bool                    `json:"success"`
}

func (h *InsightsHandlers) CompareProducts(w http.ResponseWriter, r *http.Request) {
	var payload CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.insightsService.Compare(r.Context(), toSummaries(payload.Products), payload.Model)
	if err != nil {
		log.Printf("[CompareProducts] Failed: %v", err)
		writeError(w, err)
		return
	}

	echoed := make([]ProductSummaryPayload, 0, len(result.Products))
	for _, s := range result.Products {
		echoed = append(echoed, ProductSummaryPayload{Name: s.Name, Price: s.Price, Features: s.Features})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComparisonResponse{
		Products:    echoed,
		Narrative:   result.Narrative,
		Error:       result.Error,
		Model:       result.Model,
		GeneratedAt: result.GeneratedAt.Format("2006-01-02T15:04:05Z"),
		Success:     !result.Failed(),
	})
}

func (h *InsightsHandlers) ListModels(w http.ResponseWriter, r *http.Request) {
	models := h.insightsService.ListModels(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"models":        models,
		"current_model": h.insightsService.DefaultModel(),
	})
}

func (h *InsightsHandlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.metrics.GetMetrics())
}
