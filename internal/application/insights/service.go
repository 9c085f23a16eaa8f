package insights

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/ftorres/marketplace-insights/internal/domain/insights"
	"github.com/google/uuid"
)

// Service orchestrates insight generation use cases
type Service struct {
	insightRepo  insights.InsightRepository
	productRepo  catalog.ProductRepository
	generator    insights.GenerationService
	metrics      insights.MetricsService
	defaultModel string
	timeout      time.Duration
}

// NewService creates a new insights application service
func NewService(
	insightRepo insights.InsightRepository,
	productRepo catalog.ProductRepository,
	generator insights.GenerationService,
	metrics insights.MetricsService,
	defaultModel string,
	timeout time.Duration,
) *Service {
	return &Service{
		insightRepo:  insightRepo,
		productRepo:  productRepo,
		generator:    generator,
		metrics:      metrics,
		defaultModel: defaultModel,
		timeout:      timeout,
	}
}

// GenerateInsight runs one full generation call: validate, resolve the
// product view, build the prompt, call the model and persist the outcome.
// Inference failures do not surface as errors; they are captured in the
// returned record. Request validation and persistence failures do.
func (s *Service) GenerateInsight(ctx context.Context, req *insights.InsightRequest) (*insights.Insight, error) {
	if err := req.Validate(); err != nil {
		log.Printf("[Insights] Rejected request: %v", err)
		return nil, err
	}

	view, err := s.resolveView(ctx, req)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	prompt := insights.BuildPrompt(req.Type, view, req.Context, req.Competitors)

	log.Printf("[Insights] Generating insight: type=%s, model=%s, product=%s", req.Type, model, view.Name)
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, genErr := s.generator.Generate(genCtx, prompt, model)

	var insight *insights.Insight
	if genErr != nil {
		infErr := asInferenceError(genErr)
		log.Printf("[Insights] Generation failed: kind=%s, error=%s", infErr.Kind, infErr.Message)
		insight = insights.NewFailedInsight(req.ProductID, req.Type, model, infErr)
		s.metrics.RecordInsightFailed(string(req.Type))
	} else {
		insight, err = insights.NewInsight(req.ProductID, req.Type, text, model)
		if err != nil {
			// Blank text slipping past the adapter counts as an empty response
			insight = insights.NewFailedInsight(req.ProductID, req.Type, model, &insights.InferenceError{
				Kind:    insights.InferenceEmptyResponse,
				Message: "model returned no text",
			})
			s.metrics.RecordInsightFailed(string(req.Type))
		} else {
			s.metrics.RecordInsightGenerated(string(req.Type))
		}
	}

	if err := s.insightRepo.Create(ctx, insight); err != nil {
		log.Printf("[Insights] Failed to persist insight: %v", err)
		return nil, &insights.StorageError{Op: "save insight", Err: err}
	}

	log.Printf("[Insights] Insight stored: id=%s, failed=%t", insight.ID, insight.Failed())
	return insight, nil
}

// resolveView turns the request's product reference into a normalized view
func (s *Service) resolveView(ctx context.Context, req *insights.InsightRequest) (insights.ProductView, error) {
	if req.Inline != nil {
		return req.Inline.View(), nil
	}

	product, err := s.productRepo.GetByID(ctx, *req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			log.Printf("[Insights] Product not found: id=%s", *req.ProductID)
			return insights.ProductView{}, err
		}
		return insights.ProductView{}, &insights.StorageError{Op: "get product", Err: err}
	}

	return insights.ProductView{
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Marketplace: product.Marketplace,
	}, nil
}

// Compare generates one comparative narrative over the given products. The
// result echoes the products in input order and is never persisted.
func (s *Service) Compare(ctx context.Context, products []insights.ProductSummary, model string) (*insights.ComparisonResult, error) {
	if len(products) < 2 {
		return nil, insights.ErrTooFewProducts
	}

	if model == "" {
		model = s.defaultModel
	}

	prompt := insights.BuildComparisonPrompt(products)

	log.Printf("[Insights] Comparing %d products: model=%s", len(products), model)
	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := &insights.ComparisonResult{
		Products:    products,
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}

	text, err := s.generator.Generate(genCtx, prompt, model)
	if err != nil {
		infErr := asInferenceError(err)
		log.Printf("[Insights] Comparison failed: kind=%s, error=%s", infErr.Kind, infErr.Message)
		result.Error = infErr.Error()
	} else {
		result.Narrative = text
	}

	s.metrics.RecordComparison()
	return result, nil
}

// GetInsight retrieves an insight by ID
func (s *Service) GetInsight(ctx context.Context, id uuid.UUID) (*insights.Insight, error) {
	return s.insightRepo.GetByID(ctx, id)
}

// ListInsightsByProduct retrieves the stored insights for a product in
// creation order
func (s *Service) ListInsightsByProduct(ctx context.Context, productID uuid.UUID) ([]*insights.Insight, error) {
	return s.insightRepo.ListByProductID(ctx, productID)
}

// ListModels returns the models available on the inference endpoint. Any
// transport failure yields an empty list rather than an error: an empty
// catalog is meaningful information on its own.
func (s *Service) ListModels(ctx context.Context) []string {
	models, err := s.generator.ListModels(ctx)
	if err != nil {
		log.Printf("[Insights] Failed to list models: %v", err)
		return []string{}
	}
	return models
}

// DefaultModel exposes the configured default model name
func (s *Service) DefaultModel() string {
	return s.defaultModel
}

// asInferenceError coerces any generation failure into a typed inference
// error. Adapters already return *InferenceError; anything else is treated
// as a server-side failure.
func asInferenceError(err error) *insights.InferenceError {
	var infErr *insights.InferenceError
	if errors.As(err, &infErr) {
		return infErr
	}
	return &insights.InferenceError{Kind: insights.InferenceServerError, Message: err.Error()}
}
