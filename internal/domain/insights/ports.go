package insights

import (
	"context"

	"github.com/google/uuid"
)

// InsightRepository defines the interface for insight persistence
type InsightRepository interface {
	Create(ctx context.Context, insight *Insight) error
	GetByID(ctx context.Context, id uuid.UUID) (*Insight, error)
	ListByProductID(ctx context.Context, productID uuid.UUID) ([]*Insight, error)
}

// GenerationService defines the interface for the model-serving endpoint.
// This is a port implemented by an adapter (e.g. Ollama).
type GenerationService interface {
	// Generate issues one non-streamed completion call. Failures are
	// returned as *InferenceError.
	Generate(ctx context.Context, prompt, model string) (string, error)
	// ListModels returns the names of the locally available models.
	ListModels(ctx context.Context) ([]string, error)
}

// MetricsService records generation outcomes
type MetricsService interface {
	RecordInsightGenerated(insightType string)
	RecordInsightFailed(insightType string)
	RecordComparison()
}
