package insights

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InsightType selects the analysis angle and its prompt template
type InsightType string

const (
	TypeGeneral            InsightType = "general"
	TypeTrendAnalysis      InsightType = "trend_analysis"
	TypePricingInsight     InsightType = "pricing_insight"
	TypeCompetitorAnalysis InsightType = "competitor_analysis"
)

// ParseInsightType maps a request string onto the closed type set.
// An empty string defaults to the general analysis.
func ParseInsightType(s string) (InsightType, error) {
	switch InsightType(s) {
	case "":
		return TypeGeneral, nil
	case TypeGeneral, TypeTrendAnalysis, TypePricingInsight, TypeCompetitorAnalysis:
		return InsightType(s), nil
	default:
		return "", &RequestError{Reason: fmt.Sprintf("unknown insight type: %q", s)}
	}
}

// Insight represents one AI-generated analysis of a product.
// Exactly one of Content and Error is set; records are never mutated
// after creation.
type Insight struct {
	ID          uuid.UUID
	ProductID   *uuid.UUID
	Type        InsightType
	Content     string
	Error       string
	Model       string
	GeneratedAt time.Time
}

// Failed reports whether this insight records a failed generation attempt
func (i *Insight) Failed() bool {
	return i.Error != ""
}

var ErrEmptyContent = errors.New("insight content is empty")

// NewInsight creates a successful insight record
func NewInsight(productID *uuid.UUID, insightType InsightType, content, model string) (*Insight, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	return &Insight{
		ID:          uuid.New(),
		ProductID:   productID,
		Type:        insightType,
		Content:     content,
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// NewFailedInsight creates a failed insight record from an inference error.
// Failed attempts are stored alongside successful ones so they stay auditable.
func NewFailedInsight(productID *uuid.UUID, insightType InsightType, model string, cause *InferenceError) *Insight {
	return &Insight{
		ID:          uuid.New(),
		ProductID:   productID,
		Type:        insightType,
		Error:       fmt.Sprintf("generation failed (%s): %s", cause.Kind, cause.Message),
		Model:       model,
		GeneratedAt: time.Now().UTC(),
	}
}

// ProductView is the normalized read-only projection the prompt builder
// consumes, whether the product came from the catalog or inline from the
// request.
type ProductView struct {
	Name        string
	Description string
	Category    string
	Price       *float64
	Marketplace string
}

// ProductSummary describes a product by name, price and free-text features.
// Used for inline ad-hoc products, competitor framing and comparisons.
type ProductSummary struct {
	Name     string
	Price    float64
	Features string
}

// View projects the summary onto the prompt builder's input shape
func (s ProductSummary) View() ProductView {
	price := s.Price
	return ProductView{
		Name:        s.Name,
		Description: s.Features,
		Price:       &price,
	}
}

// InsightRequest describes one generation call: a stored product reference
// or inline attributes, the insight type, and optional framing.
type InsightRequest struct {
	ProductID          *uuid.UUID
	Inline             *ProductSummary
	Type               InsightType
	Context            string
	IncludeCompetitors bool
	Competitors        []ProductSummary
	Model              string
}

// Validate checks the request preconditions before any model call
func (r *InsightRequest) Validate() error {
	if r.ProductID != nil && r.Inline != nil {
		return ErrAmbiguousProductRef
	}
	if r.ProductID == nil && r.Inline == nil {
		return ErrMissingProductRef
	}
	if r.Type == TypeCompetitorAnalysis && len(r.Competitors) == 0 && !r.IncludeCompetitors {
		return ErrCompetitorsRequired
	}
	return nil
}

// ComparisonResult carries the comparative narrative for an ordered set of
// products. Results are ephemeral and never persisted; the input order is
// preserved in Products.
type ComparisonResult struct {
	Products    []ProductSummary
	Narrative   string
	Error       string
	Model       string
	GeneratedAt time.Time
}

// Failed reports whether the comparison attempt failed
func (r *ComparisonResult) Failed() bool {
	return r.Error != ""
}
