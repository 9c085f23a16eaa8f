package insights

import (
	"fmt"
	"strings"
)

// analystPreamble sets the model's role for every single-product insight
const analystPreamble = `You are an expert market analyst specializing in e-commerce and marketplace insights.
Your role is to provide actionable, data-driven insights about products in online marketplaces.
Be concise, specific, and focus on actionable recommendations.`

// comparisonPreamble sets the model's role for product comparisons
const comparisonPreamble = `You are an expert product comparison analyst.
Provide detailed, objective comparisons between products.`

// promptTails maps each insight type to its instruction block. The set is
// closed; BuildPrompt panics on a type outside it, which ParseInsightType
// and InsightRequest.Validate rule out upstream.
var promptTails = map[InsightType]func(competitors []ProductSummary) string{
	TypeGeneral:            generalTail,
	TypeTrendAnalysis:      trendTail,
	TypePricingInsight:     pricingTail,
	TypeCompetitorAnalysis: competitorTail,
}

// BuildPrompt assembles the full prompt for one insight call. It is pure
// and deterministic: the same inputs always produce the same string.
func BuildPrompt(insightType InsightType, view ProductView, context string, competitors []ProductSummary) string {
	tail, ok := promptTails[insightType]
	if !ok {
		panic(fmt.Sprintf("unhandled insight type: %q", insightType))
	}

	var b strings.Builder
	b.WriteString(analystPreamble)
	b.WriteString("\n\n")
	b.WriteString(productFacts(view, context))
	b.WriteString("\n\n")
	b.WriteString(tail(competitors))
	return b.String()
}

// productFacts formats the product view as labeled lines, omitting absent
// optional fields. Description text passes through untruncated.
func productFacts(view ProductView, context string) string {
	lines := []string{"Product: " + view.Name}

	if view.Description != "" {
		lines = append(lines, "Description: "+view.Description)
	}
	if view.Category != "" {
		lines = append(lines, "Category: "+view.Category)
	}
	if view.Price != nil {
		lines = append(lines, fmt.Sprintf("Price: $%.2f", *view.Price))
	}
	if view.Marketplace != "" {
		lines = append(lines, "Marketplace: "+view.Marketplace)
	}
	if context != "" {
		lines = append(lines, "Additional Context: "+context)
	}

	return strings.Join(lines, "\n")
}

func generalTail([]ProductSummary) string {
	return `Provide a balanced overview of this product covering its market fit and pricing sanity.

Please provide:
1. Market overview
2. Key strengths and opportunities
3. Potential challenges
4. Improvement suggestions
5. Actionable next steps`
}

func trendTail([]ProductSummary) string {
	return `Analyze the demand trends for this product.

Please provide:
1. Demand trend direction (growing, stable, or declining)
2. Current market trends for this product
3. Seasonal patterns (if applicable)
4. Growth or decline signals
5. Key recommendations`
}

func pricingTail([]ProductSummary) string {
	return `Analyze the pricing strategy for this product.

Please provide:
1. Price competitiveness relative to category norms
2. An explicit recommended price range
3. Price positioning in the market
4. Discount opportunities
5. Value proposition assessment`
}

func competitorTail(competitors []ProductSummary) string {
	var b strings.Builder
	if len(competitors) > 0 {
		b.WriteString("Compare this product side by side against the following competitors:\n\n")
		b.WriteString(summaryLines(competitors, "Competitor"))
	} else {
		b.WriteString("Compare this product side by side against the typical competitors in its category.")
	}
	b.WriteString(`

Please provide:
1. Competitive landscape overview
2. Side-by-side comparative judgment
3. Competitive advantages and disadvantages
4. Market positioning
5. Strategic recommendations`)
	return b.String()
}

// BuildComparisonPrompt assembles one prompt listing every product in the
// given order. Order in the prompt mirrors the input slice.
func BuildComparisonPrompt(products []ProductSummary) string {
	var b strings.Builder
	b.WriteString(comparisonPreamble)
	b.WriteString("\n\nCompare the following products focusing on: price, features, quality, value\n\n")
	b.WriteString(summaryLines(products, "Product"))
	b.WriteString(`

Please provide:
1. Side-by-side comparison
2. Strengths and weaknesses of each product
3. Best value recommendation
4. Target audience for each product
5. Final recommendation`)
	return b.String()
}

// summaryLines renders numbered product summary blocks
func summaryLines(summaries []ProductSummary, label string) string {
	blocks := make([]string, 0, len(summaries))
	for i, s := range summaries {
		lines := []string{
			fmt.Sprintf("%s %d:", label, i+1),
			"Name: " + s.Name,
			fmt.Sprintf("Price: $%.2f", s.Price),
		}
		if s.Features != "" {
			lines = append(lines, "Features: "+s.Features)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
