package persistence

import (
	"context"
	"errors"

	"github.com/ftorres/marketplace-insights/internal/domain/insights"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresInsightRepository implements insights.InsightRepository using PostgreSQL
type PostgresInsightRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInsightRepository creates a new PostgreSQL insight repository
func NewPostgresInsightRepository(db *pgxpool.Pool) *PostgresInsightRepository {
	return &PostgresInsightRepository{db: db}
}

var ErrInsightNotFound = errors.New("insight not found")

func (r *PostgresInsightRepository) Create(ctx context.Context, insight *insights.Insight) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO insights (id, product_id, insight_type, content, error, model, generated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		insight.ID, insight.ProductID, string(insight.Type), insight.Content,
		insight.Error, insight.Model, insight.GeneratedAt,
	)
	return err
}

func (r *PostgresInsightRepository) GetByID(ctx context.Context, id uuid.UUID) (*insights.Insight, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, product_id, insight_type, content, error, model, generated_at
         FROM insights WHERE id = $1`, id)

	insight, err := scanInsight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInsightNotFound
		}
		return nil, err
	}
	return insight, nil
}

// ListByProductID returns a product's insights in creation order
func (r *PostgresInsightRepository) ListByProductID(ctx context.Context, productID uuid.UUID) ([]*insights.Insight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, insight_type, content, error, model, generated_at
         FROM insights WHERE product_id = $1 ORDER BY generated_at, id`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*insights.Insight
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, insight)
	}
	return list, rows.Err()
}

func scanInsight(row pgx.Row) (*insights.Insight, error) {
	insight := &insights.Insight{}
	var insightType string
	err := row.Scan(
		&insight.ID, &insight.ProductID, &insightType, &insight.Content,
		&insight.Error, &insight.Model, &insight.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	insight.Type = insights.InsightType(insightType)
	return insight, nil
}
