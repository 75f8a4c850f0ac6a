package repository

import (
	"context"
	"fmt"

	"f1-monk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var analyticsColumns = []string{"id", "question", "category", "count", "last_asked_at"}

// AnalyticsRepository is the durable sink for question analytics.
type AnalyticsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAnalyticsRepository(db *pgxpool.Pool, logger *zap.Logger) *AnalyticsRepository {
	return &AnalyticsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AnalyticsRepository) ListAll(ctx context.Context) ([]models.QuestionAnalytics, error) {
	query := squirrel.Select(analyticsColumns...).
		From("question_analytics").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.QuestionAnalytics
	for rows.Next() {
		var a models.QuestionAnalytics
		if err := rows.Scan(&a.ID, &a.Question, &a.Category, &a.Count, &a.LastAskedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// UpsertBatch stores the latest count and timestamp per question.
func (r *AnalyticsRepository) UpsertBatch(ctx context.Context, records []models.QuestionAnalytics) error {
	if len(records) == 0 {
		return nil
	}

	sql, args, err := upsertAnalyticsQuery(records).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert analytics: %w", err)
	}
	return nil
}

func upsertAnalyticsQuery(records []models.QuestionAnalytics) squirrel.InsertBuilder {
	builder := squirrel.Insert("question_analytics").
		Columns(analyticsColumns...).
		Suffix("ON CONFLICT (id) DO UPDATE SET count = EXCLUDED.count, last_asked_at = EXCLUDED.last_asked_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, a := range records {
		builder = builder.Values(a.ID, a.Question, a.Category, a.Count, a.LastAskedAt)
	}
	return builder
}
