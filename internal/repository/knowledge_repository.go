package repository

import (
	"context"
	"fmt"

	"f1-monk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var knowledgeColumns = []string{"id", "question", "answer", "category"}

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

// ListAll returns every entry ordered by id, which is the match order.
func (r *KnowledgeRepository) ListAll(ctx context.Context) ([]models.KnowledgeEntry, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_entries").
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

	var entries []models.KnowledgeEntry
	for rows.Next() {
		var e models.KnowledgeEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Category); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpsertBatch inserts entries, overwriting existing rows with the same id.
func (r *KnowledgeRepository) UpsertBatch(ctx context.Context, entries []models.KnowledgeEntry) error {
	if len(entries) == 0 {
		return nil
	}

	sql, args, err := upsertKnowledgeQuery(entries).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert knowledge entries: %w", err)
	}

	r.logger.Info("Knowledge entries upserted", zap.Int("count", len(entries)))
	return nil
}

func upsertKnowledgeQuery(entries []models.KnowledgeEntry) squirrel.InsertBuilder {
	builder := squirrel.Insert("knowledge_entries").
		Columns(knowledgeColumns...).
		Suffix("ON CONFLICT (id) DO UPDATE SET question = EXCLUDED.question, answer = EXCLUDED.answer, category = EXCLUDED.category").
		PlaceholderFormat(squirrel.Dollar)

	for _, e := range entries {
		builder = builder.Values(e.ID, e.Question, e.Answer, e.Category)
	}
	return builder
}
