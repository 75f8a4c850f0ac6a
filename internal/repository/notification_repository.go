package repository

import (
	"context"

	"f1-monk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// NotificationRepository reads externally supplied alerts. Rows with a NULL
// user_id are broadcast to every student.
type NotificationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewNotificationRepository(db *pgxpool.Pool, logger *zap.Logger) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	sql, args, err := listNotificationsQuery(userID).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		var priority string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &priority, &n.CreatedAt, &n.IsRead); err != nil {
			return nil, err
		}
		n.Priority = models.ParsePriority(priority)
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CreateBatch inserts broadcast notifications, skipping ids that already exist.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	builder := squirrel.Insert("notifications").
		Columns("id", "title", "content", "priority", "created_at", "is_read").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, n := range notifications {
		builder = builder.Values(n.ID, n.Title, n.Content, string(n.Priority), n.CreatedAt, n.IsRead)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func listNotificationsQuery(userID string) squirrel.SelectBuilder {
	return squirrel.Select("id", "title", "content", "priority", "created_at", "is_read").
		From("notifications").
		Where(squirrel.Or{
			squirrel.Eq{"user_id": userID},
			squirrel.Eq{"user_id": nil},
		}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
}
