package repository

import (
	"context"
	"errors"

	"f1-monk/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var profileColumns = []string{
	"id", "name", "email", "university", "major", "program_level",
	"program_start_date", "program_end_date", "i20_expiry_date",
	"has_opt_applied", "is_sevis_active", "visa_expiry_date",
	"notifications_enabled", "reminder_days_threshold", "updated_at",
}

type ProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	query := squirrel.Select(profileColumns...).
		From("user_profiles").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.UserProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&p.ID, &p.Name, &p.Email, &p.University, &p.Major, &p.ProgramLevel,
		&p.ProgramStartDate, &p.ProgramEndDate, &p.I20ExpiryDate,
		&p.HasOptApplied, &p.IsSevisActive, &p.VisaExpiryDate,
		&p.NotificationsEnabled, &p.ReminderDaysThreshold, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Upsert writes the whole profile, replacing any stored version.
func (r *ProfileRepository) Upsert(ctx context.Context, p *models.UserProfile) error {
	sql, args, err := upsertProfileQuery(p).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func upsertProfileQuery(p *models.UserProfile) squirrel.InsertBuilder {
	return squirrel.Insert("user_profiles").
		Columns(profileColumns...).
		Values(
			p.ID, p.Name, p.Email, p.University, p.Major, p.ProgramLevel,
			p.ProgramStartDate, p.ProgramEndDate, p.I20ExpiryDate,
			p.HasOptApplied, p.IsSevisActive, p.VisaExpiryDate,
			p.NotificationsEnabled, p.ReminderDaysThreshold, p.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"name = EXCLUDED.name, email = EXCLUDED.email, university = EXCLUDED.university, " +
			"major = EXCLUDED.major, program_level = EXCLUDED.program_level, " +
			"program_start_date = EXCLUDED.program_start_date, program_end_date = EXCLUDED.program_end_date, " +
			"i20_expiry_date = EXCLUDED.i20_expiry_date, has_opt_applied = EXCLUDED.has_opt_applied, " +
			"is_sevis_active = EXCLUDED.is_sevis_active, visa_expiry_date = EXCLUDED.visa_expiry_date, " +
			"notifications_enabled = EXCLUDED.notifications_enabled, " +
			"reminder_days_threshold = EXCLUDED.reminder_days_threshold, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar)
}
