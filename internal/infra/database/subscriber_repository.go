package database

import (
	"context"
	"database/sql"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) *SubscriberRepository {
	return &SubscriberRepository{DB: db}
}

// Upsert inserts the subscriber or, when the address already exists,
// refreshes the name and reactivates the subscription.
func (r *SubscriberRepository) Upsert(ctx context.Context, s *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (
			id, email, first_name, status, consented,
			referrer, user_agent,
			utm_source, utm_medium, utm_campaign, utm_term, utm_content,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			first_name = COALESCE(EXCLUDED.first_name, subscribers.first_name),
			status = 'active',
			consented = true,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		s.ID,
		s.Email,
		nullString(s.FirstName),
		s.Status,
		s.Consented,
		nullString(s.Referrer),
		nullString(s.UserAgent),
		nullString(s.UTMSource),
		nullString(s.UTMMedium),
		nullString(s.UTMCampaign),
		nullString(s.UTMTerm),
		nullString(s.UTMContent),
		s.CreatedAt,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}
