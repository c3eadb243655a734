package database

import (
	"context"
	"database/sql"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type WaitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

func (r *WaitlistRepository) Create(ctx context.Context, w *entity.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist (
			id, email, first_name, last_name, product, status,
			referrer, user_agent,
			utm_source, utm_medium, utm_campaign, utm_term, utm_content,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		w.ID,
		w.Email,
		w.FirstName,
		nullString(w.LastName),
		nullString(w.Product),
		w.Status,
		nullString(w.Referrer),
		nullString(w.UserAgent),
		nullString(w.UTMSource),
		nullString(w.UTMMedium),
		nullString(w.UTMCampaign),
		nullString(w.UTMTerm),
		nullString(w.UTMContent),
		w.CreatedAt,
	)

	return err
}
