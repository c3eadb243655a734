package database

import (
	"context"
	"database/sql"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type ResourceDownloadRepository struct {
	DB *sql.DB
}

func NewResourceDownloadRepository(db *sql.DB) *ResourceDownloadRepository {
	return &ResourceDownloadRepository{DB: db}
}

func (r *ResourceDownloadRepository) Create(ctx context.Context, d *entity.ResourceDownload) error {
	query := `
		INSERT INTO resource_downloads (
			id, resource_id, email, first_name,
			referrer, user_agent,
			utm_source, utm_medium, utm_campaign, utm_term, utm_content,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		d.ID,
		d.ResourceID,
		d.Email,
		d.FirstName,
		nullString(d.Referrer),
		nullString(d.UserAgent),
		nullString(d.UTMSource),
		nullString(d.UTMMedium),
		nullString(d.UTMCampaign),
		nullString(d.UTMTerm),
		nullString(d.UTMContent),
		d.CreatedAt,
	)

	return err
}
