package database

import (
	"context"
	"database/sql"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type ResourceRepository struct {
	DB *sql.DB
}

func NewResourceRepository(db *sql.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

func (r *ResourceRepository) FindBySlug(ctx context.Context, slug string) (*entity.Resource, error) {
	query := `
		SELECT id, slug, title, file_url, download_count, created_at
		FROM resources
		WHERE slug = $1
	`

	res := &entity.Resource{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&res.ID,
		&res.Slug,
		&res.Title,
		&res.FileURL,
		&res.DownloadCount,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// IncrementDownloadCount bumps the counter atomically in SQL, so concurrent
// downloads of the same resource never under-count each other.
func (r *ResourceRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	query := `UPDATE resources SET download_count = download_count + 1 WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
