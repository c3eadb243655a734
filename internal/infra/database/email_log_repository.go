package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type EmailLogRepository struct {
	DB *sql.DB
}

func NewEmailLogRepository(db *sql.DB) *EmailLogRepository {
	return &EmailLogRepository{DB: db}
}

func (r *EmailLogRepository) Create(ctx context.Context, log *entity.EmailLog) error {
	metadata, err := json.Marshal(log.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO email_logs (
			id, template, email_type, category,
			from_address, to_addresses, subject,
			status, metadata, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		log.ID,
		log.Template,
		log.EmailType,
		log.Category,
		log.FromAddress,
		pq.Array(log.ToAddresses),
		log.Subject,
		log.Status,
		metadata,
		log.CreatedAt,
		log.UpdatedAt,
	)

	return err
}

func (r *EmailLogRepository) MarkSent(ctx context.Context, id, providerID string) error {
	query := `
		UPDATE email_logs
		SET status = $2, provider_id = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, entity.EmailStatusSent, providerID)
	return err
}

func (r *EmailLogRepository) MarkFailed(ctx context.Context, id, errorMessage string) error {
	query := `
		UPDATE email_logs
		SET status = $2, error_message = $3, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id, entity.EmailStatusFailed, errorMessage)
	return err
}

// UpdateDeliveryStatus records a provider webhook event (delivered, bounced,
// complained) against the row that sent the message.
func (r *EmailLogRepository) UpdateDeliveryStatus(ctx context.Context, providerID, status string) error {
	query := `
		UPDATE email_logs
		SET status = $2, updated_at = NOW()
		WHERE provider_id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, providerID, status)
	return err
}

func (r *EmailLogRepository) InsertEvent(ctx context.Context, event *entity.EmailEvent) error {
	query := `
		INSERT INTO email_events (id, provider_id, event, payload, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		event.ID,
		event.ProviderID,
		event.Event,
		nullString(event.Payload),
		event.RecordedAt,
	)
	return err
}
