package entity

import (
	"context"
	"time"
)

// Email log statuses. pending is set before the provider call; sent/failed
// are terminal from this service's point of view; delivered/bounced/complained
// arrive later through the provider webhook.
const (
	EmailStatusPending    = "pending"
	EmailStatusSent       = "sent"
	EmailStatusFailed     = "failed"
	EmailStatusDelivered  = "delivered"
	EmailStatusBounced    = "bounced"
	EmailStatusComplained = "complained"
)

// EmailLog is the audit record of one send attempt. Exactly one row per
// attempt, created in pending state before the provider is called.
type EmailLog struct {
	ID           string            `json:"id"`
	Template     string            `json:"template"`
	EmailType    string            `json:"email_type"` // contact, media, consulting, speaking, newsletter, waitlist, resource
	Category     string            `json:"category"`   // confirmation, notification
	FromAddress  string            `json:"from_address"`
	ToAddresses  []string          `json:"to_addresses"`
	Subject      string            `json:"subject"`
	Status       string            `json:"status"`
	ProviderID   string            `json:"provider_id,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// EmailEvent is one delivery event reported by the provider webhook
// (delivered, bounced, complained), kept for auditing alongside the log row.
type EmailEvent struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	Event      string    `json:"event"`
	Payload    string    `json:"payload,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type EmailLogRepositoryInterface interface {
	Create(ctx context.Context, log *EmailLog) error
	MarkSent(ctx context.Context, id, providerID string) error
	MarkFailed(ctx context.Context, id, errorMessage string) error
	UpdateDeliveryStatus(ctx context.Context, providerID, status string) error
	InsertEvent(ctx context.Context, event *EmailEvent) error
}
