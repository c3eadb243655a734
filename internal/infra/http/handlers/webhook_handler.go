package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

// WebhookHandler consumes delivery events from the email provider and moves
// the matching email_logs row to its post-send status. Unknown event types
// are acknowledged and ignored so the provider stops retrying them.
type WebhookHandler struct {
	Logs   entity.EmailLogRepositoryInterface
	Logger *zap.Logger
}

func NewWebhookHandler(logs entity.EmailLogRepositoryInterface, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Logs: logs, Logger: logger}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var event struct {
		RecordType string `json:"RecordType"`
		MessageID  string `json:"MessageID"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		http.Error(w, "Bad JSON", http.StatusBadRequest)
		return
	}

	var status string
	switch event.RecordType {
	case "Delivery":
		status = entity.EmailStatusDelivered
	case "Bounce":
		status = entity.EmailStatusBounced
	case "SpamComplaint":
		status = entity.EmailStatusComplained
	default:
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()

	// A non-2xx answer makes the provider redeliver the event later, so a
	// transient database failure does not lose the status transition.
	if err := h.Logs.UpdateDeliveryStatus(ctx, event.MessageID, status); err != nil {
		h.Logger.Error("failed to update delivery status",
			zap.String("provider_id", event.MessageID),
			zap.String("status", status),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.Logs.InsertEvent(ctx, &entity.EmailEvent{
		ID:         uuid.New().String(),
		ProviderID: event.MessageID,
		Event:      status,
		Payload:    string(body),
		RecordedAt: time.Now(),
	}); err != nil {
		h.Logger.Error("failed to record email event",
			zap.String("provider_id", event.MessageID),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
