package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

type fakeEmailLogRepo struct {
	statusUpdates   map[string]string
	events          []*entity.EmailEvent
	updateStatusErr error
	insertEventErr  error
}

func newFakeEmailLogRepo() *fakeEmailLogRepo {
	return &fakeEmailLogRepo{statusUpdates: make(map[string]string)}
}

func (r *fakeEmailLogRepo) Create(ctx context.Context, log *entity.EmailLog) error { return nil }
func (r *fakeEmailLogRepo) MarkSent(ctx context.Context, id, providerID string) error {
	return nil
}
func (r *fakeEmailLogRepo) MarkFailed(ctx context.Context, id, errorMessage string) error {
	return nil
}

func (r *fakeEmailLogRepo) UpdateDeliveryStatus(ctx context.Context, providerID, status string) error {
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	r.statusUpdates[providerID] = status
	return nil
}

func (r *fakeEmailLogRepo) InsertEvent(ctx context.Context, event *entity.EmailEvent) error {
	if r.insertEventErr != nil {
		return r.insertEventErr
	}
	r.events = append(r.events, event)
	return nil
}

func postWebhook(h *WebhookHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/email", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestWebhookHandlerDelivery(t *testing.T) {
	repo := newFakeEmailLogRepo()
	h := NewWebhookHandler(repo, zap.NewNop())

	rec := postWebhook(h, `{"RecordType":"Delivery","MessageID":"pm-123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.EmailStatusDelivered, repo.statusUpdates["pm-123"])
	require.Len(t, repo.events, 1)
	assert.Equal(t, "pm-123", repo.events[0].ProviderID)
	assert.Equal(t, entity.EmailStatusDelivered, repo.events[0].Event)
}

func TestWebhookHandlerBounce(t *testing.T) {
	repo := newFakeEmailLogRepo()
	h := NewWebhookHandler(repo, zap.NewNop())

	rec := postWebhook(h, `{"RecordType":"Bounce","MessageID":"pm-456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.EmailStatusBounced, repo.statusUpdates["pm-456"])
}

func TestWebhookHandlerIgnoresUnknownEvents(t *testing.T) {
	repo := newFakeEmailLogRepo()
	h := NewWebhookHandler(repo, zap.NewNop())

	rec := postWebhook(h, `{"RecordType":"Open","MessageID":"pm-789"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.statusUpdates)
	assert.Empty(t, repo.events)
}

func TestWebhookHandlerStorageFailureTriggersRedelivery(t *testing.T) {
	repo := newFakeEmailLogRepo()
	repo.updateStatusErr = errors.New("db down")
	h := NewWebhookHandler(repo, zap.NewNop())

	rec := postWebhook(h, `{"RecordType":"Delivery","MessageID":"pm-123"}`)

	// Non-2xx so the provider retries the event instead of dropping it.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, repo.events)
}

func TestWebhookHandlerEventInsertFailureTriggersRedelivery(t *testing.T) {
	repo := newFakeEmailLogRepo()
	repo.insertEventErr = errors.New("db down")
	h := NewWebhookHandler(repo, zap.NewNop())

	rec := postWebhook(h, `{"RecordType":"Bounce","MessageID":"pm-456"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWebhookHandlerBadJSON(t *testing.T) {
	h := NewWebhookHandler(newFakeEmailLogRepo(), zap.NewNop())

	rec := postWebhook(h, `{broken`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
