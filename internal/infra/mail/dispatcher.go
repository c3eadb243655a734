package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

// ErrUnloggedSend means the pending email_logs row could not be written.
// The send is aborted in that case: an unlogged email is worse than a
// dropped one.
var ErrUnloggedSend = errors.New("mail: failed to create email log row")

// Dispatcher sends one email per call and records every attempt in the
// email_logs table: a pending row before the provider call, updated to sent
// or failed after. Not idempotent - each call is a new attempt and a new row.
type Dispatcher struct {
	provider Provider
	logs     entity.EmailLogRepositoryInterface
	from     string
	replyTo  string
	logger   *zap.Logger
}

func NewDispatcher(provider Provider, logs entity.EmailLogRepositoryInterface, from, replyTo string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		provider: provider,
		logs:     logs,
		from:     from,
		replyTo:  replyTo,
		logger:   logger,
	}
}

func (d *Dispatcher) Send(ctx context.Context, email Email) (*SendResult, error) {
	if len(email.To) == 0 {
		return nil, fmt.Errorf("mail: no recipients for template %s", email.Template)
	}
	if email.ReplyTo == "" {
		email.ReplyTo = d.replyTo
	}

	row := &entity.EmailLog{
		ID:          uuid.New().String(),
		Template:    email.Template,
		EmailType:   email.EmailType,
		Category:    email.Category,
		FromAddress: d.from,
		ToAddresses: email.To,
		Subject:     email.Subject,
		Status:      entity.EmailStatusPending,
		Metadata:    email.Metadata,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := d.logs.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnloggedSend, err)
	}

	providerID, err := d.provider.Send(ctx, d.from, email)
	if err != nil {
		recordEmailSend(email.EmailType, email.Category, entity.EmailStatusFailed)
		if uerr := d.logs.MarkFailed(ctx, row.ID, err.Error()); uerr != nil {
			recordLogUpdateFailure("mark_failed")
			d.logger.Error("failed to mark email log as failed",
				zap.String("log_id", row.ID), zap.Error(uerr))
		}
		return nil, fmt.Errorf("send %s: %w", email.Template, err)
	}

	recordEmailSend(email.EmailType, email.Category, entity.EmailStatusSent)
	if uerr := d.logs.MarkSent(ctx, row.ID, providerID); uerr != nil {
		d.logger.Error("failed to mark email log as sent",
			zap.String("log_id", row.ID), zap.String("provider_id", providerID), zap.Error(uerr))
		// One more shot, then park the row as failed so it never stays
		// pending. The failure message keeps the provider id for repair.
		if uerr = d.logs.MarkSent(ctx, row.ID, providerID); uerr != nil {
			recordLogUpdateFailure("mark_sent")
			if ferr := d.logs.MarkFailed(ctx, row.ID,
				fmt.Sprintf("sent with provider id %s but status update failed: %v", providerID, uerr)); ferr != nil {
				recordLogUpdateFailure("mark_failed")
				d.logger.Error("email log row stuck in pending",
					zap.String("log_id", row.ID), zap.Error(ferr))
			}
		}
	}

	return &SendResult{ProviderID: providerID, LogID: row.ID}, nil
}
