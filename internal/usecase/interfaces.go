package usecase

import (
	"context"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Contact) error
}

type SubscriberRepositoryInterface interface {
	Upsert(ctx context.Context, s *entity.Subscriber) error
}

type WaitlistRepositoryInterface interface {
	Create(ctx context.Context, w *entity.WaitlistEntry) error
}

type ResourceRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Resource, error)
	IncrementDownloadCount(ctx context.Context, id string) error
}

type ResourceDownloadRepositoryInterface interface {
	Create(ctx context.Context, d *entity.ResourceDownload) error
}

type EmailDispatcherInterface interface {
	Send(ctx context.Context, email mail.Email) (*mail.SendResult, error)
}

type EmailRetrierInterface interface {
	Do(ctx context.Context, name string, fn func(context.Context) error) bool
}
