package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

// DownloadResourceUseCase records a resource download, bumps the resource's
// download counter and emails the submitter the file link. The counter bump
// is at-least-once: a failure after the download row is persisted is logged
// and the request still succeeds.
type DownloadResourceUseCase struct {
	Resources ResourceRepositoryInterface
	Downloads ResourceDownloadRepositoryInterface
	Mailer    EmailDispatcherInterface
	Retry     EmailRetrierInterface
	Templates *mail.Templates
	Logger    *zap.Logger
}

func NewDownloadResourceUseCase(
	resources ResourceRepositoryInterface,
	downloads ResourceDownloadRepositoryInterface,
	mailer EmailDispatcherInterface,
	retry EmailRetrierInterface,
	templates *mail.Templates,
	logger *zap.Logger,
) *DownloadResourceUseCase {
	return &DownloadResourceUseCase{
		Resources: resources,
		Downloads: downloads,
		Mailer:    mailer,
		Retry:     retry,
		Templates: templates,
		Logger:    logger,
	}
}

func (uc *DownloadResourceUseCase) Execute(ctx context.Context, input DownloadResourceInput) (*DownloadResourceOutput, error) {
	if errs := ValidateDownloadResourceInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	resource, err := uc.Resources.FindBySlug(ctx, input.ResourceSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &DomainError{
				Code:    "RESOURCE_NOT_FOUND",
				Message: "resource not found",
			}
		}
		uc.Logger.Error("failed to look up resource",
			zap.String("slug", input.ResourceSlug), zap.Error(err))
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to process the download, please try again",
		}
	}

	download := &entity.ResourceDownload{
		ID:          uuid.New().String(),
		ResourceID:  resource.ID,
		Email:       input.Email,
		FirstName:   input.FirstName,
		Attribution: input.toEntity(),
		CreatedAt:   time.Now(),
	}

	if err := uc.Downloads.Create(ctx, download); err != nil {
		uc.Logger.Error("failed to persist resource download",
			zap.String("resource", resource.Slug), zap.Error(err))
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to process the download, please try again",
		}
	}

	if err := uc.Resources.IncrementDownloadCount(ctx, resource.ID); err != nil {
		// The lead row is already saved; a stale counter is acceptable.
		uc.Logger.Warn("failed to increment download count",
			zap.String("resource", resource.Slug), zap.Error(err))
	}

	now := time.Now()

	delivery, err := uc.Templates.ResourceDelivery(resource, download, now)
	if err != nil {
		uc.Logger.Error("failed to render resource delivery email", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, delivery.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, delivery)
			return err
		})
	}

	notification, err := uc.Templates.SignupNotification(
		"resource", download.Email, download.FirstName, resource.Title, download.UTMSource, now)
	if err != nil {
		uc.Logger.Error("failed to render signup notification", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, notification.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, notification)
			return err
		})
	}

	return &DownloadResourceOutput{Success: true, FileURL: resource.FileURL}, nil
}
