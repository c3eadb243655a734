package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

// SubscribeNewsletterUseCase records a newsletter signup. Re-subscribing with
// the same address updates the existing row instead of duplicating it.
type SubscribeNewsletterUseCase struct {
	Subscribers SubscriberRepositoryInterface
	Mailer      EmailDispatcherInterface
	Retry       EmailRetrierInterface
	Templates   *mail.Templates
	Logger      *zap.Logger
}

func NewSubscribeNewsletterUseCase(
	subscribers SubscriberRepositoryInterface,
	mailer EmailDispatcherInterface,
	retry EmailRetrierInterface,
	templates *mail.Templates,
	logger *zap.Logger,
) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{
		Subscribers: subscribers,
		Mailer:      mailer,
		Retry:       retry,
		Templates:   templates,
		Logger:      logger,
	}
}

func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, input NewsletterInput) (*SubmitOutput, error) {
	if errs := ValidateNewsletterInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	subscriber := &entity.Subscriber{
		ID:          uuid.New().String(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		Status:      "active",
		Consented:   true,
		Attribution: input.toEntity(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.Subscribers.Upsert(ctx, subscriber); err != nil {
		uc.Logger.Error("failed to persist subscriber", zap.Error(err))
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to subscribe, please try again",
		}
	}

	now := time.Now()

	welcome, err := uc.Templates.NewsletterWelcome(subscriber, now)
	if err != nil {
		uc.Logger.Error("failed to render welcome email", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, welcome.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, welcome)
			return err
		})
	}

	notification, err := uc.Templates.SignupNotification(
		"newsletter", subscriber.Email, subscriber.FirstName, "", subscriber.UTMSource, now)
	if err != nil {
		uc.Logger.Error("failed to render signup notification", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, notification.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, notification)
			return err
		})
	}

	return &SubmitOutput{Success: true}, nil
}
