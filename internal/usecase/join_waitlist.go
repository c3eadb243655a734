package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

type JoinWaitlistUseCase struct {
	Waitlist  WaitlistRepositoryInterface
	Mailer    EmailDispatcherInterface
	Retry     EmailRetrierInterface
	Templates *mail.Templates
	Logger    *zap.Logger
}

func NewJoinWaitlistUseCase(
	waitlist WaitlistRepositoryInterface,
	mailer EmailDispatcherInterface,
	retry EmailRetrierInterface,
	templates *mail.Templates,
	logger *zap.Logger,
) *JoinWaitlistUseCase {
	return &JoinWaitlistUseCase{
		Waitlist:  waitlist,
		Mailer:    mailer,
		Retry:     retry,
		Templates: templates,
		Logger:    logger,
	}
}

func (uc *JoinWaitlistUseCase) Execute(ctx context.Context, input WaitlistInput) (*SubmitOutput, error) {
	if errs := ValidateWaitlistInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	entry := &entity.WaitlistEntry{
		ID:          uuid.New().String(),
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Product:     input.Product,
		Status:      "pending",
		Attribution: input.toEntity(),
		CreatedAt:   time.Now(),
	}

	if err := uc.Waitlist.Create(ctx, entry); err != nil {
		uc.Logger.Error("failed to persist waitlist entry", zap.Error(err))
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to join the waitlist, please try again",
		}
	}

	now := time.Now()

	confirmation, err := uc.Templates.WaitlistConfirmation(entry, now)
	if err != nil {
		uc.Logger.Error("failed to render waitlist confirmation", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, confirmation.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, confirmation)
			return err
		})
	}

	notification, err := uc.Templates.SignupNotification(
		"waitlist", entry.Email, entry.FirstName, entry.Product, entry.UTMSource, now)
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
