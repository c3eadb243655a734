package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

// SubmitContactUseCase handles the four inquiry flows of the contact form:
// general, speaking, consulting and media. The pipeline is strictly ordered:
// validate, persist, then notify. No email is ever sent for a submission that
// did not reach the database, and email failures never fail the submission.
type SubmitContactUseCase struct {
	Contacts  ContactRepositoryInterface
	Mailer    EmailDispatcherInterface
	Retry     EmailRetrierInterface
	Templates *mail.Templates
	Logger    *zap.Logger
}

func NewSubmitContactUseCase(
	contacts ContactRepositoryInterface,
	mailer EmailDispatcherInterface,
	retry EmailRetrierInterface,
	templates *mail.Templates,
	logger *zap.Logger,
) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		Contacts:  contacts,
		Mailer:    mailer,
		Retry:     retry,
		Templates: templates,
		Logger:    logger,
	}
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input ContactInput) (*SubmitOutput, error) {
	if input.Type == "" {
		input.Type = entity.ContactTypeGeneral
	}

	if errs := ValidateContactInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(errs),
		}
	}

	contact := &entity.Contact{
		ID:            uuid.New().String(),
		Type:          input.Type,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Company:       input.Company,
		Message:       input.Message,
		Outlet:        input.Outlet,
		Role:          input.Role,
		Topic:         input.Topic,
		InterviewType: input.InterviewType,
		Deadline:      input.Deadline,
		BudgetRange:   input.BudgetRange,
		Timeline:      input.Timeline,
		EventName:     input.EventName,
		EventDate:     input.EventDate,
		EventBudget:   input.EventBudget,
		Attribution:   input.toEntity(),
		Status:        "new",
		CreatedAt:     time.Now(),
	}

	if err := uc.Contacts.Create(ctx, contact); err != nil {
		uc.Logger.Error("failed to persist contact",
			zap.String("type", contact.Type), zap.Error(err))
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to save your message, please try again",
		}
	}

	uc.sendEmails(ctx, contact)

	return &SubmitOutput{Success: true}, nil
}

func (uc *SubmitContactUseCase) sendEmails(ctx context.Context, contact *entity.Contact) {
	now := time.Now()

	confirmation, err := uc.Templates.ContactConfirmation(contact, now)
	if err != nil {
		uc.Logger.Error("failed to render confirmation", zap.Error(err))
	} else {
		uc.Retry.Do(ctx, confirmation.Template, func(ctx context.Context) error {
			_, err := uc.Mailer.Send(ctx, confirmation)
			return err
		})
	}

	notification, err := uc.Templates.ContactNotification(contact, now)
	if err != nil {
		uc.Logger.Error("failed to render notification", zap.Error(err))
		return
	}
	uc.Retry.Do(ctx, notification.Template, func(ctx context.Context) error {
		_, err := uc.Mailer.Send(ctx, notification)
		return err
	})
}
