package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

func newContactUseCase(contacts *MockContactRepository, mailer *MockEmailDispatcher) *SubmitContactUseCase {
	return NewSubmitContactUseCase(
		contacts,
		mailer,
		immediateRetrier{},
		mail.NewTemplates("example.com", "owner@example.com"),
		zap.NewNop(),
	)
}

func TestSubmitContactSuccess(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	var persisted *entity.Contact
	contacts.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Contact)
		}).
		Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(&mail.SendResult{ProviderID: "pm-1", LogID: "log-1"}, nil)

	uc := newContactUseCase(contacts, mailer)
	output, err := uc.Execute(context.Background(), ContactInput{
		Type:      "general",
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)

	require.NotNil(t, persisted)
	assert.Equal(t, "new", persisted.Status)
	assert.Equal(t, entity.ContactTypeGeneral, persisted.Type)
	assert.NotEmpty(t, persisted.ID)

	// confirmation to the submitter, notification to the owner
	mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubmitContactDefaultsToGeneral(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	var persisted *entity.Contact
	contacts.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Contact)
		}).
		Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(&mail.SendResult{}, nil)

	uc := newContactUseCase(contacts, mailer)
	_, err := uc.Execute(context.Background(), ContactInput{
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ContactTypeGeneral, persisted.Type)
}

func TestSubmitContactUTMRoundTrip(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	var persisted *entity.Contact
	contacts.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Contact)
		}).
		Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(&mail.SendResult{}, nil)

	uc := newContactUseCase(contacts, mailer)
	_, err := uc.Execute(context.Background(), ContactInput{
		Type:      "general",
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
		AttributionInput: AttributionInput{
			UTM: `{"utm_source":"x","utm_medium":"y"}`,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "x", persisted.UTMSource)
	assert.Equal(t, "y", persisted.UTMMedium)
	assert.Empty(t, persisted.UTMCampaign)
	assert.Empty(t, persisted.UTMTerm)
	assert.Empty(t, persisted.UTMContent)
}

func TestSubmitContactValidationErrorHasNoSideEffects(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	uc := newContactUseCase(contacts, mailer)
	_, err := uc.Execute(context.Background(), ContactInput{
		Type:      "general",
		FirstName: "Alex",
		// no email, no message
	})

	require.Error(t, err)
	assert.True(t, IsDomainError(err))
	contacts.AssertNotCalled(t, "Create")
	mailer.AssertNotCalled(t, "Send")
}

func TestSubmitContactPersistenceFailureSendsNoEmail(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	contacts.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	uc := newContactUseCase(contacts, mailer)
	_, err := uc.Execute(context.Background(), ContactInput{
		Type:      "general",
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
	})

	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	// The raw database error never reaches the caller.
	assert.NotContains(t, err.Error(), "connection refused")
	mailer.AssertNotCalled(t, "Send")
}

func TestSubmitContactEmailFailureStillSucceeds(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	contacts.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(nil, errors.New("provider down"))

	uc := newContactUseCase(contacts, mailer)
	output, err := uc.Execute(context.Background(), ContactInput{
		Type:      "general",
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
}

func TestSubmitContactMediaSendsUrgentConfirmation(t *testing.T) {
	contacts := new(MockContactRepository)
	mailer := new(MockEmailDispatcher)

	contacts.On("Create", mock.Anything, mock.Anything).Return(nil)

	var sent []mail.Email
	mailer.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = append(sent, args.Get(1).(mail.Email))
		}).
		Return(&mail.SendResult{}, nil)

	uc := newContactUseCase(contacts, mailer)
	_, err := uc.Execute(context.Background(), ContactInput{
		Type:          "media",
		FirstName:     "Dana",
		LastName:      "Reeves",
		Email:         "dana@outlet.example",
		Outlet:        "Forbes",
		Role:          "Reporter",
		Topic:         "Creator economy",
		InterviewType: "video",
	})

	require.NoError(t, err)
	require.Len(t, sent, 2)
	assert.Equal(t, mail.CategoryConfirmation, sent[0].Category)
	assert.Equal(t, "media_confirmation", sent[0].Template)
	assert.Equal(t, mail.CategoryNotification, sent[1].Category)
	assert.Equal(t, []string{"owner@example.com"}, sent[1].To)
}
