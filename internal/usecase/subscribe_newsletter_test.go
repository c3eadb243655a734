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

func newNewsletterUseCase(subscribers *MockSubscriberRepository, mailer *MockEmailDispatcher) *SubscribeNewsletterUseCase {
	return NewSubscribeNewsletterUseCase(
		subscribers,
		mailer,
		immediateRetrier{},
		mail.NewTemplates("example.com", "owner@example.com"),
		zap.NewNop(),
	)
}

func TestSubscribeNewsletterSuccess(t *testing.T) {
	subscribers := new(MockSubscriberRepository)
	mailer := new(MockEmailDispatcher)

	var persisted *entity.Subscriber
	subscribers.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*entity.Subscriber)
		}).
		Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(&mail.SendResult{}, nil)

	uc := newNewsletterUseCase(subscribers, mailer)
	output, err := uc.Execute(context.Background(), NewsletterInput{
		Email:     "reader@example.com",
		FirstName: "Riley",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "active", persisted.Status)
	assert.True(t, persisted.Consented)
	mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestSubscribeNewsletterValidationError(t *testing.T) {
	subscribers := new(MockSubscriberRepository)
	mailer := new(MockEmailDispatcher)

	uc := newNewsletterUseCase(subscribers, mailer)
	_, err := uc.Execute(context.Background(), NewsletterInput{Email: "nope"})

	require.Error(t, err)
	assert.True(t, IsDomainError(err))
	subscribers.AssertNotCalled(t, "Upsert")
	mailer.AssertNotCalled(t, "Send")
}

func TestSubscribeNewsletterPersistenceFailure(t *testing.T) {
	subscribers := new(MockSubscriberRepository)
	mailer := new(MockEmailDispatcher)

	subscribers.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

	uc := newNewsletterUseCase(subscribers, mailer)
	_, err := uc.Execute(context.Background(), NewsletterInput{Email: "reader@example.com"})

	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	mailer.AssertNotCalled(t, "Send")
}
