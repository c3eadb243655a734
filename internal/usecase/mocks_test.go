package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rowanvale/brandsite-api/internal/entity"
	"github.com/rowanvale/brandsite-api/internal/infra/mail"
)

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockSubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Upsert(ctx context.Context, s *entity.Subscriber) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockWaitlistRepository
type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) Create(ctx context.Context, w *entity.WaitlistEntry) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

// MockResourceRepository
type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) FindBySlug(ctx context.Context, slug string) (*entity.Resource, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Resource), args.Error(1)
}

func (m *MockResourceRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResourceDownloadRepository
type MockResourceDownloadRepository struct {
	mock.Mock
}

func (m *MockResourceDownloadRepository) Create(ctx context.Context, d *entity.ResourceDownload) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockEmailDispatcher
type MockEmailDispatcher struct {
	mock.Mock
}

func (m *MockEmailDispatcher) Send(ctx context.Context, email mail.Email) (*mail.SendResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.SendResult), args.Error(1)
}

// immediateRetrier runs the send once with no backoff, so tests stay fast.
type immediateRetrier struct{}

func (immediateRetrier) Do(ctx context.Context, name string, fn func(context.Context) error) bool {
	return fn(ctx) == nil
}
