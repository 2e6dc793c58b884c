package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"travelmate/internal/domain"
)

type MockPersonRepo struct {
	mock.Mock
}

func (m *MockPersonRepo) Create(ctx context.Context, p *domain.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) GetDetailsByID(ctx context.Context, id string) (*domain.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Person, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Person), args.Error(1)
}

func (m *MockPersonRepo) Update(ctx context.Context, p *domain.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) CreateWithMessage(ctx context.Context, c *domain.Chat, participantIDs []string, first *domain.Message) error {
	args := m.Called(ctx, c, participantIDs, first)
	return args.Error(0)
}

func (m *MockChatRepo) GetByID(ctx context.Context, id string) (*domain.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) GetWithRelations(ctx context.Context, id string) (*domain.Chat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) ListIntersecting(ctx context.Context, ids []string) ([]*domain.Chat, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Chat), args.Error(1)
}

func (m *MockChatRepo) ListIDsForPerson(ctx context.Context, personID string) ([]string, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) ListForChat(ctx context.Context, chatID string) ([]*domain.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) IsParticipant(ctx context.Context, chatID, personID string) (bool, error) {
	args := m.Called(ctx, chatID, personID)
	return args.Bool(0), args.Error(1)
}
