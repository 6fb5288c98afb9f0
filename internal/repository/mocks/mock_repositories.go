package mocks

import (
	"context"
	"time"

	"loyaltyapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDocumentTypeRepository struct {
	mock.Mock
}

func (m *MockDocumentTypeRepository) FindByCode(ctx context.Context, code string) (*model.DocumentType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentType), args.Error(1)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByTypeAndNumber(ctx context.Context, documentTypeID int64, documentNumber string) (*model.Client, error) {
	args := m.Called(ctx, documentTypeID, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) FindSince(ctx context.Context, since time.Time) ([]model.Purchase, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}
