package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"loyaltyapi/internal/service"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Find(ctx context.Context, documentTypeCode, documentNumber string) (*service.ClientProfile, error) {
	args := m.Called(ctx, documentTypeCode, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientProfile), args.Error(1)
}

func (m *MockClientService) ExportCSV(ctx context.Context, documentTypeCode, documentNumber string) (*service.ExportFile, error) {
	args := m.Called(ctx, documentTypeCode, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LoyaltyReport(ctx context.Context) (*service.ExportFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
