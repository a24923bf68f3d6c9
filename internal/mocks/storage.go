package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockPresigner is a mock implementation of service.Presigner
type MockPresigner struct {
	mock.Mock
}

func (m *MockPresigner) PresignUpload(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockPresigner) PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
