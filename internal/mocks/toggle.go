package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/brewshare/backend/internal/models"
	"github.com/pageza/brewshare/backend/internal/service"
)

// MockToggleStore is a mock implementation of repositories.ToggleStore
type MockToggleStore struct {
	mock.Mock
}

func (m *MockToggleStore) Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToggleStore) Insert(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToggleStore) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToggleStore) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockToggleStore) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ToggleRecord), args.Error(1)
}

func (m *MockToggleStore) DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTargetLookup is a mock implementation of service.TargetLookup
type MockTargetLookup struct {
	mock.Mock
}

func (m *MockTargetLookup) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockToggleService is a mock implementation of service.IToggleService
type MockToggleService struct {
	mock.Mock
	ToggleKind service.ToggleKind
}

func (m *MockToggleService) Kind() service.ToggleKind {
	return m.ToggleKind
}

func (m *MockToggleService) Toggle(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subjectID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToggleService) IsSet(ctx context.Context, subjectID, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, subjectID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockToggleService) Count(ctx context.Context, targetID uuid.UUID) (int64, error) {
	args := m.Called(ctx, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockToggleService) ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]models.ToggleRecord, error) {
	args := m.Called(ctx, subjectID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ToggleRecord), args.Error(1)
}
