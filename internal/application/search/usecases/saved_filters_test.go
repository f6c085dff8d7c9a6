package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumnet/internal/application/search/dto"
	"alumnet/internal/domain/ticket"
	apperrors "alumnet/internal/shared/errors"
)

func reconstructSavedFilter(t *testing.T, ownerID uint, isDefault bool) *ticket.SavedFilter {
	t.Helper()

	created := time.Now().Add(-time.Hour)
	f, err := ticket.ReconstructSavedFilter(
		1,
		ownerID,
		"urgent open",
		ticket.FilterConfig{Status: "OPEN", Priority: "URGENT"},
		isDefault,
		created,
		created,
	)
	if err != nil {
		t.Fatalf("reconstruct saved filter: %v", err)
	}
	return f
}

func TestCreateSavedFilterUseCase_Execute_DefaultClearsPrevious(t *testing.T) {
	clearedFor := uint(0)
	saved := false
	mockFilters := &mockSavedFilterRepository{
		ClearDefaultFunc: func(ctx context.Context, ownerID uint) error {
			clearedFor = ownerID
			assert.False(t, saved)
			return nil
		},
		SaveFunc: func(ctx context.Context, f *ticket.SavedFilter) error {
			saved = true
			return f.SetID(1)
		},
	}

	useCase := NewCreateSavedFilterUseCase(mockFilters, &mockTransactor{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateSavedFilterCommand{
		OwnerID:   10,
		Name:      "my open tickets",
		Config:    dto.FilterConfigDTO{Status: "OPEN"},
		IsDefault: true,
	})

	require.NoError(t, err)
	assert.True(t, result.IsDefault)
	assert.Equal(t, uint(10), clearedFor)
	assert.True(t, saved)
}

func TestCreateSavedFilterUseCase_Execute_NonDefaultSkipsClear(t *testing.T) {
	cleared := false
	mockFilters := &mockSavedFilterRepository{
		ClearDefaultFunc: func(ctx context.Context, ownerID uint) error {
			cleared = true
			return nil
		},
	}

	useCase := NewCreateSavedFilterUseCase(mockFilters, &mockTransactor{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateSavedFilterCommand{
		OwnerID: 10,
		Name:    "low priority",
		Config:  dto.FilterConfigDTO{Priority: "LOW"},
	})

	require.NoError(t, err)
	assert.False(t, result.IsDefault)
	assert.False(t, cleared)
}

func TestCreateSavedFilterUseCase_Execute_EmptyName(t *testing.T) {
	useCase := NewCreateSavedFilterUseCase(&mockSavedFilterRepository{}, &mockTransactor{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), CreateSavedFilterCommand{
		OwnerID: 10,
		Name:    "",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateSavedFilterUseCase_Execute_ForeignFilterLooksAbsent(t *testing.T) {
	mockFilters := &mockSavedFilterRepository{
		GetByIDFunc: func(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error) {
			// Ownership is part of the lookup key; a foreign filter is nil.
			return nil, nil
		},
	}

	useCase := NewUpdateSavedFilterUseCase(mockFilters, &mockTransactor{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), UpdateSavedFilterCommand{
		FilterID: 1,
		OwnerID:  777,
		Name:     "hijacked",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteSavedFilterUseCase_Execute(t *testing.T) {
	existing := reconstructSavedFilter(t, 10, false)

	deleted := false
	mockFilters := &mockSavedFilterRepository{
		GetByIDFunc: func(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error) {
			if ownerID == 10 {
				return existing, nil
			}
			return nil, nil
		},
		DeleteFunc: func(ctx context.Context, filterID, ownerID uint) error {
			deleted = true
			return nil
		},
	}

	useCase := NewDeleteSavedFilterUseCase(mockFilters, &mockLogger{})

	require.NoError(t, useCase.Execute(context.Background(), DeleteSavedFilterCommand{FilterID: 1, OwnerID: 10}))
	assert.True(t, deleted)

	err := useCase.Execute(context.Background(), DeleteSavedFilterCommand{FilterID: 1, OwnerID: 777})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestApplySavedFilterUseCase_Execute_DelegatesStoredConfig(t *testing.T) {
	existing := reconstructSavedFilter(t, 10, true)

	mockFilters := &mockSavedFilterRepository{
		GetByIDFunc: func(ctx context.Context, filterID, ownerID uint) (*ticket.SavedFilter, error) {
			return existing, nil
		},
	}
	var delegated AdvancedSearchQuery
	mockSearch := &mockAdvancedSearchExecutor{
		ExecuteFunc: func(ctx context.Context, query AdvancedSearchQuery) (*AdvancedSearchResult, error) {
			delegated = query
			return &AdvancedSearchResult{Total: 7}, nil
		},
	}

	useCase := NewApplySavedFilterUseCase(mockFilters, mockSearch, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ApplySavedFilterQuery{
		FilterID: 1,
		ViewerID: 10,
		Page:     2,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, "OPEN", delegated.Config.Status)
	assert.Equal(t, "URGENT", delegated.Config.Priority)
	assert.Equal(t, 2, delegated.Page)
}

func TestApplySavedFilterUseCase_Execute_MissingFilter(t *testing.T) {
	useCase := NewApplySavedFilterUseCase(
		&mockSavedFilterRepository{}, &mockAdvancedSearchExecutor{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ApplySavedFilterQuery{FilterID: 404, ViewerID: 10})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
