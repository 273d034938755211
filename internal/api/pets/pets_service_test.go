package pets

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindBy(ctx context.Context, field Field, value string) ([]PetRecord, error) {
	args := m.Called(ctx, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PetRecord), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]PetRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PetRecord), args.Error(1)
}

func (m *MockRepository) Species() Species {
	args := m.Called()
	return args.Get(0).(Species)
}

func TestServiceFindBy(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("CachesResults", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Species").Return(SpeciesCat)

		expected := []PetRecord{{PetID: "C895210", Name: "Fluffy"}}
		mockRepo.On("FindBy", ctx, FieldPetID, "C895210").Return(expected, nil).Once()

		service := NewPetService(mockRepo, logger)

		first, err := service.FindBy(ctx, FieldPetID, "C895210")
		require.NoError(t, err)
		assert.Equal(t, expected, first)

		// Second call must be served from cache; the .Once() expectation
		// fails the test if the repository is hit again.
		second, err := service.FindBy(ctx, FieldPetID, "C895210")
		require.NoError(t, err)
		assert.Equal(t, expected, second)

		mockRepo.AssertExpectations(t)
	})

	t.Run("CacheKeyFoldsCaseForNames", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Species").Return(SpeciesCat)

		expected := []PetRecord{{PetID: "C895210", Name: "Fluffy"}}
		mockRepo.On("FindBy", ctx, FieldName, "Fluffy").Return(expected, nil).Once()

		service := NewPetService(mockRepo, logger)

		_, err := service.FindBy(ctx, FieldName, "Fluffy")
		require.NoError(t, err)

		// Different casing of a case-insensitive field hits the same entry.
		cached, err := service.FindBy(ctx, FieldName, "FLUFFY")
		require.NoError(t, err)
		assert.Equal(t, expected, cached)

		mockRepo.AssertExpectations(t)
	})

	t.Run("NoMatchesPassesThrough", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Species").Return(SpeciesCat)

		noMatches := &NoMatchesError{Message: "No Cats found with the age '99'."}
		mockRepo.On("FindBy", ctx, FieldAge, "99").Return(nil, noMatches).Twice()

		service := NewPetService(mockRepo, logger)

		_, err := service.FindBy(ctx, FieldAge, "99")
		var got *NoMatchesError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, noMatches.Message, got.Message)

		// Misses are not cached; the repository is consulted again.
		_, err = service.FindBy(ctx, FieldAge, "99")
		assert.Error(t, err)

		mockRepo.AssertExpectations(t)
	})
}

func TestServiceListAll(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	mockRepo.On("ListAll", ctx).Return(SeedDogs(), nil).Once()

	service := NewPetService(mockRepo, slog.Default())

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	mockRepo.AssertExpectations(t)
}
