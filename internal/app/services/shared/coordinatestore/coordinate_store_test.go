package coordinatestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

const testKey = "consultant_discovery:profile-1:user_location"

func TestRedisCoordinateStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, testKey).Return("", nil)

		store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
		_, ok, err := store.Load(ctx)

		assert.NoError(t, err)
		assert.False(t, ok)
		repo.AssertExpectations(t)
	})

	t.Run("Persisted coordinate", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, testKey).Return(`{"lat":19.076,"lng":72.8777}`, nil)

		store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
		coordinate, ok, err := store.Load(ctx)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, models.Coordinate{Lat: 19.076, Lng: 72.8777}, coordinate)
	})

	t.Run("Corrupt value", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, testKey).Return(`{"lat":`, nil)

		store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
		_, ok, err := store.Load(ctx)

		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("Out of range value", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, testKey).Return(`{"lat":123,"lng":72}`, nil)

		store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
		_, ok, err := store.Load(ctx)

		assert.True(t, errors.Is(err, exceptions.ErrKindInvalidCoordinate))
		assert.False(t, ok)
	})

	t.Run("Redis failure", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Get", ctx, testKey).Return("", exceptions.ErrRedisGet(errors.New("connection refused"), testKey))

		store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
		_, ok, err := store.Load(ctx)

		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestRedisCoordinateStoreSave(t *testing.T) {
	ctx := context.Background()
	coordinate := models.Coordinate{Lat: 23.0225, Lng: 72.5714}

	repo := new(mockRedisRepository)
	repo.On("Set", ctx, testKey, coordinate, time.Duration(0)).Return(nil)

	store := NewRedisCoordinateStore(repo, "profile-1", zap.NewNop())
	assert.NoError(t, store.Save(ctx, coordinate))
	repo.AssertExpectations(t)
}

func TestMemoryCoordinateStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCoordinateStore()

	_, ok, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, models.Coordinate{Lat: 1, Lng: 2}))
	coordinate, ok, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.Coordinate{Lat: 1, Lng: 2}, coordinate)
}
