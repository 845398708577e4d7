package coordinatestore

import (
	"context"
	"fmt"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisCoordinateStore struct {
	Redis contracts.RedisRepository
	Key   string
	Log   *zap.Logger
}

// NewRedisCoordinateStore keeps the last coordinate under a key scoped to one client profile.
func NewRedisCoordinateStore(redisRepository contracts.RedisRepository, clientProfileID string, logger *zap.Logger) contracts.CoordinateStore {
	return &redisCoordinateStore{
		Redis: redisRepository,
		Key:   fmt.Sprintf(constvars.RedisKeyUserLocationFormat, clientProfileID),
		Log:   logger,
	}
}

func (s *redisCoordinateStore) Load(ctx context.Context) (models.Coordinate, bool, error) {
	s.Log.Debug("redisCoordinateStore.Load called",
		zap.String(constvars.LoggingRedisKey, s.Key),
	)

	raw, err := s.Redis.Get(ctx, s.Key)
	if err != nil {
		return models.Coordinate{}, false, err
	}
	if raw == "" {
		return models.Coordinate{}, false, nil
	}

	var coordinate models.Coordinate
	err = json.Unmarshal([]byte(raw), &coordinate)
	if err != nil {
		s.Log.Error("redisCoordinateStore.Load error unmarshaling persisted coordinate",
			zap.String(constvars.LoggingRedisKey, s.Key),
			zap.Error(err),
		)
		return models.Coordinate{}, false, exceptions.ErrCannotParseJSON(err)
	}

	err = coordinate.Validate()
	if err != nil {
		return models.Coordinate{}, false, err
	}

	return coordinate, true, nil
}

func (s *redisCoordinateStore) Save(ctx context.Context, coordinate models.Coordinate) error {
	s.Log.Debug("redisCoordinateStore.Save called",
		zap.String(constvars.LoggingRedisKey, s.Key),
		zap.Float64(constvars.LoggingLatitudeKey, coordinate.Lat),
		zap.Float64(constvars.LoggingLongitudeKey, coordinate.Lng),
	)
	return s.Redis.Set(ctx, s.Key, coordinate, 0)
}
