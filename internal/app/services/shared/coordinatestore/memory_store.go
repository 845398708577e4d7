package coordinatestore

import (
	"context"
	"sync"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
)

// memoryCoordinateStore is used when no redis is configured. It lives as long as the process.
type memoryCoordinateStore struct {
	mu         sync.RWMutex
	coordinate *models.Coordinate
}

func NewMemoryCoordinateStore() contracts.CoordinateStore {
	return &memoryCoordinateStore{}
}

func (s *memoryCoordinateStore) Load(ctx context.Context) (models.Coordinate, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.coordinate == nil {
		return models.Coordinate{}, false, nil
	}
	return *s.coordinate, true, nil
}

func (s *memoryCoordinateStore) Save(ctx context.Context, coordinate models.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coordinate = &coordinate
	return nil
}
