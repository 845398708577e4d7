package resultset

import (
	"sync"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"

	"go.uber.org/zap"
)

type consultantResultSet struct {
	mu             sync.RWMutex
	snapshot       models.ResultSetSnapshot
	index          map[models.ConsultantID]int
	degradedMaxAge time.Duration
	Log            *zap.Logger
}

// NewConsultantResultSet creates an empty, not yet loaded set. A positive degradedMaxAge
// bounds how long consultants from a failed refresh may still be shown.
func NewConsultantResultSet(degradedMaxAge time.Duration, logger *zap.Logger) contracts.ConsultantResultSet {
	return &consultantResultSet{
		index:          make(map[models.ConsultantID]int),
		degradedMaxAge: degradedMaxAge,
		Log:            logger,
	}
}

func (s *consultantResultSet) Replace(generation uint64, consultants []models.Consultant, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resident := make([]models.Consultant, len(consultants))
	copy(resident, consultants)

	index := make(map[models.ConsultantID]int, len(resident))
	for i, consultant := range resident {
		if _, exists := index[consultant.ID]; !exists {
			index[consultant.ID] = i
		}
	}

	s.snapshot = models.ResultSetSnapshot{
		Generation:  generation,
		Loaded:      true,
		Degraded:    false,
		FetchedAt:   fetchedAt,
		Consultants: resident,
	}
	s.index = index

	s.Log.Debug("consultantResultSet.Replace",
		zap.Uint64(constvars.LoggingGenerationKey, generation),
		zap.Int(constvars.LoggingResultCountKey, len(resident)),
	)
}

// MarkDegraded keeps the resident consultants. A set that never loaded settles as an empty one.
func (s *consultantResultSet) MarkDegraded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Degraded = true
	s.snapshot.Loaded = true
}

func (s *consultantResultSet) Lookup(consultantID models.ConsultantID) (models.Consultant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[consultantID]
	if !ok {
		return models.Consultant{}, false
	}
	return s.snapshot.Consultants[i], true
}

func (s *consultantResultSet) Snapshot() models.ResultSetSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.snapshot
	snapshot.Consultants = make([]models.Consultant, len(s.snapshot.Consultants))
	copy(snapshot.Consultants, s.snapshot.Consultants)
	return snapshot
}

// Visible is what renderers show. A healthy set is shown whole in server order; a degraded
// one is re-filtered locally by search text only.
func (s *consultantResultSet) Visible(searchText string, now time.Time) []models.Consultant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.snapshot.Degraded {
		visible := make([]models.Consultant, len(s.snapshot.Consultants))
		copy(visible, s.snapshot.Consultants)
		return visible
	}

	if s.degradedMaxAge > 0 && now.Sub(s.snapshot.FetchedAt) > s.degradedMaxAge {
		return []models.Consultant{}
	}

	visible := make([]models.Consultant, 0, len(s.snapshot.Consultants))
	for _, consultant := range s.snapshot.Consultants {
		if consultant.MatchesSearchText(searchText) {
			visible = append(visible, consultant)
		}
	}
	return visible
}
