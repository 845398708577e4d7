package filters

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"consultant-discovery/internal/app/contracts"
	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/app/services/core/resultset"
	"consultant-discovery/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearchBackend struct {
	mu       sync.Mutex
	requests []models.SearchRequest
	handler  func(call int, request models.SearchRequest) ([]models.Consultant, error)
}

func (b *fakeSearchBackend) Search(ctx context.Context, request models.SearchRequest) ([]models.Consultant, error) {
	b.mu.Lock()
	call := len(b.requests)
	b.requests = append(b.requests, request)
	handler := b.handler
	b.mu.Unlock()
	return handler(call, request)
}

func (b *fakeSearchBackend) Requests() []models.SearchRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]models.SearchRequest, len(b.requests))
	copy(result, b.requests)
	return result
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []models.Notification
}

func (n *recordingNotifier) Push(message string, severity models.Severity) models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	notification := models.Notification{Message: message, Severity: severity}
	n.items = append(n.items, notification)
	return notification
}

func (n *recordingNotifier) All() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Notification(nil), n.items...)
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
	delays []time.Duration
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) utils.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{fn: f}
	s.timers = append(s.timers, timer)
	s.delays = append(s.delays, d)
	return timer
}

func (s *fakeScheduler) timer(i int) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

type fixture struct {
	controller *FilterQueryController
	backend    *fakeSearchBackend
	resultSet  contracts.ConsultantResultSet
	notifier   *recordingNotifier
	scheduler  *fakeScheduler
	published  *[]models.ResultSetSnapshot
}

func newFixture(handler func(call int, request models.SearchRequest) ([]models.Consultant, error)) fixture {
	backend := &fakeSearchBackend{handler: handler}
	set := resultset.NewConsultantResultSet(0, zap.NewNop())
	notifier := &recordingNotifier{}
	scheduler := &fakeScheduler{}

	controller := NewFilterQueryController(backend, set, notifier, Options{
		SearchDebounce: 300 * time.Millisecond,
		SearchTimeout:  time.Second,
		AfterFunc:      scheduler.AfterFunc,
	}, zap.NewNop())

	var mu sync.Mutex
	published := &[]models.ResultSetSnapshot{}
	controller.Subscribe(func(snapshot models.ResultSetSnapshot) {
		mu.Lock()
		defer mu.Unlock()
		*published = append(*published, snapshot)
	})

	return fixture{
		controller: controller,
		backend:    backend,
		resultSet:  set,
		notifier:   notifier,
		scheduler:  scheduler,
		published:  published,
	}
}

func consultantsNamed(names ...string) []models.Consultant {
	result := make([]models.Consultant, 0, len(names))
	for i, name := range names {
		result = append(result, models.Consultant{ID: models.ConsultantID(rune('a' + i)), Name: name})
	}
	return result
}

func TestStartIssuesFirstQuery(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return consultantsNamed("Dr. Mehta"), nil
	})

	coordinate := models.Coordinate{Lat: 23.0225, Lng: 72.5714}
	generation := f.controller.Start(coordinate)
	f.controller.Wait()

	assert.Equal(t, uint64(1), generation)
	requests := f.backend.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, models.DefaultFilterCriteria(), requests[0].Criteria)
	assert.Equal(t, coordinate, requests[0].Coordinate)

	snapshot := f.resultSet.Snapshot()
	assert.True(t, snapshot.Loaded)
	assert.Len(t, snapshot.Consultants, 1)
	assert.Len(t, *f.published, 1)
}

func TestSearchTextIsDebounced(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return nil, nil
	})

	f.controller.SetSearchText("a")
	f.controller.SetSearchText("an")
	f.controller.SetSearchText("anx")

	assert.Empty(t, f.backend.Requests(), "nothing fires while typing")
	assert.True(t, f.scheduler.timer(0).stopped)
	assert.True(t, f.scheduler.timer(1).stopped)
	assert.False(t, f.scheduler.timer(2).stopped)
	assert.Equal(t, 300*time.Millisecond, f.scheduler.delays[2])

	f.scheduler.timer(0).fn()
	f.controller.Wait()
	assert.Empty(t, f.backend.Requests(), "a superseded timer that still fires is ignored")

	f.scheduler.timer(2).fn()
	f.controller.Wait()

	requests := f.backend.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "anx", requests[0].Criteria.SearchText)
}

func TestDropdownsQueryImmediately(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return nil, nil
	})

	assert.True(t, f.controller.SetSpecialty("Anxiety"))
	assert.True(t, f.controller.SetAvailability("Today"))
	assert.True(t, f.controller.SetMinRating("4"))
	assert.False(t, f.controller.SetMinRating("4"), "unchanged value does not query")
	f.controller.Wait()

	requests := f.backend.Requests()
	require.Len(t, requests, 3)
	assert.Equal(t, models.FilterCriteria{
		SearchText:   "",
		Specialty:    "Anxiety",
		Availability: "Today",
		MinRating:    "4",
	}, requests[2].Criteria)
	assert.Equal(t, uint64(3), f.controller.Generation())
}

func TestSetCoordinateQueriesOnlyWhenMoved(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return nil, nil
	})

	coordinate := models.Coordinate{Lat: 19.07, Lng: 72.87}
	assert.True(t, f.controller.SetCoordinate(coordinate))
	assert.False(t, f.controller.SetCoordinate(coordinate))
	f.controller.Wait()

	requests := f.backend.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, coordinate, requests[0].Coordinate)
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	gates := []chan struct{}{make(chan struct{}), make(chan struct{})}
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		<-gates[call]
		if call == 0 {
			return consultantsNamed("Old One", "Old Two"), nil
		}
		return consultantsNamed("Fresh"), nil
	})

	f.controller.SetSpecialty("Anxiety")
	f.controller.SetSpecialty("Career")

	close(gates[1])
	require.Eventually(t, func() bool {
		return f.resultSet.Snapshot().Generation == 2
	}, time.Second, 5*time.Millisecond)

	close(gates[0])
	f.controller.Wait()

	snapshot := f.resultSet.Snapshot()
	assert.Equal(t, uint64(2), snapshot.Generation)
	require.Len(t, snapshot.Consultants, 1)
	assert.Equal(t, "Fresh", snapshot.Consultants[0].Name)
	assert.Len(t, *f.published, 1, "the stale response never reaches listeners")
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	gates := []chan struct{}{make(chan struct{}), make(chan struct{})}
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		<-gates[call]
		if call == 0 {
			return nil, errors.New("connection reset")
		}
		return consultantsNamed("Fresh"), nil
	})

	f.controller.SetSpecialty("Anxiety")
	f.controller.SetSpecialty("Career")
	close(gates[1])
	close(gates[0])
	f.controller.Wait()

	assert.Empty(t, f.notifier.All())
	assert.False(t, f.resultSet.Snapshot().Degraded)
}

func TestCurrentFailureKeepsResultsAndDegrades(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		if call == 0 {
			return consultantsNamed("Dr. Mehta", "Ms. Shah"), nil
		}
		return nil, errors.New("503 from backend")
	})

	f.controller.Start(models.DefaultCoordinate)
	f.controller.Wait()
	f.controller.SetSpecialty("Career")
	f.controller.Wait()

	snapshot := f.resultSet.Snapshot()
	assert.True(t, snapshot.Degraded)
	assert.Len(t, snapshot.Consultants, 2, "existing results are not cleared")

	notifications := f.notifier.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Failed to fetch consultants. Showing cached results.", notifications[0].Message)
	assert.Equal(t, models.SeverityError, notifications[0].Severity)

	require.Len(t, *f.published, 2)
	assert.True(t, (*f.published)[1].Degraded)
}

func TestClearCancelsDebounceAndQueriesDefaults(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return nil, nil
	})

	f.controller.SetSpecialty("Anxiety")
	f.controller.SetSearchText("mehta")
	f.controller.Clear()
	f.controller.Wait()

	assert.True(t, f.scheduler.timer(0).stopped)
	f.scheduler.timer(0).fn()
	f.controller.Wait()

	requests := f.backend.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, models.DefaultFilterCriteria(), requests[1].Criteria)
	assert.Equal(t, models.DefaultFilterCriteria(), f.controller.Criteria())
}

func TestStopRefusesNewQueries(t *testing.T) {
	f := newFixture(func(call int, request models.SearchRequest) ([]models.Consultant, error) {
		return nil, nil
	})

	f.controller.SetSearchText("pending")
	f.controller.Stop()

	assert.True(t, f.scheduler.timer(0).stopped)
	assert.Equal(t, uint64(0), f.controller.Refresh())
	f.controller.SetSearchText("ignored")
	assert.Empty(t, f.backend.Requests())
}
