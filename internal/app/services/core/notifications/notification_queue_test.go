package notifications

import (
	"sync"
	"testing"
	"time"

	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTimer struct {
	delay   time.Duration
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
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) utils.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, timer)
	return timer
}

func (s *fakeScheduler) fire(index int) {
	s.mu.Lock()
	timer := s.timers[index]
	s.mu.Unlock()
	if !timer.stopped {
		timer.fn()
	}
}

func TestNotificationQueuePushOrdersNewestFirst(t *testing.T) {
	scheduler := &fakeScheduler{}
	queue := NewNotificationQueue(5*time.Second, scheduler.AfterFunc, zap.NewNop())

	first := queue.Push("Failed to fetch consultants. Showing cached results.", models.SeverityError)
	second := queue.Push("Failed to fetch consultants. Showing cached results.", models.SeverityError)

	list := queue.List()
	require.Len(t, list, 2, "identical messages are not deduplicated")
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 5*time.Second, scheduler.timers[0].delay)
}

func TestNotificationQueueExpiry(t *testing.T) {
	scheduler := &fakeScheduler{}
	queue := NewNotificationQueue(5*time.Second, scheduler.AfterFunc, zap.NewNop())

	first := queue.Push("one", models.SeverityInfo)
	queue.Push("two", models.SeverityWarning)

	scheduler.fire(0)

	list := queue.List()
	require.Len(t, list, 1)
	assert.Equal(t, "two", list[0].Message)
	assert.False(t, queue.Dismiss(first.ID), "expired notifications cannot be dismissed")
}

func TestNotificationQueueDismiss(t *testing.T) {
	scheduler := &fakeScheduler{}
	queue := NewNotificationQueue(5*time.Second, scheduler.AfterFunc, zap.NewNop())

	notification := queue.Push("Booked", models.SeveritySuccess)
	assert.True(t, queue.Dismiss(notification.ID))
	assert.True(t, scheduler.timers[0].stopped)
	assert.Empty(t, queue.List())

	assert.False(t, queue.Dismiss(notification.ID))
	assert.False(t, queue.Dismiss("unknown"))
}

func TestNotificationQueueWithRealTimers(t *testing.T) {
	queue := NewNotificationQueue(10*time.Millisecond, nil, zap.NewNop())
	queue.Push("short lived", models.SeverityInfo)

	assert.Eventually(t, func() bool {
		return len(queue.List()) == 0
	}, time.Second, 5*time.Millisecond)
}
