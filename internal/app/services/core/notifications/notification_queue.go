package notifications

import (
	"sync"
	"time"

	"consultant-discovery/internal/app/models"
	"consultant-discovery/internal/pkg/constvars"
	"consultant-discovery/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationQueue is the transient stack of user-facing messages. Newest first,
// no deduplication, each entry expires on its own after the configured TTL.
type NotificationQueue struct {
	mu        sync.Mutex
	items     []models.Notification
	timers    map[string]utils.Timer
	ttl       time.Duration
	afterFunc utils.AfterFunc
	now       func() time.Time
	Log       *zap.Logger
}

func NewNotificationQueue(ttl time.Duration, afterFunc utils.AfterFunc, logger *zap.Logger) *NotificationQueue {
	if afterFunc == nil {
		afterFunc = utils.RealAfterFunc
	}
	return &NotificationQueue{
		timers:    make(map[string]utils.Timer),
		ttl:       ttl,
		afterFunc: afterFunc,
		now:       time.Now,
		Log:       logger,
	}
}

func (q *NotificationQueue) Push(message string, severity models.Severity) models.Notification {
	notification := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	q.items = append([]models.Notification{notification}, q.items...)
	q.timers[notification.ID] = q.afterFunc(q.ttl, func() {
		q.expire(notification.ID)
	})
	q.mu.Unlock()

	q.logPush(notification)
	return notification
}

// Dismiss removes a notification before its TTL elapses.
func (q *NotificationQueue) Dismiss(notificationID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	timer, ok := q.timers[notificationID]
	if !ok {
		return false
	}
	timer.Stop()
	q.removeLocked(notificationID)
	return true
}

func (q *NotificationQueue) List() []models.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := make([]models.Notification, len(q.items))
	copy(result, q.items)
	return result
}

// Stop cancels every pending expiry timer. Entries stay listed.
func (q *NotificationQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, timer := range q.timers {
		timer.Stop()
	}
}

func (q *NotificationQueue) expire(notificationID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.timers[notificationID]; !ok {
		return
	}
	q.removeLocked(notificationID)
	q.Log.Debug("NotificationQueue.expire removed notification",
		zap.String(constvars.LoggingNotificationKey, notificationID),
	)
}

func (q *NotificationQueue) removeLocked(notificationID string) {
	delete(q.timers, notificationID)
	for i, item := range q.items {
		if item.ID == notificationID {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

func (q *NotificationQueue) logPush(notification models.Notification) {
	fields := []zap.Field{
		zap.String(constvars.LoggingNotificationKey, notification.ID),
		zap.String(constvars.LoggingSeverityKey, string(notification.Severity)),
		zap.String("message", notification.Message),
	}
	switch notification.Severity {
	case models.SeverityError:
		q.Log.Error("NotificationQueue.Push", fields...)
	case models.SeverityWarning:
		q.Log.Warn("NotificationQueue.Push", fields...)
	default:
		q.Log.Info("NotificationQueue.Push", fields...)
	}
}
