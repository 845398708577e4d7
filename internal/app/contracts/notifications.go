package contracts

import "consultant-discovery/internal/app/models"

type Notifier interface {
	Push(message string, severity models.Severity) models.Notification
}

type NotificationQueue interface {
	Notifier
	Dismiss(notificationID string) bool
	List() []models.Notification
}
