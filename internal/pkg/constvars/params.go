package constvars

const (
	URLParamNotificationID = "notification_id"
)
