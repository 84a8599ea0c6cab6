package models

import "time"

type NotificationType string

const (
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
)

// SystemNotification is ephemeral bookkeeping emitted after inventory and
// transaction events. Newest first; cleared wholesale by the user.
type SystemNotification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
}
