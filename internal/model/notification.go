package model

import (
	"time"
)

const (
	NotificationCalories = "calories"
	NotificationProtein  = "protein"
	NotificationCarbs    = "carbs"
	NotificationFats     = "fats"
	NotificationCustom   = "custom"
)

// Notification is an in-app message for a user. Goal notifications are
// keyed by (user, date, category) so a nutrient fires at most once per
// day. Notifications are never deleted; only the read flag changes.
type Notification struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"userId"`
	Category   string    `db:"category" json:"category"`
	Message    string    `db:"message" json:"message"`
	NotifyDate string    `db:"notify_date" json:"date"` // YYYY-MM-DD
	IsRead     bool      `db:"is_read" json:"isRead"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
