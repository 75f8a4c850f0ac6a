package models

import "time"

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// ParsePriority falls back to normal for unknown values.
func ParsePriority(s string) NotificationPriority {
	switch NotificationPriority(s) {
	case PriorityLow, PriorityHigh:
		return NotificationPriority(s)
	}
	return PriorityNormal
}

type Notification struct {
	ID        int                  `db:"id" json:"id" yaml:"id"`
	Title     string               `db:"title" json:"title" yaml:"title"`
	Content   string               `db:"content" json:"content" yaml:"content"`
	Priority  NotificationPriority `db:"priority" json:"priority" yaml:"priority"`
	CreatedAt time.Time            `db:"created_at" json:"created_at" yaml:"created_at"`
	IsRead    bool                 `db:"is_read" json:"is_read" yaml:"is_read"`
}
