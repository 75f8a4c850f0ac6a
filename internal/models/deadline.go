package models

type DeadlineKind string

const (
	DeadlineI20Expiry  DeadlineKind = "i20Expiry"
	DeadlineOptWindow  DeadlineKind = "optWindow"
	DeadlineVisaExpiry DeadlineKind = "visaExpiry"
)

// DeadlineDescriptor is recomputed on every query and never persisted.
type DeadlineDescriptor struct {
	Kind          DeadlineKind `json:"kind"`
	Message       string       `json:"message"`
	DaysRemaining int          `json:"days_remaining"`
}
