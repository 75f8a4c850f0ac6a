package dto

// Dates use the YYYY-MM-DD layout.
type ProfileRequest struct {
	Name                  string  `json:"name"`
	University            string  `json:"university"`
	Major                 string  `json:"major"`
	ProgramLevel          string  `json:"program_level"`
	ProgramStartDate      string  `json:"program_start_date"`
	ProgramEndDate        string  `json:"program_end_date" validate:"required"`
	I20ExpiryDate         string  `json:"i20_expiry_date" validate:"required"`
	HasOptApplied         bool    `json:"has_opt_applied"`
	IsSevisActive         *bool   `json:"is_sevis_active"`
	VisaExpiryDate        *string `json:"visa_expiry_date"`
	NotificationsEnabled  *bool   `json:"notifications_enabled"`
	ReminderDaysThreshold *int    `json:"reminder_days_threshold"`
}

type ProfileResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	University            string  `json:"university"`
	Major                 string  `json:"major"`
	ProgramLevel          string  `json:"program_level"`
	ProgramStartDate      string  `json:"program_start_date,omitempty"`
	ProgramEndDate        string  `json:"program_end_date"`
	I20ExpiryDate         string  `json:"i20_expiry_date"`
	HasOptApplied         bool    `json:"has_opt_applied"`
	IsSevisActive         bool    `json:"is_sevis_active"`
	VisaExpiryDate        *string `json:"visa_expiry_date,omitempty"`
	NotificationsEnabled  bool    `json:"notifications_enabled"`
	ReminderDaysThreshold int     `json:"reminder_days_threshold"`
}

type DeadlineResponse struct {
	Kind          string `json:"kind"`
	Message       string `json:"message"`
	DaysRemaining int    `json:"days_remaining"`
}
