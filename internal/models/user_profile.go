package models

import (
	"time"
)

type ProgramLevel string

const (
	ProgramLevelBachelors ProgramLevel = "bachelors"
	ProgramLevelMasters   ProgramLevel = "masters"
	ProgramLevelPhD       ProgramLevel = "phd"
	ProgramLevelOther     ProgramLevel = "other"
)

// DefaultReminderDays is the reminder threshold assigned to new profiles.
const DefaultReminderDays = 30

// ParseProgramLevel maps free-form input onto a ProgramLevel, falling back to other.
func ParseProgramLevel(s string) ProgramLevel {
	switch ProgramLevel(s) {
	case ProgramLevelBachelors, ProgramLevelMasters, ProgramLevelPhD:
		return ProgramLevel(s)
	}
	switch s {
	case "Bachelor's":
		return ProgramLevelBachelors
	case "Master's":
		return ProgramLevelMasters
	case "PhD":
		return ProgramLevelPhD
	}
	return ProgramLevelOther
}

// UserProfile is the academic profile deadlines are derived from. Date order
// (start <= end <= I-20 expiry) is expected but not enforced.
type UserProfile struct {
	ID                    string       `db:"id" yaml:"id"`
	Name                  string       `db:"name" yaml:"name"`
	Email                 string       `db:"email" yaml:"email"`
	University            string       `db:"university" yaml:"university"`
	Major                 string       `db:"major" yaml:"major"`
	ProgramLevel          ProgramLevel `db:"program_level" yaml:"program_level"`
	ProgramStartDate      time.Time    `db:"program_start_date" yaml:"program_start_date"`
	ProgramEndDate        time.Time    `db:"program_end_date" yaml:"program_end_date"`
	I20ExpiryDate         time.Time    `db:"i20_expiry_date" yaml:"i20_expiry_date"`
	HasOptApplied         bool         `db:"has_opt_applied" yaml:"has_opt_applied"`
	IsSevisActive         bool         `db:"is_sevis_active" yaml:"is_sevis_active"`
	VisaExpiryDate        *time.Time   `db:"visa_expiry_date" yaml:"visa_expiry_date"`
	NotificationsEnabled  bool         `db:"notifications_enabled" yaml:"notifications_enabled"`
	ReminderDaysThreshold int          `db:"reminder_days_threshold" yaml:"reminder_days_threshold"`
	UpdatedAt             time.Time    `db:"updated_at" yaml:"-"`
}

// NewUserProfile returns a profile with the defaults a freshly signed-up
// student gets: SEVIS active, notifications on, 30 reminder days.
func NewUserProfile(id, name, email string) *UserProfile {
	return &UserProfile{
		ID:                    id,
		Name:                  name,
		Email:                 email,
		ProgramLevel:          ProgramLevelMasters,
		IsSevisActive:         true,
		NotificationsEnabled:  true,
		ReminderDaysThreshold: DefaultReminderDays,
	}
}

// FirstName returns the first whitespace-separated token of Name.
func (p *UserProfile) FirstName() string {
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i]
		}
	}
	return p.Name
}

// Clone returns a deep copy so callers can hand out profiles without sharing the visa pointer.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	if p.VisaExpiryDate != nil {
		v := *p.VisaExpiryDate
		cp.VisaExpiryDate = &v
	}
	return &cp
}
