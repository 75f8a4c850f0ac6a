package service

import (
	"fmt"
	"time"

	"f1-monk/internal/models"
)

// Alert windows in whole days.
const (
	I20AlertDays  = 60
	OptWindowDays = 90
	VisaAlertDays = 180
)

// ComputeDeadlines derives deadline descriptors from profile relative to now,
// in I-20, OPT, visa order. Missing dates produce no descriptor, and a program
// that ends before it starts produces no OPT descriptor.
func ComputeDeadlines(profile *models.UserProfile, now time.Time) []models.DeadlineDescriptor {
	if profile == nil {
		return nil
	}

	var deadlines []models.DeadlineDescriptor

	if !profile.I20ExpiryDate.IsZero() {
		days := daysBetween(now, profile.I20ExpiryDate)
		if days < I20AlertDays {
			deadlines = append(deadlines, models.DeadlineDescriptor{
				Kind:          models.DeadlineI20Expiry,
				Message:       fmt.Sprintf("I-20 expires in %d days", days),
				DaysRemaining: days,
			})
		}
	}

	if programWindowValid(profile) && !profile.HasOptApplied {
		days := daysBetween(now, profile.ProgramEndDate)
		if days <= OptWindowDays {
			deadlines = append(deadlines, models.DeadlineDescriptor{
				Kind:          models.DeadlineOptWindow,
				Message:       fmt.Sprintf("OPT application window open (%d days until program end)", days),
				DaysRemaining: days,
			})
		}
	}

	if profile.VisaExpiryDate != nil && !profile.VisaExpiryDate.IsZero() {
		days := daysBetween(now, *profile.VisaExpiryDate)
		if days < VisaAlertDays {
			deadlines = append(deadlines, models.DeadlineDescriptor{
				Kind:          models.DeadlineVisaExpiry,
				Message:       fmt.Sprintf("Visa expires in %d days", days),
				DaysRemaining: days,
			})
		}
	}

	return deadlines
}

func programWindowValid(profile *models.UserProfile) bool {
	if profile.ProgramEndDate.IsZero() {
		return false
	}
	if !profile.ProgramStartDate.IsZero() && profile.ProgramStartDate.After(profile.ProgramEndDate) {
		return false
	}
	return true
}

// daysBetween counts calendar days from now's date to target's date. Profile
// dates are calendar dates, so each side keeps the date of its own location.
func daysBetween(now, target time.Time) int {
	from := calendarDate(now)
	to := calendarDate(target)
	return int(to.Sub(from).Hours() / 24)
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
