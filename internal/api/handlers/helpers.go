package handlers

import (
	"errors"
	"fmt"
	"time"

	"f1-monk/internal/dto"
	"f1-monk/internal/models"
	"f1-monk/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = time.DateOnly

func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.LocalUserID).(string)
	if !ok || userID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return userID, nil
}

func getEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(middleware.LocalEmail).(string)
	return email
}

func toMessageResponse(m models.ChatMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		Text:       m.Text,
		IsFromUser: m.IsFromUser,
		Timestamp:  m.Timestamp.Format(time.RFC3339),
	}
}

func toNotificationResponse(n models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Priority:  string(n.Priority),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		IsRead:    n.IsRead,
	}
}

func toDeadlineResponses(deadlines []models.DeadlineDescriptor) []dto.DeadlineResponse {
	resp := make([]dto.DeadlineResponse, 0, len(deadlines))
	for _, d := range deadlines {
		resp = append(resp, dto.DeadlineResponse{
			Kind:          string(d.Kind),
			Message:       d.Message,
			DaysRemaining: d.DaysRemaining,
		})
	}
	return resp
}

func toKnowledgeEntryResponses(entries []models.KnowledgeEntry) []dto.KnowledgeEntryResponse {
	resp := make([]dto.KnowledgeEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.KnowledgeEntryResponse{
			ID:       e.ID,
			Question: e.Question,
			Answer:   e.Answer,
			Category: e.Category,
		})
	}
	return resp
}

func toProfileResponse(p *models.UserProfile) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Email:                 p.Email,
		University:            p.University,
		Major:                 p.Major,
		ProgramLevel:          string(p.ProgramLevel),
		ProgramEndDate:        formatDate(p.ProgramEndDate),
		I20ExpiryDate:         formatDate(p.I20ExpiryDate),
		HasOptApplied:         p.HasOptApplied,
		IsSevisActive:         p.IsSevisActive,
		NotificationsEnabled:  p.NotificationsEnabled,
		ReminderDaysThreshold: p.ReminderDaysThreshold,
	}
	if !p.ProgramStartDate.IsZero() {
		resp.ProgramStartDate = formatDate(p.ProgramStartDate)
	}
	if p.VisaExpiryDate != nil {
		visa := formatDate(*p.VisaExpiryDate)
		resp.VisaExpiryDate = &visa
	}
	return resp
}

// profileFromRequest builds a full replacement profile; omitted optional
// fields take the defaults of a new profile.
func profileFromRequest(userID, email string, req *dto.ProfileRequest) (*models.UserProfile, error) {
	p := models.NewUserProfile(userID, req.Name, email)
	p.University = req.University
	p.Major = req.Major
	p.ProgramLevel = models.ParseProgramLevel(req.ProgramLevel)
	p.HasOptApplied = req.HasOptApplied

	var err error
	if req.ProgramStartDate != "" {
		if p.ProgramStartDate, err = parseDate("program_start_date", req.ProgramStartDate); err != nil {
			return nil, err
		}
	}
	if p.ProgramEndDate, err = parseDate("program_end_date", req.ProgramEndDate); err != nil {
		return nil, err
	}
	if p.I20ExpiryDate, err = parseDate("i20_expiry_date", req.I20ExpiryDate); err != nil {
		return nil, err
	}
	if req.VisaExpiryDate != nil && *req.VisaExpiryDate != "" {
		visa, err := parseDate("visa_expiry_date", *req.VisaExpiryDate)
		if err != nil {
			return nil, err
		}
		p.VisaExpiryDate = &visa
	}

	if req.IsSevisActive != nil {
		p.IsSevisActive = *req.IsSevisActive
	}
	if req.NotificationsEnabled != nil {
		p.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.ReminderDaysThreshold != nil {
		if *req.ReminderDaysThreshold < 0 {
			return nil, errors.New("reminder_days_threshold must not be negative")
		}
		p.ReminderDaysThreshold = *req.ReminderDaysThreshold
	}
	return p, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD", field)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
