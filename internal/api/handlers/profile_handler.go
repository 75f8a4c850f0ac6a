package handlers

import (
	"time"

	"f1-monk/internal/dto"
	"f1-monk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	sessions *service.SessionManager
	now      func() time.Time
	logger   *zap.Logger
}

func NewProfileHandler(sessions *service.SessionManager, now func() time.Time, logger *zap.Logger) *ProfileHandler {
	if now == nil {
		now = time.Now
	}
	return &ProfileHandler{
		sessions: sessions,
		now:      now,
		logger:   logger,
	}
}

// GetProfile godoc
// @Summary Get the student profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	session, err := h.sessions.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	profile := session.Profile()
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}
	return c.JSON(toProfileResponse(profile))
}

// UpdateProfile godoc
// @Summary Replace the student profile
// @Description Replaces the profile wholesale and recomputes deadlines, notifications and the welcome message
// @Tags profile
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ProfileRequest true "Profile"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := profileFromRequest(userID, getEmail(c), &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	session, err := h.sessions.SaveProfile(c.Context(), userID, profile)
	if err != nil {
		h.logger.Error("Failed to save profile", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(toProfileResponse(session.Profile()))
}

// GetDeadlines godoc
// @Summary List upcoming F-1 deadlines
// @Description Deadlines are computed from the profile for the current date
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DeadlineResponse
// @Router /deadlines [get]
func (h *ProfileHandler) GetDeadlines(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	session, err := h.sessions.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	return c.JSON(toDeadlineResponses(service.ComputeDeadlines(session.Profile(), h.now())))
}
