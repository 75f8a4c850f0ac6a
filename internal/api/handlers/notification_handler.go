package handlers

import (
	"strconv"

	"f1-monk/internal/dto"
	"f1-monk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	sessions *service.SessionManager
	logger   *zap.Logger
}

func NewNotificationHandler(sessions *service.SessionManager, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		sessions: sessions,
		logger:   logger,
	}
}

func (h *NotificationHandler) session(c *fiber.Ctx) (*service.Session, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, err
	}
	session, err := h.sessions.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("user_id", userID), zap.Error(err))
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load session")
	}
	return session, nil
}

// ListNotifications godoc
// @Summary List notifications
// @Description External alerts plus deadline reminders; unread_count counts unread high-priority items
// @Tags notifications
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.NotificationListResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	notifications := session.Notifications()
	resp := dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(notifications)),
		UnreadCount:   session.UnreadCount(),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(n))
	}
	return c.JSON(resp)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security Bearer
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid notification ID",
		})
	}

	session, err := h.session(c)
	if err != nil {
		return err
	}

	if !session.MarkRead(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearNotifications godoc
// @Summary Clear all notifications
// @Tags notifications
// @Security Bearer
// @Success 204
// @Router /notifications [delete]
func (h *NotificationHandler) ClearNotifications(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}
	session.ClearNotifications()
	return c.SendStatus(fiber.StatusNoContent)
}
