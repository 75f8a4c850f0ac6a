package handlers

import (
	"errors"

	"f1-monk/internal/dto"
	"f1-monk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	sessions *service.SessionManager
	logger   *zap.Logger
}

func NewChatHandler(sessions *service.SessionManager, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// SendMessage godoc
// @Summary Ask the advisory assistant a question
// @Description Resolves the message against the knowledge base, then the intent classifier
// @Tags chat
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.ChatRequest true "Chat message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := h.sessions.Get(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load session", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load session",
		})
	}

	result, err := session.Conversation().Send(req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message cannot be empty",
			})
		case errors.Is(err, service.ErrTurnInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A response is still pending",
			})
		}
		h.logger.Error("Chat turn failed", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(dto.ChatResponse{
		Reply:      toMessageResponse(result.Reply),
		Source:     string(result.Source),
		Intent:     result.Intent,
		Confidence: result.Confidence,
		EntryID:    result.EntryID,
	})
}

// GetMessages godoc
// @Summary Get the conversation transcript
// @Tags chat
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TranscriptResponse
// @Router /chat/messages [get]
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
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

	conversation := session.Conversation()
	transcript := conversation.Transcript()
	resp := dto.TranscriptResponse{
		Messages: make([]dto.MessageResponse, 0, len(transcript)),
		Pending:  conversation.Pending(),
	}
	for _, m := range transcript {
		resp.Messages = append(resp.Messages, toMessageResponse(m))
	}
	return c.JSON(resp)
}

// SignOut godoc
// @Summary End the current advisory session
// @Tags session
// @Security Bearer
// @Success 204
// @Router /session/signout [post]
func (h *ChatHandler) SignOut(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}
	h.sessions.SignOut(userID)
	return c.SendStatus(fiber.StatusNoContent)
}
