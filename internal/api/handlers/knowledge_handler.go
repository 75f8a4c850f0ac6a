package handlers

import (
	"time"

	"f1-monk/internal/dto"
	"f1-monk/internal/models"
	"f1-monk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledge *service.KnowledgeBase
	tracker   *service.AnalyticsTracker
	topN      int
	logger    *zap.Logger
}

func NewKnowledgeHandler(knowledge *service.KnowledgeBase, tracker *service.AnalyticsTracker, topN int, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledge: knowledge,
		tracker:   tracker,
		topN:      topN,
		logger:    logger,
	}
}

// ListCategories godoc
// @Summary List knowledge base questions grouped by category
// @Tags knowledge
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 503 {object} map[string]string
// @Router /knowledge/categories [get]
func (h *KnowledgeHandler) ListCategories(c *fiber.Ctx) error {
	groups, keys, err := h.knowledge.ByCategory()
	if err != nil {
		h.logger.Error("Failed to read knowledge base", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Knowledge base unavailable",
		})
	}

	resp := make([]dto.CategoryResponse, 0, len(keys))
	for _, key := range keys {
		resp = append(resp, toCategoryResponse(key, groups[key]))
	}
	return c.JSON(resp)
}

// GetCategory godoc
// @Summary List knowledge base questions of one category
// @Tags knowledge
// @Produce json
// @Security Bearer
// @Param category path string true "Category key"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /knowledge/categories/{category} [get]
func (h *KnowledgeHandler) GetCategory(c *fiber.Ctx) error {
	groups, _, err := h.knowledge.ByCategory()
	if err != nil {
		h.logger.Error("Failed to read knowledge base", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Knowledge base unavailable",
		})
	}

	category := c.Params("category")
	entries, ok := groups[category]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	return c.JSON(toCategoryResponse(category, entries))
}

// TopQuestions godoc
// @Summary Most frequently matched questions
// @Tags analytics
// @Produce json
// @Security Bearer
// @Param limit query int false "Number of questions"
// @Success 200 {array} dto.QuestionAnalyticsResponse
// @Router /analytics/top [get]
func (h *KnowledgeHandler) TopQuestions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.topN)

	top := h.tracker.TopN(limit)
	resp := make([]dto.QuestionAnalyticsResponse, 0, len(top))
	for _, a := range top {
		resp = append(resp, dto.QuestionAnalyticsResponse{
			ID:          a.ID,
			Question:    a.Question,
			Category:    a.Category,
			Count:       a.Count,
			LastAskedAt: a.LastAskedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(resp)
}

func toCategoryResponse(category string, entries []models.KnowledgeEntry) dto.CategoryResponse {
	return dto.CategoryResponse{
		Category:  category,
		Label:     models.CategoryLabel(category),
		Questions: toKnowledgeEntryResponses(entries),
	}
}
