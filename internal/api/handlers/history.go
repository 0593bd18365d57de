package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contentwerk/seo-engine/internal/models"
	"github.com/contentwerk/seo-engine/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryHandler serves the generation history endpoints
type HistoryHandler struct {
	Repo repository.GenerationRepository
}

// NewHistoryHandler creates a history handler
func NewHistoryHandler(repo repository.GenerationRepository) *HistoryHandler {
	return &HistoryHandler{Repo: repo}
}

// ListGenerations godoc
// @Summary List generation history
// @Description Returns the authenticated user's generation runs, newest first
// @Tags generation
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Router /api/generations [get]
// @Security BearerAuth
func (h *HistoryHandler) ListGenerations(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		return unauthorized(c)
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 1 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	generations, total, err := h.Repo.ListByUser(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load generation history",
		})
	}

	items := make([]fiber.Map, 0, len(generations))
	for _, g := range generations {
		items = append(items, summarize(g))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
		"items":   items,
	})
}

// GetGeneration godoc
// @Summary Get one generation run
// @Description Returns a single generation run including its full content
// @Tags generation
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/generations/{id} [get]
// @Security BearerAuth
func (h *HistoryHandler) GetGeneration(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid generation ID",
		})
	}

	generation, err := h.Repo.FindByUserAndID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Generation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load generation",
		})
	}

	item := summarize(*generation)
	item["content"] = json.RawMessage(generation.Content)

	return c.JSON(fiber.Map{
		"success":    true,
		"generation": item,
	})
}

func summarize(g models.Generation) fiber.Map {
	return fiber.Map{
		"id":            g.ID,
		"focusKeyword":  g.FocusKeyword,
		"pageType":      g.PageType,
		"mode":          g.Mode,
		"promptVersion": g.PromptVersion,
		"model":         g.Model,
		"createdAt":     g.CreatedAt,
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Authentication required",
	})
}
