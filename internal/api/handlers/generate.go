package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/contentwerk/seo-engine/internal/config"
	"github.com/contentwerk/seo-engine/internal/domain"
	"github.com/contentwerk/seo-engine/internal/models"
	"github.com/contentwerk/seo-engine/internal/repository"
	"github.com/contentwerk/seo-engine/internal/service/generation"
	"github.com/contentwerk/seo-engine/internal/service/llm"
	"github.com/contentwerk/seo-engine/internal/service/prompts"
)

// GenerateHandler handles content generation requests
type GenerateHandler struct {
	Orchestrator *generation.Orchestrator
	Repo         repository.GenerationRepository
	Config       *config.Config
	Logger       llm.Logger
}

// NewGenerateHandler creates a generation handler
func NewGenerateHandler(orchestrator *generation.Orchestrator, repo repository.GenerationRepository, cfg *config.Config) *GenerateHandler {
	return &GenerateHandler{
		Orchestrator: orchestrator,
		Repo:         repo,
		Config:       cfg,
		Logger:       llm.NewDefaultLogger(),
	}
}

// GenerateContent godoc
// @Summary Generate SEO content
// @Description Generates, refines or quick-changes SEO content, or analyzes a focus keyword
// @Tags generation
// @Accept json
// @Produce json
// @Param request body domain.GenerationRequest true "Generation request"
// @Success 200 {object} domain.GeneratedContent
// @Failure 400 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /api/generate [post]
// @Security BearerAuth
func (h *GenerateHandler) GenerateContent(c *fiber.Ctx) error {
	req := new(domain.GenerationRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if verr := req.Validate(); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   verr.Error(),
			"details": verr.Details,
		})
	}

	if req.AIModel == "" {
		req.AIModel = h.Config.DefaultModel
	}

	result, err := h.Orchestrator.Handle(c.UserContext(), req)
	if err != nil {
		return h.gatewayError(c, err)
	}

	if result.Analysis != nil {
		return c.JSON(fiber.Map{
			"success":      true,
			"focusKeyword": req.FocusKeyword,
			"analysis":     result.Analysis,
		})
	}

	h.saveGeneration(c, req, result.Content)
	return c.JSON(result.Content)
}

// gatewayError maps gateway failures to HTTP statuses. Rate-limit and
// billing failures pass through with their original status so the frontend
// can show the right message.
func (h *GenerateHandler) gatewayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"success": false,
			"error":   "AI provider rate limit reached, please retry later",
		})
	case errors.Is(err, llm.ErrPaymentRequired):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"success": false,
			"error":   "AI provider quota exhausted",
		})
	default:
		h.Logger.Error("Generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Content generation failed",
		})
	}
}

// saveGeneration persists the run for the history endpoints. Failures are
// logged but never fail the request that produced the content.
func (h *GenerateHandler) saveGeneration(c *fiber.Ctx, req *domain.GenerationRequest, content *domain.GeneratedContent) {
	if h.Repo == nil || content == nil {
		return
	}

	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		return
	}

	payload, err := json.Marshal(content)
	if err != nil {
		h.Logger.Error("Failed to serialize generation for history", "error", err)
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ModeGenerate
	}

	record := &models.Generation{
		UserID:        userID,
		FocusKeyword:  req.FocusKeyword,
		PageType:      req.PageType,
		Mode:          mode,
		PromptVersion: prompts.Lookup(req.PromptVersion).Version,
		Model:         req.AIModel,
		Content:       datatypes.JSON(payload),
	}
	if err := h.Repo.Create(record); err != nil {
		h.Logger.Error("Failed to persist generation history", "error", err)
	}
}
