package handlers

import (
	"spa-concierge/internal/dto"
	"spa-concierge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	searchService     *service.SearchService
	escalationService *service.EscalationService
	libraryService    *service.LibraryService
	logger            *zap.Logger
}

func NewKnowledgeHandler(
	searchService *service.SearchService,
	escalationService *service.EscalationService,
	libraryService *service.LibraryService,
	logger *zap.Logger,
) *KnowledgeHandler {
	return &KnowledgeHandler{
		searchService:     searchService,
		escalationService: escalationService,
		libraryService:    libraryService,
		logger:            logger,
	}
}

// Query godoc
// @Summary Retrieve knowledge entries for a chat query
// @Description Rank library entries against a free-text query and return matches, related entries, suggested questions, and the escalation verdict
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Query request"
// @Success 200 {object} dto.QueryResponse
// @Failure 400 {object} map[string]string
// @Router /knowledge/query [post]
func (h *KnowledgeHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	maxMatches := -1
	if req.MaxMatches != nil {
		if *req.MaxMatches < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "maxMatches must not be negative",
			})
		}
		maxMatches = *req.MaxMatches
	}

	result := h.searchService.Retrieve(c.Context(), req.Query, maxMatches)
	escalate := h.escalationService.ShouldEscalate(req.Query, result.Matches)

	return c.JSON(dto.QueryResponse{
		RetrievalResult: *result,
		Escalate:        escalate,
	})
}

// Escalation godoc
// @Summary Check a query against escalation triggers
// @Description Report whether any trigger phrase of the supplied matches appears in the query
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.EscalationRequest true "Escalation request"
// @Success 200 {object} dto.EscalationResponse
// @Failure 400 {object} map[string]string
// @Router /knowledge/escalation [post]
func (h *KnowledgeHandler) Escalation(c *fiber.Ctx) error {
	var req dto.EscalationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(dto.EscalationResponse{
		Escalate: h.escalationService.ShouldEscalate(req.Query, req.Matches),
	})
}

// Library godoc
// @Summary Describe the library snapshot in use
// @Tags knowledge
// @Produce json
// @Success 200 {object} dto.LibraryResponse
// @Router /knowledge/library [get]
func (h *KnowledgeHandler) Library(c *fiber.Ctx) error {
	lib := h.libraryService.GetLibrary(c.Context())
	return c.JSON(dto.LibraryResponse{
		Library: dto.LibraryInfo{
			Source:    string(lib.Source),
			Version:   lib.Version,
			UpdatedAt: lib.UpdatedAt,
		},
		EntryCount: len(lib.Entries),
	})
}
