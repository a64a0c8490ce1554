package handlers

import (
	"errors"
	"time"

	"spa-concierge/internal/models"
	"spa-concierge/internal/repository"
	"spa-concierge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type EditorialHandler struct {
	contentRepo    *repository.ContentRepository
	publishService *service.PublishService
	logger         *zap.Logger
}

func NewEditorialHandler(
	contentRepo *repository.ContentRepository,
	publishService *service.PublishService,
	logger *zap.Logger,
) *EditorialHandler {
	return &EditorialHandler{
		contentRepo:    contentRepo,
		publishService: publishService,
		logger:         logger,
	}
}

// ListEntries godoc
// @Summary List stored knowledge entries
// @Tags editorial
// @Produce json
// @Security Bearer
// @Success 200 {array} models.KnowledgeEntry
// @Router /editorial/entries [get]
func (h *EditorialHandler) ListEntries(c *fiber.Ctx) error {
	entries, err := h.contentRepo.List(c.Context())
	if err != nil {
		h.logger.Error("Failed to list entries", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list entries",
		})
	}
	return c.JSON(entries)
}

// UpsertEntry godoc
// @Summary Create or update a knowledge entry
// @Tags editorial
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Param request body models.KnowledgeEntry true "Entry"
// @Success 200 {object} models.KnowledgeEntry
// @Failure 400 {object} map[string]string
// @Router /editorial/entries/{id} [put]
func (h *EditorialHandler) UpsertEntry(c *fiber.Ctx) error {
	var entry models.KnowledgeEntry
	if err := c.BodyParser(&entry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id := c.Params("id")
	if entry.ID == "" {
		entry.ID = id
	}
	if entry.ID != id {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Entry id does not match path",
		})
	}
	if entry.Topic == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Topic is required",
		})
	}
	if entry.UpdatedAt == "" {
		entry.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if entry.Version == 0 {
		entry.Version = 1
	}

	if err := h.contentRepo.Upsert(c.Context(), &entry); err != nil {
		h.logger.Error("Failed to save entry", zap.String("id", entry.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save entry",
		})
	}

	return c.JSON(entry)
}

// DeleteEntry godoc
// @Summary Delete a knowledge entry
// @Tags editorial
// @Produce json
// @Security Bearer
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /editorial/entries/{id} [delete]
func (h *EditorialHandler) DeleteEntry(c *fiber.Ctx) error {
	err := h.contentRepo.Delete(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Entry not found",
			})
		}
		h.logger.Error("Failed to delete entry", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete entry",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Publish godoc
// @Summary Render the content store as a remote-library document
// @Description Build the JSON document to host at the URL the library loader polls
// @Tags editorial
// @Produce json
// @Security Bearer
// @Success 200 {object} models.KnowledgeLibrary
// @Failure 409 {object} map[string]string
// @Router /editorial/publish [post]
func (h *EditorialHandler) Publish(c *fiber.Ctx) error {
	doc, err := h.publishService.BuildDocument(c.Context())
	if err != nil {
		if errors.Is(err, service.ErrNothingToPublish) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Content store is empty",
			})
		}
		h.logger.Error("Failed to build library document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build library document",
		})
	}
	return c.JSON(doc)
}
