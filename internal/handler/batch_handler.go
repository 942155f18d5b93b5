package handler

import (
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BatchHandler struct {
	service service.ProductionService
}

func NewBatchHandler(s service.ProductionService) *BatchHandler {
	return &BatchHandler{service: s}
}

// GetBatches returns all batches with their product name
// GET /api/batches
func (h *BatchHandler) GetBatches(c *fiber.Ctx) error {
	batches, err := h.service.GetAllBatches()
	if err != nil {
		return respondError(c, err, "", "Failed to fetch batches")
	}
	return c.JSON(batches)
}

// GET /api/batches/:id
func (h *BatchHandler) GetBatch(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Batch not found")
	}

	batch, err := h.service.GetBatchByID(id)
	if err != nil {
		return respondError(c, err, "Batch not found", "Failed to fetch batch")
	}
	if batch == nil {
		return notFound(c, "Batch not found")
	}
	return c.JSON(batch)
}

// POST /api/batches
func (h *BatchHandler) CreateBatch(c *fiber.Ctx) error {
	var req model.BatchInput
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, "batch", err)
	}

	batch, err := h.service.CreateBatch(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Batch not found", "Failed to create batch")
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// PATCH /api/batches/:id
func (h *BatchHandler) UpdateBatch(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Batch not found")
	}

	var patch model.BatchPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidJSON(c, "batch", err)
	}

	batch, err := h.service.UpdateBatch(c.UserContext(), id, &patch)
	if err != nil {
		return respondError(c, err, "Batch not found", "Failed to update batch")
	}
	return c.JSON(batch)
}
