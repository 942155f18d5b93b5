package handler

import (
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SalesService
}

func NewSaleHandler(s service.SalesService) *SaleHandler {
	return &SaleHandler{service: s}
}

// GET /api/sales
func (h *SaleHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales()
	if err != nil {
		return respondError(c, err, "", "Failed to fetch sales")
	}
	return c.JSON(sales)
}

// GET /api/sales/:id
func (h *SaleHandler) GetSale(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Sale not found")
	}

	sale, err := h.service.GetSaleByID(id)
	if err != nil {
		return respondError(c, err, "Sale not found", "Failed to fetch sale")
	}
	if sale == nil {
		return notFound(c, "Sale not found")
	}
	return c.JSON(sale)
}

// POST /api/sales
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	var req model.SaleInput
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, "sale", err)
	}

	sale, err := h.service.RecordSale(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Sale not found", "Failed to create sale")
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}
