package handler

import (
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type FinancialHandler struct {
	service service.FinancialService
}

func NewFinancialHandler(s service.FinancialService) *FinancialHandler {
	return &FinancialHandler{service: s}
}

// GET /api/financial
func (h *FinancialHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		return respondError(c, err, "", "Failed to fetch transactions")
	}
	return c.JSON(transactions)
}

// GET /api/financial/:id
func (h *FinancialHandler) GetTransaction(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Transaction not found")
	}

	tx, err := h.service.GetTransactionByID(id)
	if err != nil {
		return respondError(c, err, "Transaction not found", "Failed to fetch transaction")
	}
	if tx == nil {
		return notFound(c, "Transaction not found")
	}
	return c.JSON(tx)
}

// POST /api/financial
func (h *FinancialHandler) CreateTransaction(c *fiber.Ctx) error {
	var req model.FinancialInput
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, "transaction", err)
	}

	tx, err := h.service.RecordTransaction(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Transaction not found", "Failed to create transaction")
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}
