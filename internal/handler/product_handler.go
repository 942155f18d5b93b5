package handler

import (
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.InventoryService
}

func NewProductHandler(s service.InventoryService) *ProductHandler {
	return &ProductHandler{service: s}
}

// GetProducts returns all products
// GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err, "", "Failed to fetch products")
	}
	return c.JSON(products)
}

// GetLowStockProducts returns products below their minimum stock
// GET /api/products/low-stock
func (h *ProductHandler) GetLowStockProducts(c *fiber.Ctx) error {
	products, err := h.service.GetLowStockProducts()
	if err != nil {
		return respondError(c, err, "", "Failed to fetch products")
	}
	return c.JSON(products)
}

// GetProduct returns a single product
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Product not found")
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		return respondError(c, err, "Product not found", "Failed to fetch product")
	}
	if product == nil {
		return notFound(c, "Product not found")
	}
	return c.JSON(product)
}

// CreateProduct handles product creation
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req model.ProductInput
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c, "product", err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err, "Product not found", "Failed to create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct applies a partial update
// PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c, "Product not found")
	}

	var patch model.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return invalidJSON(c, "product", err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, &patch)
	if err != nil {
		return respondError(c, err, "Product not found", "Failed to update product")
	}
	return c.JSON(product)
}
