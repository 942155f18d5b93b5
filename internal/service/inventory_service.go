package service

import (
	"context"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"

	"github.com/google/uuid"
)

type InventoryService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	GetLowStockProducts() ([]model.Product, error)
	CreateProduct(ctx context.Context, req *model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch *model.ProductPatch) (*model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	cache       cache.DashboardSummaryCache
}

func NewInventoryService(pRepo repository.ProductRepository, c cache.DashboardSummaryCache) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		cache:       c,
	}
}

func (s *inventoryService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

// GetProductByID returns nil, nil when the product does not exist.
func (s *inventoryService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *inventoryService) GetLowStockProducts() ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	low := make([]model.Product, 0)
	for i := range products {
		if products[i].IsLowStock() {
			low = append(low, products[i])
		}
	}
	return low, nil
}

func (s *inventoryService) CreateProduct(ctx context.Context, req *model.ProductInput) (*model.Product, error) {
	// 1. Schema validation
	if err := validateInput("product", req); err != nil {
		return nil, err
	}

	// 2. Store; the repository enforces code uniqueness
	product := req.ToProduct()
	if err := s.productRepo.Create(&product); err != nil {
		return nil, checkDuplicate(err, "product", "code", "create product")
	}

	logger.Log.Info().
		Str("product_id", product.ID.String()).
		Str("code", product.Code).
		Msg("product created")

	invalidateSummary(ctx, s.cache, "product_created")
	return &product, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id uuid.UUID, patch *model.ProductPatch) (*model.Product, error) {
	if err := validateInput("product", patch); err != nil {
		return nil, err
	}

	updated, err := s.productRepo.Update(id, patch)
	if err != nil {
		return nil, checkDuplicate(err, "product", "code", "update product")
	}

	logger.Log.Info().
		Str("product_id", updated.ID.String()).
		Int("stock", updated.Stock).
		Msg("product updated")

	invalidateSummary(ctx, s.cache, "product_updated")
	return updated, nil
}
