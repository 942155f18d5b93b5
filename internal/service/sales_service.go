package service

import (
	"context"
	"fmt"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"

	"github.com/google/uuid"
)

type SalesService interface {
	GetAllSales() ([]model.SaleView, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
	RecordSale(ctx context.Context, req *model.SaleInput) (*model.Sale, error)
}

type salesService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	cache       cache.DashboardSummaryCache
}

func NewSalesService(sRepo repository.SaleRepository, pRepo repository.ProductRepository, c cache.DashboardSummaryCache) SalesService {
	return &salesService{
		saleRepo:    sRepo,
		productRepo: pRepo,
		cache:       c,
	}
}

func (s *salesService) GetAllSales() ([]model.SaleView, error) {
	sales, err := s.saleRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names, err := productNames(s.productRepo)
	if err != nil {
		return nil, err
	}

	views := make([]model.SaleView, 0, len(sales))
	for _, sale := range sales {
		views = append(views, model.SaleView{
			Sale:        sale,
			ProductName: names.lookup(sale.ProductID),
		})
	}
	return views, nil
}

func (s *salesService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}

func (s *salesService) RecordSale(ctx context.Context, req *model.SaleInput) (*model.Sale, error) {
	if err := validateInput("sale", req); err != nil {
		return nil, err
	}

	sale := req.ToSale()
	if err := s.saleRepo.Create(&sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	logger.Log.Info().
		Str("sale_id", sale.ID.String()).
		Str("region", sale.Region).
		Str("total_price", sale.TotalPrice.String()).
		Msg("sale recorded")

	invalidateSummary(ctx, s.cache, "sale_recorded")
	return &sale, nil
}
