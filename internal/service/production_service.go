package service

import (
	"context"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"

	"github.com/google/uuid"
)

const unknownProductName = "Unknown"

type ProductionService interface {
	GetAllBatches() ([]model.BatchView, error)
	GetBatchByID(id uuid.UUID) (*model.ProductionBatch, error)
	CreateBatch(ctx context.Context, req *model.BatchInput) (*model.ProductionBatch, error)
	UpdateBatch(ctx context.Context, id uuid.UUID, patch *model.BatchPatch) (*model.ProductionBatch, error)
}

type productionService struct {
	batchRepo   repository.BatchRepository
	productRepo repository.ProductRepository
	cache       cache.DashboardSummaryCache
}

func NewProductionService(bRepo repository.BatchRepository, pRepo repository.ProductRepository, c cache.DashboardSummaryCache) ProductionService {
	return &productionService{
		batchRepo:   bRepo,
		productRepo: pRepo,
		cache:       c,
	}
}

// GetAllBatches lists batches with the display name of their product.
func (s *productionService) GetAllBatches() ([]model.BatchView, error) {
	batches, err := s.batchRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names, err := productNames(s.productRepo)
	if err != nil {
		return nil, err
	}

	views := make([]model.BatchView, 0, len(batches))
	for _, b := range batches {
		views = append(views, model.BatchView{
			ProductionBatch: b,
			ProductName:     names.lookup(b.ProductID),
		})
	}
	return views, nil
}

func (s *productionService) GetBatchByID(id uuid.UUID) (*model.ProductionBatch, error) {
	return s.batchRepo.FindByID(id)
}

func (s *productionService) CreateBatch(ctx context.Context, req *model.BatchInput) (*model.ProductionBatch, error) {
	if err := validateInput("batch", req); err != nil {
		return nil, err
	}

	batch := req.ToBatch()
	if err := s.batchRepo.Create(&batch); err != nil {
		return nil, checkDuplicate(err, "batch", "batchNumber", "create batch")
	}

	logger.Log.Info().
		Str("batch_id", batch.ID.String()).
		Str("batch_number", batch.BatchNumber).
		Str("status", string(batch.Status)).
		Msg("production batch created")

	invalidateSummary(ctx, s.cache, "batch_created")
	return &batch, nil
}

func (s *productionService) UpdateBatch(ctx context.Context, id uuid.UUID, patch *model.BatchPatch) (*model.ProductionBatch, error) {
	if err := validateInput("batch", patch); err != nil {
		return nil, err
	}

	updated, err := s.batchRepo.Update(id, patch)
	if err != nil {
		return nil, checkDuplicate(err, "batch", "batchNumber", "update batch")
	}

	logger.Log.Info().
		Str("batch_id", updated.ID.String()).
		Str("status", string(updated.Status)).
		Msg("production batch updated")

	invalidateSummary(ctx, s.cache, "batch_updated")
	return updated, nil
}

// nameIndex resolves product ids to display names.
type nameIndex map[uuid.UUID]string

func (n nameIndex) lookup(id uuid.UUID) string {
	if name, ok := n[id]; ok {
		return name
	}
	return unknownProductName
}

func productNames(repo repository.ProductRepository) (nameIndex, error) {
	products, err := repo.FindAll()
	if err != nil {
		return nil, err
	}
	return indexProductNames(products), nil
}

func indexProductNames(products []model.Product) nameIndex {
	names := make(nameIndex, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names
}
