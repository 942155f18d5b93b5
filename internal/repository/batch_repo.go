package repository

import (
	"fmt"

	"pharma-dashboard/internal/model"

	"github.com/google/uuid"
)

type BatchRepository interface {
	Create(batch *model.ProductionBatch) error
	FindAll() ([]model.ProductionBatch, error)
	// FindByID returns nil without error when the batch does not exist.
	FindByID(id uuid.UUID) (*model.ProductionBatch, error)
	FindByBatchNumber(batchNumber string) (*model.ProductionBatch, error)
	Update(id uuid.UUID, patch *model.BatchPatch) (*model.ProductionBatch, error)
}

type batchRepo struct {
	batches *collection[model.ProductionBatch, *model.ProductionBatch]
}

func NewBatchRepo() BatchRepository {
	return &batchRepo{
		batches: newCollection[model.ProductionBatch](func(candidate, existing *model.ProductionBatch) error {
			if candidate.BatchNumber == existing.BatchNumber {
				return fmt.Errorf("%w: batch number %q already exists", ErrDuplicate, candidate.BatchNumber)
			}
			return nil
		}),
	}
}

func (r *batchRepo) Create(batch *model.ProductionBatch) error {
	return r.batches.insert(batch)
}

func (r *batchRepo) FindAll() ([]model.ProductionBatch, error) {
	return r.batches.list(), nil
}

func (r *batchRepo) FindByID(id uuid.UUID) (*model.ProductionBatch, error) {
	batch, _ := r.batches.get(id)
	return batch, nil
}

func (r *batchRepo) FindByBatchNumber(batchNumber string) (*model.ProductionBatch, error) {
	batch, _ := r.batches.find(func(b *model.ProductionBatch) bool { return b.BatchNumber == batchNumber })
	return batch, nil
}

func (r *batchRepo) Update(id uuid.UUID, patch *model.BatchPatch) (*model.ProductionBatch, error) {
	return r.batches.update(id, patch.Apply)
}
