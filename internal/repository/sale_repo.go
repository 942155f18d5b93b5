package repository

import (
	"pharma-dashboard/internal/model"

	"github.com/google/uuid"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
}

type saleRepo struct {
	sales *collection[model.Sale, *model.Sale]
}

func NewSaleRepo() SaleRepository {
	return &saleRepo{sales: newCollection[model.Sale](nil)}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.sales.insert(sale)
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	return r.sales.list(), nil
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	sale, _ := r.sales.get(id)
	return sale, nil
}
