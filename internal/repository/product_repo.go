package repository

import (
	"fmt"

	"pharma-dashboard/internal/model"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	// FindByID returns nil without error when the product does not exist.
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCode(code string) (*model.Product, error)
	Update(id uuid.UUID, patch *model.ProductPatch) (*model.Product, error)
}

type productRepo struct {
	products *collection[model.Product, *model.Product]
}

func NewProductRepo() ProductRepository {
	return &productRepo{
		products: newCollection[model.Product](func(candidate, existing *model.Product) error {
			if candidate.Code == existing.Code {
				return fmt.Errorf("%w: product code %q already exists", ErrDuplicate, candidate.Code)
			}
			return nil
		}),
	}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.products.insert(product)
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	return r.products.list(), nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	product, _ := r.products.get(id)
	return product, nil
}

func (r *productRepo) FindByCode(code string) (*model.Product, error) {
	product, _ := r.products.find(func(p *model.Product) bool { return p.Code == code })
	return product, nil
}

func (r *productRepo) Update(id uuid.UUID, patch *model.ProductPatch) (*model.Product, error) {
	return r.products.update(id, patch.Apply)
}
