package model

import "github.com/shopspring/decimal"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"

	DefaultMinStock = 100
)

type Product struct {
	BaseModel
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"minStock"`
	Status   string          `json:"status"`
}

// IsLowStock reports whether the current stock is strictly below the threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}

// StockValue is stock * price.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ProductInput is the create payload. Optional numeric fields are pointers so
// that defaults only apply when the client omitted them.
type ProductInput struct {
	Name     string           `json:"name" validate:"required"`
	Code     string           `json:"code" validate:"required"`
	Category string           `json:"category" validate:"required"`
	Unit     string           `json:"unit" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Stock    *int             `json:"stock" validate:"omitnil,gte=0"`
	MinStock *int             `json:"minStock" validate:"omitnil,gte=0"`
	Status   string           `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ToProduct builds the entity, applying schema defaults.
func (in *ProductInput) ToProduct() Product {
	p := Product{
		Name:     in.Name,
		Code:     in.Code,
		Category: in.Category,
		Unit:     in.Unit,
		Stock:    0,
		MinStock: DefaultMinStock,
		Status:   ProductStatusActive,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	return p
}

// ProductPatch holds the fields of a partial update. Nil means "leave unchanged".
type ProductPatch struct {
	Name     *string          `json:"name" validate:"omitnil,min=1"`
	Code     *string          `json:"code" validate:"omitnil,min=1"`
	Category *string          `json:"category" validate:"omitnil,min=1"`
	Unit     *string          `json:"unit" validate:"omitnil,min=1"`
	Price    *decimal.Decimal `json:"price" validate:"omitnil,gte=0"`
	Stock    *int             `json:"stock" validate:"omitnil,gte=0"`
	MinStock *int             `json:"minStock" validate:"omitnil,gte=0"`
	Status   *string          `json:"status" validate:"omitnil,oneof=active inactive"`
}

func (patch *ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
