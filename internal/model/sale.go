package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records a shipment of product to a customer. TotalPrice is taken as
// given by the client and is not recomputed from quantity * unitPrice.
type Sale struct {
	BaseModel
	ProductID    uuid.UUID       `json:"productId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Region       string          `json:"region"`
	CustomerName string          `json:"customerName"`
	SaleDate     time.Time       `json:"saleDate"`
}

// SaleView is a sale enriched with the display name of its product.
type SaleView struct {
	Sale
	ProductName string `json:"productName"`
}

type SaleInput struct {
	ProductID    uuid.UUID        `json:"productId" validate:"uuid_required"`
	Quantity     *int             `json:"quantity" validate:"required,gte=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice" validate:"required,gte=0"`
	TotalPrice   *decimal.Decimal `json:"totalPrice" validate:"required,gte=0"`
	Region       string           `json:"region" validate:"required"`
	CustomerName string           `json:"customerName" validate:"required"`
	SaleDate     time.Time        `json:"saleDate" validate:"required"`
}

func (in *SaleInput) ToSale() Sale {
	s := Sale{
		ProductID:    in.ProductID,
		Region:       in.Region,
		CustomerName: in.CustomerName,
		SaleDate:     in.SaleDate,
	}
	if in.Quantity != nil {
		s.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		s.UnitPrice = *in.UnitPrice
	}
	if in.TotalPrice != nil {
		s.TotalPrice = *in.TotalPrice
	}
	return s
}
