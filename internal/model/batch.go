package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BatchStatus string

const (
	BatchInProgress   BatchStatus = "in_progress"
	BatchQualityCheck BatchStatus = "quality_check"
	BatchCompleted    BatchStatus = "completed"
	BatchShipped      BatchStatus = "shipped"
)

// BatchStatuses lists every status in lifecycle order.
var BatchStatuses = []BatchStatus{BatchInProgress, BatchQualityCheck, BatchCompleted, BatchShipped}

// IsActive reports whether the batch is still on the production floor.
func (s BatchStatus) IsActive() bool {
	return s == BatchInProgress || s == BatchQualityCheck
}

// IsFinished reports whether the batch left production.
func (s BatchStatus) IsFinished() bool {
	return s == BatchCompleted || s == BatchShipped
}

type ProductionBatch struct {
	BaseModel
	BatchNumber string           `json:"batchNumber"`
	ProductID   uuid.UUID        `json:"productId"`
	Quantity    int              `json:"quantity"`
	Status      BatchStatus      `json:"status"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	Efficiency  *decimal.Decimal `json:"efficiency"`
}

// BatchView is a batch enriched with the display name of its product.
type BatchView struct {
	ProductionBatch
	ProductName string `json:"productName"`
}

type BatchInput struct {
	BatchNumber string           `json:"batchNumber" validate:"required"`
	ProductID   uuid.UUID        `json:"productId" validate:"uuid_required"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
	Status      BatchStatus      `json:"status" validate:"omitempty,oneof=in_progress quality_check completed shipped"`
	StartDate   time.Time        `json:"startDate" validate:"required"`
	EndDate     *time.Time       `json:"endDate"`
	Efficiency  *decimal.Decimal `json:"efficiency" validate:"omitnil,gte=0,lte=100"`
}

func (in *BatchInput) ToBatch() ProductionBatch {
	b := ProductionBatch{
		BatchNumber: in.BatchNumber,
		ProductID:   in.ProductID,
		Status:      BatchInProgress,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Efficiency:  in.Efficiency,
	}
	if in.Quantity != nil {
		b.Quantity = *in.Quantity
	}
	if in.Status != "" {
		b.Status = in.Status
	}
	return b
}

// BatchPatch holds the fields of a partial batch update. EndDate and
// Efficiency can be cleared with an explicit JSON null.
type BatchPatch struct {
	BatchNumber *string                   `json:"batchNumber" validate:"omitnil,min=1"`
	ProductID   *uuid.UUID                `json:"productId" validate:"omitnil,uuid_required"`
	Quantity    *int                      `json:"quantity" validate:"omitnil,gte=0"`
	Status      *BatchStatus              `json:"status" validate:"omitnil,oneof=in_progress quality_check completed shipped"`
	StartDate   *time.Time                `json:"startDate"`
	EndDate     Nullable[time.Time]       `json:"endDate"`
	Efficiency  Nullable[decimal.Decimal] `json:"efficiency" validate:"omitnil,gte=0,lte=100"`
}

func (patch *BatchPatch) Apply(b *ProductionBatch) {
	if patch.BatchNumber != nil {
		b.BatchNumber = *patch.BatchNumber
	}
	if patch.ProductID != nil {
		b.ProductID = *patch.ProductID
	}
	if patch.Quantity != nil {
		b.Quantity = *patch.Quantity
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.StartDate != nil {
		b.StartDate = *patch.StartDate
	}
	patch.EndDate.ApplyTo(&b.EndDate)
	patch.Efficiency.ApplyTo(&b.Efficiency)
}

// Clone returns a copy that shares no pointers with b.
func (b *ProductionBatch) Clone() ProductionBatch {
	out := *b
	if b.EndDate != nil {
		end := *b.EndDate
		out.EndDate = &end
	}
	if b.Efficiency != nil {
		efficiency := *b.Efficiency
		out.Efficiency = &efficiency
	}
	return out
}
