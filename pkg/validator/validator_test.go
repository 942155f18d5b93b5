package validator

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sample struct {
	Name     string           `json:"name" validate:"required"`
	OwnerID  uuid.UUID        `json:"ownerId" validate:"uuid_required"`
	Price    *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Discount *decimal.Decimal `json:"discount" validate:"omitnil,gte=0,lte=100"`
}

func TestValidateStruct(t *testing.T) {
	price := decimal.RequireFromString("10.50")
	negative := decimal.RequireFromString("-0.01")
	tooHigh := decimal.RequireFromString("100.1")

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantTag   string
	}{
		{"valid", sample{Name: "a", OwnerID: uuid.New(), Price: &price}, "", ""},
		{"missing name", sample{OwnerID: uuid.New(), Price: &price}, "name", "required"},
		{"nil uuid", sample{Name: "a", Price: &price}, "ownerId", "uuid_required"},
		{"missing price", sample{Name: "a", OwnerID: uuid.New()}, "price", "required"},
		{"negative price", sample{Name: "a", OwnerID: uuid.New(), Price: &negative}, "price", "gte"},
		{"discount above range", sample{Name: "a", OwnerID: uuid.New(), Price: &price, Discount: &tooHigh}, "discount", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %+v", errs[0])
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d", len(errs))
			}
			if errs[0].FailedField != tt.wantField || errs[0].Tag != tt.wantTag {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantField, tt.wantTag, errs[0].FailedField, errs[0].Tag)
			}
		})
	}
}
