package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"pharma-dashboard/internal/model"

	"github.com/shopspring/decimal"
)

func TestBatchPatch_NullableFields(t *testing.T) {
	end := time.Date(2024, time.November, 25, 0, 0, 0, 0, time.UTC)
	efficiency := decimal.NewFromInt(95)

	tests := []struct {
		name           string
		body           string
		wantEnd        bool
		wantEfficiency string
	}{
		{"absent keeps", `{}`, true, "95"},
		{"null clears", `{"endDate":null,"efficiency":null}`, false, ""},
		{"value replaces", `{"efficiency":88.5}`, true, "88.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := model.ProductionBatch{
				BatchNumber: "BTH-2024-0894",
				Status:      model.BatchCompleted,
				EndDate:     &end,
				Efficiency:  &efficiency,
			}

			var patch model.BatchPatch
			if err := json.Unmarshal([]byte(tt.body), &patch); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			patch.Apply(&b)

			if (b.EndDate != nil) != tt.wantEnd {
				t.Errorf("endDate: want present=%v, got %v", tt.wantEnd, b.EndDate)
			}
			if tt.wantEfficiency == "" {
				if b.Efficiency != nil {
					t.Errorf("efficiency: want nil, got %s", b.Efficiency)
				}
				return
			}
			if b.Efficiency == nil || !b.Efficiency.Equal(decimal.RequireFromString(tt.wantEfficiency)) {
				t.Errorf("efficiency: want %s, got %v", tt.wantEfficiency, b.Efficiency)
			}
			if b.BatchNumber != "BTH-2024-0894" || b.Status != model.BatchCompleted {
				t.Errorf("untouched fields changed: %+v", b)
			}
		})
	}
}

func TestNullable_ApplyDoesNotAliasPatch(t *testing.T) {
	n := model.NullableOf(decimal.NewFromInt(10))

	var dst *decimal.Decimal
	n.ApplyTo(&dst)
	n.Value = decimal.NewFromInt(20)

	if dst == nil || !dst.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10, got %v", dst)
	}
}

func TestNullable_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A model.Nullable[int] `json:"a"`
		B model.Nullable[int] `json:"b"`
	}{A: model.NullableOf(3), B: model.Null[int]()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"a":3,"b":null}` {
		t.Errorf("unexpected json: %s", data)
	}
}

func TestProduct_LowStockAndValue(t *testing.T) {
	p := model.Product{Price: decimal.RequireFromString("45000.50"), Stock: 100, MinStock: 100}
	if p.IsLowStock() {
		t.Error("stock equal to minimum is not low")
	}
	p.Stock = 99
	if !p.IsLowStock() {
		t.Error("stock below minimum is low")
	}
	if !p.StockValue().Equal(decimal.RequireFromString("4455049.5")) {
		t.Errorf("unexpected stock value %s", p.StockValue())
	}
}

func TestProductInput_ToProductDefaults(t *testing.T) {
	price := decimal.NewFromInt(1)
	p := (&model.ProductInput{Name: "n", Code: "c", Category: "cat", Unit: "box", Price: &price}).ToProduct()
	if p.Stock != 0 || p.MinStock != model.DefaultMinStock || p.Status != model.ProductStatusActive {
		t.Errorf("defaults not applied: %+v", p)
	}

	zero := 0
	p = (&model.ProductInput{Name: "n", Code: "c", Category: "cat", Unit: "box", Price: &price, MinStock: &zero}).ToProduct()
	if p.MinStock != 0 {
		t.Errorf("explicit zero minStock must be kept, got %d", p.MinStock)
	}
}

func TestUser_Password(t *testing.T) {
	var u model.User
	if err := u.SetPassword("admin123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == "admin123" {
		t.Error("password stored in plain text")
	}
	if !u.CheckPassword("admin123") {
		t.Error("expected password to match")
	}
	if u.CheckPassword("wrong") {
		t.Error("expected wrong password to fail")
	}

	data, _ := json.Marshal(u)
	if string(data) != `{"id":"00000000-0000-0000-0000-000000000000","username":""}` {
		t.Errorf("password hash leaked into json: %s", data)
	}
}
