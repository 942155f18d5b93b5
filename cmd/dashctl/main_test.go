package main

import (
	"bytes"
	"strings"
	"testing"

	"pharma-dashboard/internal/model"
)

func TestPrintProducts(t *testing.T) {
	var buf bytes.Buffer
	if err := printProducts(&buf, nil); err != nil {
		t.Fatalf("printProducts: %v", err)
	}
	if !strings.Contains(buf.String(), "no products below minimum stock") {
		t.Errorf("unexpected output for empty list: %q", buf.String())
	}

	buf.Reset()
	err := printProducts(&buf, []model.Product{
		{Code: "MSP-001", Name: "Masport 500", Stock: 10, MinStock: 100, Unit: "box"},
	})
	if err != nil {
		t.Fatalf("printProducts: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", buf.String())
	}
	if fields := strings.Fields(lines[1]); len(fields) != 6 || fields[0] != "MSP-001" || fields[3] != "10" {
		t.Errorf("unexpected row: %q", lines[1])
	}
}

func TestSeededStore(t *testing.T) {
	store, err := seededStore()
	if err != nil {
		t.Fatalf("seededStore: %v", err)
	}
	products, _ := store.Products.FindAll()
	if len(products) != 3 {
		t.Errorf("expected 3 sample products, got %d", len(products))
	}
}
