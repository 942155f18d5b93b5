// Package seed loads the fixed sample data the dashboard starts with.
package seed

import (
	"fmt"
	"time"

	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"

	"github.com/shopspring/decimal"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

var products = []model.Product{
	{Name: "مصپورت 500", Code: "MSP-001", Category: "مکمل‌های دارویی", Unit: "عدد", Price: decimal.NewFromInt(45000), Stock: 50000, MinStock: 30000, Status: model.ProductStatusActive},
	{Name: "زابوتریکس", Code: "ZBT-002", Category: "مکمل‌های دارویی", Unit: "عدد", Price: decimal.NewFromInt(38000), Stock: 40000, MinStock: 25000, Status: model.ProductStatusActive},
	{Name: "مصتروپین", Code: "MST-003", Category: "مکمل‌های دارویی", Unit: "عدد", Price: decimal.NewFromInt(52000), Stock: 35000, MinStock: 20000, Status: model.ProductStatusActive},
}

// Batches and sales reference products round-robin by position.
var batches = []model.ProductionBatch{
	{BatchNumber: "BTH-2024-0892", Quantity: 50000, Status: model.BatchInProgress, StartDate: date("2024-11-26"), Efficiency: ptr(decimal.NewFromInt(87))},
	{BatchNumber: "BTH-2024-0893", Quantity: 75000, Status: model.BatchQualityCheck, StartDate: date("2024-11-24"), Efficiency: ptr(decimal.NewFromInt(92))},
	{BatchNumber: "BTH-2024-0894", Quantity: 40000, Status: model.BatchCompleted, StartDate: date("2024-11-22"), EndDate: ptr(date("2024-11-25")), Efficiency: ptr(decimal.NewFromInt(95))},
	{BatchNumber: "BTH-2024-0895", Quantity: 60000, Status: model.BatchInProgress, StartDate: date("2024-11-27"), Efficiency: ptr(decimal.NewFromInt(78))},
	{BatchNumber: "BTH-2024-0896", Quantity: 80000, Status: model.BatchShipped, StartDate: date("2024-11-19"), EndDate: ptr(date("2024-11-23")), Efficiency: ptr(decimal.NewFromInt(94))},
}

var sales = []model.Sale{
	{Quantity: 800, UnitPrice: decimal.NewFromInt(45000), TotalPrice: decimal.NewFromInt(36000000), Region: "تهران", CustomerName: "داروخانه دکتر احمدی", SaleDate: date("2024-11-29")},
	{Quantity: 1500, UnitPrice: decimal.NewFromInt(45000), TotalPrice: decimal.NewFromInt(67500000), Region: "تهران", CustomerName: "شبکه بهداشت تهران", SaleDate: date("2024-11-28")},
	{Quantity: 600, UnitPrice: decimal.NewFromInt(38000), TotalPrice: decimal.NewFromInt(22800000), Region: "اصفهان", CustomerName: "داروخانه شفا", SaleDate: date("2024-11-28")},
	{Quantity: 900, UnitPrice: decimal.NewFromInt(38000), TotalPrice: decimal.NewFromInt(34200000), Region: "مشهد", CustomerName: "بیمارستان رازی", SaleDate: date("2024-11-27")},
	{Quantity: 1200, UnitPrice: decimal.NewFromInt(52000), TotalPrice: decimal.NewFromInt(62400000), Region: "شیراز", CustomerName: "داروخانه پاستور", SaleDate: date("2024-11-27")},
}

var transactions = []model.FinancialTransaction{
	{Type: model.TxIncome, Category: "فروش مستقیم", Amount: decimal.NewFromInt(7800000000), Description: ptr("درآمد فروش آذر ماه"), TransactionDate: date("2024-11-29")},
	{Type: model.TxExpense, Category: "مواد اولیه", Amount: decimal.NewFromInt(2500000000), Description: ptr("خرید مواد اولیه"), TransactionDate: date("2024-11-28")},
	{Type: model.TxExpense, Category: "حقوق و دستمزد", Amount: decimal.NewFromInt(1200000000), Description: ptr("پرداخت حقوق آذر"), TransactionDate: date("2024-11-27")},
	{Type: model.TxExpense, Category: "انرژی", Amount: decimal.NewFromInt(350000000), Description: ptr("قبض برق و گاز"), TransactionDate: date("2024-11-26")},
	{Type: model.TxIncome, Category: "صادرات", Amount: decimal.NewFromInt(1200000000), Description: ptr("صادرات به عراق"), TransactionDate: date("2024-11-25")},
}

// Stats reports how many records Load inserted per collection.
type Stats struct {
	Products     int
	Batches      int
	Sales        int
	Transactions int
}

// Load inserts the sample data into store.
func Load(store *repository.Store) (Stats, error) {
	var stats Stats

	created := make([]model.Product, 0, len(products))
	for _, p := range products {
		if err := store.Products.Create(&p); err != nil {
			return stats, fmt.Errorf("seed product %s: %w", p.Code, err)
		}
		created = append(created, p)
		stats.Products++
	}

	for i, b := range batches {
		b.ProductID = created[i%len(created)].ID
		if err := store.Batches.Create(&b); err != nil {
			return stats, fmt.Errorf("seed batch %s: %w", b.BatchNumber, err)
		}
		stats.Batches++
	}

	for i, s := range sales {
		s.ProductID = created[i%len(created)].ID
		if err := store.Sales.Create(&s); err != nil {
			return stats, fmt.Errorf("seed sale: %w", err)
		}
		stats.Sales++
	}

	for _, tx := range transactions {
		if err := store.Financial.Create(&tx); err != nil {
			return stats, fmt.Errorf("seed transaction: %w", err)
		}
		stats.Transactions++
	}

	return stats, nil
}
