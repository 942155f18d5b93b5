package model

import "github.com/shopspring/decimal"

// DashboardSummary is computed on demand and never stored.
type DashboardSummary struct {
	Production ProductionSummary `json:"production"`
	Sales      SalesSummary      `json:"sales"`
	Financial  FinancialSummary  `json:"financial"`
	Inventory  InventorySummary  `json:"inventory"`
}

type ProductionSummary struct {
	TotalBatches      int             `json:"totalBatches"`
	ActiveBatches     int             `json:"activeBatches"`
	CompletedToday    int             `json:"completedToday"`
	AverageEfficiency decimal.Decimal `json:"averageEfficiency"`
	MonthlyProduction []int64         `json:"monthlyProduction"`
	BatchStatuses     []StatusCount   `json:"batchStatuses"`
}

type StatusCount struct {
	Status BatchStatus `json:"status"`
	Count  int         `json:"count"`
}

type SalesSummary struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	TopProducts    []TopProduct    `json:"topProducts"`
	RegionalSales  []RegionAmount  `json:"regionalSales"`
	MonthlySales   []MonthlySales  `json:"monthlySales"`
}

type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type RegionAmount struct {
	Region string          `json:"region"`
	Amount decimal.Decimal `json:"amount"`
}

type MonthlySales struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type FinancialSummary struct {
	TotalIncome       decimal.Decimal    `json:"totalIncome"`
	TotalExpenses     decimal.Decimal    `json:"totalExpenses"`
	NetProfit         decimal.Decimal    `json:"netProfit"`
	ProfitMargin      decimal.Decimal    `json:"profitMargin"`
	MonthlyFinancials []MonthlyFinancial `json:"monthlyFinancials"`
	ExpenseBreakdown  []CategoryAmount   `json:"expenseBreakdown"`
}

type MonthlyFinancial struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type InventorySummary struct {
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
	TotalStockValue  decimal.Decimal `json:"totalStockValue"`
	StockByCategory  []CategoryStock `json:"stockByCategory"`
}

type CategoryStock struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Value    decimal.Decimal `json:"value"`
}
