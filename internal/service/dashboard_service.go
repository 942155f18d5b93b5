package service

import (
	"context"
	"sort"
	"time"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	topProductsLimit   = 5
	DefaultTrendMonths = 9
	monthLabelLayout   = "2006-01"
)

var hundred = decimal.NewFromInt(100)

type DashboardService interface {
	GetSummary(ctx context.Context) (*model.DashboardSummary, error)
}

type DashboardOption func(*dashboardService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) DashboardOption {
	return func(s *dashboardService) { s.now = now }
}

// WithTrendMonths sets how many trailing months the monthly series cover.
func WithTrendMonths(months int) DashboardOption {
	return func(s *dashboardService) { s.trendMonths = months }
}

type dashboardService struct {
	store       *repository.Store
	cache       cache.DashboardSummaryCache
	now         func() time.Time
	trendMonths int
}

func NewDashboardService(store *repository.Store, c cache.DashboardSummaryCache, opts ...DashboardOption) DashboardService {
	s := &dashboardService{
		store:       store,
		cache:       c,
		now:         time.Now,
		trendMonths: DefaultTrendMonths,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *dashboardService) GetSummary(ctx context.Context) (*model.DashboardSummary, error) {
	if cached, ok, err := s.cache.GetSummary(ctx); err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard cache read failed")
	} else if ok {
		return cached, nil
	}

	in, err := s.loadInput()
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(in, s.now(), s.trendMonths)

	if err := s.cache.SetSummary(ctx, &summary); err != nil {
		logger.Log.Warn().Err(err).Msg("dashboard cache write failed")
	}
	return &summary, nil
}

// loadInput reads each collection under its own lock. Products are read last:
// they are never deleted, so every batch or sale already read finds its
// product even when a create lands between the reads.
func (s *dashboardService) loadInput() (SummaryInput, error) {
	var in SummaryInput
	var err error

	if in.Batches, err = s.store.Batches.FindAll(); err != nil {
		return in, err
	}
	if in.Sales, err = s.store.Sales.FindAll(); err != nil {
		return in, err
	}
	if in.Transactions, err = s.store.Financial.FindAll(); err != nil {
		return in, err
	}
	if in.Products, err = s.store.Products.FindAll(); err != nil {
		return in, err
	}
	return in, nil
}

// SummaryInput is a snapshot of the collections the dashboard is built from.
type SummaryInput struct {
	Products     []model.Product
	Batches      []model.ProductionBatch
	Sales        []model.Sale
	Transactions []model.FinancialTransaction
}

// BuildSummary derives the dashboard KPIs. It does not mutate its input and
// never fails; empty input yields zeros and empty lists.
func BuildSummary(in SummaryInput, now time.Time, trendMonths int) model.DashboardSummary {
	window := newMonthWindow(now, trendMonths)
	return model.DashboardSummary{
		Production: summarizeProduction(in.Batches, now, window),
		Sales:      summarizeSales(in.Sales, indexProductNames(in.Products), now, window),
		Financial:  summarizeFinancial(in.Transactions, window),
		Inventory:  summarizeInventory(in.Products),
	}
}

func summarizeProduction(batches []model.ProductionBatch, now time.Time, window monthWindow) model.ProductionSummary {
	summary := model.ProductionSummary{
		TotalBatches:      len(batches),
		AverageEfficiency: decimal.Zero,
		MonthlyProduction: make([]int64, window.len()),
		BatchStatuses:     make([]model.StatusCount, 0, len(model.BatchStatuses)),
	}

	counts := make(map[model.BatchStatus]int, len(model.BatchStatuses))
	efficiencySum := decimal.Zero

	for _, b := range batches {
		counts[b.Status]++
		if b.Status.IsActive() {
			summary.ActiveBatches++
		}
		if b.Status.IsFinished() && b.EndDate != nil && sameDay(*b.EndDate, now) {
			summary.CompletedToday++
		}
		// Missing efficiency counts as zero.
		if b.Efficiency != nil {
			efficiencySum = efficiencySum.Add(*b.Efficiency)
		}
		if i, ok := window.slot(b.StartDate); ok {
			summary.MonthlyProduction[i] += int64(b.Quantity)
		}
	}

	if len(batches) > 0 {
		summary.AverageEfficiency = efficiencySum.DivRound(decimal.NewFromInt(int64(len(batches))), 1)
	}

	for _, status := range model.BatchStatuses {
		summary.BatchStatuses = append(summary.BatchStatuses, model.StatusCount{
			Status: status,
			Count:  counts[status],
		})
	}
	return summary
}

type productSales struct {
	productID uuid.UUID
	quantity  int64
	revenue   decimal.Decimal
}

func summarizeSales(sales []model.Sale, names nameIndex, now time.Time, window monthWindow) model.SalesSummary {
	summary := model.SalesSummary{
		TotalRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
		TotalOrders:    len(sales),
		TopProducts:    make([]model.TopProduct, 0, topProductsLimit),
		RegionalSales:  make([]model.RegionAmount, 0),
		MonthlySales:   make([]model.MonthlySales, window.len()),
	}
	for i, label := range window.labels {
		summary.MonthlySales[i] = model.MonthlySales{Month: label, Revenue: decimal.Zero}
	}

	var perProduct []*productSales
	byProduct := make(map[uuid.UUID]*productSales)
	regionIndex := make(map[string]int)

	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalPrice)

		ps, ok := byProduct[sale.ProductID]
		if !ok {
			ps = &productSales{productID: sale.ProductID, revenue: decimal.Zero}
			byProduct[sale.ProductID] = ps
			perProduct = append(perProduct, ps)
		}
		ps.quantity += int64(sale.Quantity)
		ps.revenue = ps.revenue.Add(sale.TotalPrice)

		idx, ok := regionIndex[sale.Region]
		if !ok {
			idx = len(summary.RegionalSales)
			regionIndex[sale.Region] = idx
			summary.RegionalSales = append(summary.RegionalSales, model.RegionAmount{Region: sale.Region, Amount: decimal.Zero})
		}
		summary.RegionalSales[idx].Amount = summary.RegionalSales[idx].Amount.Add(sale.TotalPrice)

		if i, ok := window.slot(sale.SaleDate); ok {
			summary.MonthlySales[i].Revenue = summary.MonthlySales[i].Revenue.Add(sale.TotalPrice)
			summary.MonthlySales[i].Orders++
		}
		if sameMonth(sale.SaleDate, now) {
			summary.MonthlyRevenue = summary.MonthlyRevenue.Add(sale.TotalPrice)
		}
	}

	// Stable sort keeps first-sold order among equal revenues.
	sort.SliceStable(perProduct, func(i, j int) bool {
		return perProduct[i].revenue.GreaterThan(perProduct[j].revenue)
	})
	if len(perProduct) > topProductsLimit {
		perProduct = perProduct[:topProductsLimit]
	}
	for _, ps := range perProduct {
		summary.TopProducts = append(summary.TopProducts, model.TopProduct{
			Name:     names.lookup(ps.productID),
			Quantity: ps.quantity,
			Revenue:  ps.revenue,
		})
	}
	return summary
}

func summarizeFinancial(transactions []model.FinancialTransaction, window monthWindow) model.FinancialSummary {
	summary := model.FinancialSummary{
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		ProfitMargin:      decimal.Zero,
		MonthlyFinancials: make([]model.MonthlyFinancial, window.len()),
		ExpenseBreakdown:  make([]model.CategoryAmount, 0),
	}
	for i, label := range window.labels {
		summary.MonthlyFinancials[i] = model.MonthlyFinancial{Month: label, Income: decimal.Zero, Expenses: decimal.Zero}
	}

	categoryIndex := make(map[string]int)

	for _, tx := range transactions {
		slot, inWindow := window.slot(tx.TransactionDate)

		switch tx.Type {
		case model.TxIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			if inWindow {
				summary.MonthlyFinancials[slot].Income = summary.MonthlyFinancials[slot].Income.Add(tx.Amount)
			}
		case model.TxExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(tx.Amount)
			if inWindow {
				summary.MonthlyFinancials[slot].Expenses = summary.MonthlyFinancials[slot].Expenses.Add(tx.Amount)
			}

			idx, ok := categoryIndex[tx.Category]
			if !ok {
				idx = len(summary.ExpenseBreakdown)
				categoryIndex[tx.Category] = idx
				summary.ExpenseBreakdown = append(summary.ExpenseBreakdown, model.CategoryAmount{Category: tx.Category, Amount: decimal.Zero})
			}
			summary.ExpenseBreakdown[idx].Amount = summary.ExpenseBreakdown[idx].Amount.Add(tx.Amount)
		}
	}

	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	if !summary.TotalIncome.IsZero() {
		summary.ProfitMargin = summary.NetProfit.Mul(hundred).DivRound(summary.TotalIncome, 1)
	}
	return summary
}

func summarizeInventory(products []model.Product) model.InventorySummary {
	summary := model.InventorySummary{
		TotalProducts:   len(products),
		TotalStockValue: decimal.Zero,
		StockByCategory: make([]model.CategoryStock, 0),
	}

	categoryIndex := make(map[string]int)

	for i := range products {
		p := &products[i]
		if p.IsLowStock() {
			summary.LowStockProducts++
		}

		value := p.StockValue()
		summary.TotalStockValue = summary.TotalStockValue.Add(value)

		idx, ok := categoryIndex[p.Category]
		if !ok {
			idx = len(summary.StockByCategory)
			categoryIndex[p.Category] = idx
			summary.StockByCategory = append(summary.StockByCategory, model.CategoryStock{Category: p.Category, Value: decimal.Zero})
		}
		summary.StockByCategory[idx].Count++
		summary.StockByCategory[idx].Value = summary.StockByCategory[idx].Value.Add(value)
	}
	return summary
}

// monthWindow is the run of calendar months ending with the current one.
type monthWindow struct {
	loc    *time.Location
	labels []string
	index  map[string]int
}

func newMonthWindow(now time.Time, months int) monthWindow {
	w := monthWindow{
		loc:    now.Location(),
		labels: make([]string, 0, max(months, 0)),
		index:  make(map[string]int, max(months, 0)),
	}
	if months <= 0 {
		return w
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		label := first.AddDate(0, i, 0).Format(monthLabelLayout)
		w.index[label] = i
		w.labels = append(w.labels, label)
	}
	return w
}

func (w monthWindow) len() int {
	return len(w.labels)
}

func (w monthWindow) slot(t time.Time) (int, bool) {
	i, ok := w.index[t.In(w.loc).Format(monthLabelLayout)]
	return i, ok
}

// sameDay compares calendar days in the location of now.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func sameMonth(t, now time.Time) bool {
	y1, m1, _ := t.In(now.Location()).Date()
	y2, m2, _ := now.Date()
	return y1 == y2 && m1 == m2
}
