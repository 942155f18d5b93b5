package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"pharma-dashboard/internal/cache"
	"pharma-dashboard/internal/config"
	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/internal/seed"
	"pharma-dashboard/internal/service"
	"pharma-dashboard/pkg/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dashctl",
		Usage: "inspect the dashboard computed over the built-in sample data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "log level"},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "print the dashboard summary as JSON",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pretty", Usage: "indent the JSON output"},
					&cli.IntFlag{Name: "months", Usage: "trailing months in the monthly series (default from DASHBOARD_TREND_MONTHS)"},
					&cli.TimestampFlag{Name: "at", Layout: "2006-01-02", Usage: "evaluate the dashboard as of this date"},
				},
				Action: runSummary,
			},
			{
				Name:   "low-stock",
				Usage:  "list products whose stock is below the minimum",
				Action: runLowStock,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error().Err(err).Msg("dashctl failed")
		os.Exit(1)
	}
}

func seededStore() (*repository.Store, error) {
	store := repository.NewMemoryStore()
	if _, err := seed.Load(store); err != nil {
		return nil, err
	}
	return store, nil
}

func runSummary(c *cli.Context) error {
	cfg := config.Load()

	store, err := seededStore()
	if err != nil {
		return err
	}

	months := cfg.Dashboard.TrendMonths
	if c.IsSet("months") {
		months = c.Int("months")
	}

	opts := []service.DashboardOption{service.WithTrendMonths(months)}
	if at := c.Timestamp("at"); at != nil {
		asOf := *at
		opts = append(opts, service.WithClock(func() time.Time { return asOf }))
	}

	dashboard := service.NewDashboardService(store, cache.NewNoopDashboardCache(), opts...)
	summary, err := dashboard.GetSummary(context.Background())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(c.App.Writer)
	if c.Bool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(summary)
}

func runLowStock(c *cli.Context) error {
	store, err := seededStore()
	if err != nil {
		return err
	}

	products, err := service.NewInventoryService(store.Products, cache.NewNoopDashboardCache()).GetLowStockProducts()
	if err != nil {
		return err
	}
	return printProducts(c.App.Writer, products)
}

func printProducts(w io.Writer, products []model.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "no products below minimum stock")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tSTOCK\tMIN\tUNIT")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", p.Code, p.Name, p.Stock, p.MinStock, p.Unit)
	}
	return tw.Flush()
}
