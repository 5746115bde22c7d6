package main

import (
	"testing"
	"time"

	"github.com/guttosm/gbce/internal/domain/models"
	"github.com/guttosm/gbce/internal/service"
	"github.com/guttosm/gbce/internal/storage"
)

func TestSeedSampleData(t *testing.T) {
	reg := storage.NewMemoryRegistry()
	if err := seedSampleData(reg); err != nil {
		t.Fatalf("seedSampleData: %v", err)
	}

	if got := len(reg.All()); got != 5 {
		t.Fatalf("got %d stocks, want 5", got)
	}
	trades, err := reg.Trades("TEA")
	if err != nil {
		t.Fatalf("Trades(TEA): %v", err)
	}
	if len(trades) != 4 {
		t.Fatalf("TEA has %d trades, want 4", len(trades))
	}
}

func TestQuotePrice(t *testing.T) {
	stock := &models.Stock{Symbol: "TEA", Type: models.StockTypeCommon, ParValue: 100}

	if got := quotePrice(stock, 0); got != 100 {
		t.Fatalf("untraded stock should quote par value, got %v", got)
	}

	trade, _ := models.NewTrade("TEA", 10, models.TradeSideBuy, 120.5, time.Time{})
	stock.Trades = append(stock.Trades, trade)
	if got := quotePrice(stock, 0); got != 120.5 {
		t.Fatalf("expected latest trade price 120.5, got %v", got)
	}

	if got := quotePrice(stock, 99); got != 99 {
		t.Fatalf("override must win, got %v", got)
	}
}

func TestBuildReport(t *testing.T) {
	reg := storage.NewMemoryRegistry()
	if err := seedSampleData(reg); err != nil {
		t.Fatalf("seedSampleData: %v", err)
	}
	engine := service.NewMetricsEngine(reg)

	report, err := buildReport(reg, engine, "GBCE", 0)
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}

	if report.Exchange != "GBCE" || len(report.Stocks) != 5 {
		t.Fatalf("unexpected report shape: %+v", report)
	}

	// Symbols are emitted in sorted order for stable output.
	wantOrder := []string{"ALE", "GIN", "JOE", "POP", "TEA"}
	for i, want := range wantOrder {
		if report.Stocks[i].Symbol != want {
			t.Fatalf("stock %d is %q, want %q", i, report.Stocks[i].Symbol, want)
		}
	}

	// Every sample trade is fresh, so every VWSP and the index are defined.
	for _, s := range report.Stocks {
		if s.VolumeWeightedPrice == nil {
			t.Fatalf("VWSP undefined for %s despite fresh trades", s.Symbol)
		}
	}
	if report.AllShareIndex == nil || *report.AllShareIndex <= 0 {
		t.Fatalf("expected a defined positive all-share index, got %v", report.AllShareIndex)
	}

	// TEA pays no dividend: its yield is a defined zero, its P/E undefined.
	tea := report.Stocks[4]
	if tea.DividendYield == nil || *tea.DividendYield != 0 {
		t.Fatalf("TEA yield should be a defined zero, got %v", tea.DividendYield)
	}
	if tea.PERatio != nil {
		t.Fatalf("TEA P/E should be undefined, got %v", *tea.PERatio)
	}
}
