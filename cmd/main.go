package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/guttosm/gbce/config"
	"github.com/guttosm/gbce/internal/app"
	"github.com/guttosm/gbce/internal/domain/dto"
	"github.com/guttosm/gbce/internal/domain/models"
	"github.com/guttosm/gbce/internal/ingestion"
	"github.com/guttosm/gbce/internal/logger"
	"github.com/guttosm/gbce/internal/service"
	"github.com/guttosm/gbce/internal/storage"
)

// seedSampleData registers the demonstration stock listing and records a
// round of trades against it. Used when no seed files are supplied.
func seedSampleData(reg storage.StockRegistry) error {
	ginFixed := 2.0

	reg.Register("TEA", models.StockTypeCommon, 0, 100, nil)
	reg.Register("POP", models.StockTypeCommon, 8, 100, nil)
	reg.Register("ALE", models.StockTypeCommon, 23, 60, nil)
	reg.Register("GIN", models.StockTypePreferred, 8, 100, &ginFixed)
	reg.Register("JOE", models.StockTypeCommon, 13, 250, nil)

	samples := []struct {
		symbol   string
		quantity int64
		side     models.TradeSide
		price    float64
	}{
		{"TEA", 100, models.TradeSideBuy, 120.5},
		{"TEA", 50, models.TradeSideSell, 125.4},
		{"TEA", 20, models.TradeSideBuy, 118},
		{"TEA", 60, models.TradeSideSell, 122.5},
		{"POP", 200, models.TradeSideBuy, 250},
		{"POP", 100, models.TradeSideSell, 240.4},
		{"ALE", 50, models.TradeSideBuy, 348},
		{"ALE", 50, models.TradeSideSell, 354.8},
		{"GIN", 549, models.TradeSideBuy, 465},
		{"JOE", 400, models.TradeSideSell, 462.4},
		{"JOE", 240, models.TradeSideBuy, 534.75},
	}

	for _, s := range samples {
		trade, err := models.NewTrade(s.symbol, s.quantity, s.side, s.price, time.Time{})
		if err != nil {
			return err
		}
		if err := reg.RecordTrade(s.symbol, trade); err != nil {
			return err
		}
	}
	return nil
}

// quotePrice picks the price used for the yield and P/E queries of one
// stock: the fixed override when given, otherwise the most recent trade
// price, otherwise the par value.
func quotePrice(stock *models.Stock, override float64) float64 {
	if override > 0 {
		return override
	}
	if n := len(stock.Trades); n > 0 {
		return stock.Trades[n-1].Price
	}
	return stock.ParValue
}

// buildReport computes every metric for every registered stock plus the
// all-share index and assembles the printable report.
func buildReport(reg storage.StockRegistry, engine service.MetricsEngine, exchange string, priceOverride float64) (*dto.MarketReport, error) {
	stocks := reg.All()

	symbols := make([]string, 0, len(stocks))
	for symbol := range stocks {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	report := &dto.MarketReport{
		Exchange:    exchange,
		GeneratedAt: time.Now().UTC(),
	}

	for _, symbol := range symbols {
		stock := stocks[symbol]
		price := quotePrice(stock, priceOverride)

		entry := dto.StockReport{
			Symbol:     symbol,
			Type:       string(stock.Type),
			QuotePrice: price,
		}

		if v, ok, err := engine.DividendYield(symbol, price); err != nil {
			return nil, err
		} else if ok {
			entry.DividendYield = &v
		}
		if v, ok, err := engine.PERatio(symbol, price); err != nil {
			return nil, err
		} else if ok {
			entry.PERatio = &v
		}
		if v, ok, err := engine.VolumeWeightedStockPrice(symbol); err != nil {
			return nil, err
		} else if ok {
			entry.VolumeWeightedPrice = &v
		}

		report.Stocks = append(report.Stocks, entry)
	}

	if v, ok, err := engine.AllShareIndex(); err != nil {
		return nil, err
	} else if ok {
		report.AllShareIndex = &v
	}

	return report, nil
}

// main is the demonstration entry point: it seeds a registry (from CSV
// files or built-in sample data), computes every metric, and prints the
// resulting market report as indented JSON.
//
// Flags:
//   - --stocks: stock listing CSV (Symbol;Type;LastDividend;FixedDividendPercent;ParValue).
//   - --trades: trade CSV (Symbol;Quantity;Side;Price;Timestamp). Requires --stocks.
//   - --price:  fixed quote price for yield/P-E queries (default: latest trade price).
func main() {
	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	stocksFile := flag.String("stocks", "", "Stock listing CSV file (optional)")
	tradesFile := flag.String("trades", "", "Trade CSV file (optional, requires --stocks)")
	price := flag.Float64("price", 0, "Fixed quote price for yield/P-E queries (0 = latest trade price)")
	flag.Parse()

	reg, engine, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}
	defer cleanup()

	if *stocksFile != "" {
		if *tradesFile == "" {
			logger.L().Fatal().Msg("--trades is required when --stocks is given")
		}
		nStocks, nTrades, err := ingestion.SeedFromFiles(*stocksFile, *tradesFile, reg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("seeding failed")
		}
		logger.L().Info().Int("stocks", nStocks).Int("trades", nTrades).Msg("registry seeded from files")
	} else {
		if err := seedSampleData(reg); err != nil {
			logger.L().Fatal().Err(err).Msg("sample data seeding failed")
		}
		logger.L().Info().Msg("registry seeded with sample data")
	}

	report, err := buildReport(reg, engine, config.AppConfig.Exchange.Name, *price)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("report computation failed")
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		logger.L().Fatal().Err(err).Msg("report encoding failed")
	}
	fmt.Fprintln(os.Stdout, string(out))
}
