package ingestion

import (
	"fmt"
	"os"

	"github.com/guttosm/gbce/internal/logger"
	"github.com/guttosm/gbce/internal/storage"
)

// SeedFromFiles loads a stock listing file and a trade file into the
// registry. Stocks are registered first so every trade lands on an
// existing entry. Returns the number of stocks and trades loaded.
//
// Trades for unlisted symbols surface the registry's NotFoundError; a
// partially seeded registry is possible on failure, matching the
// append-only ledger semantics (no rollback).
func SeedFromFiles(stocksPath, tradesPath string, reg storage.StockRegistry) (int, int, error) {
	log := logger.Component("ingestion")

	sf, err := os.Open(stocksPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open stocks file: %w", err)
	}
	defer func() { _ = sf.Close() }()

	rows, err := ParseStocks(sf)
	if err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", stocksPath, err)
	}
	for _, row := range rows {
		reg.Register(row.Symbol, row.Type, row.LastDividend, row.ParValue, row.FixedDividendPercent)
	}
	log.Info().Int("stocks", len(rows)).Str("file", stocksPath).Msg("stocks registered")

	tf, err := os.Open(tradesPath)
	if err != nil {
		return len(rows), 0, fmt.Errorf("open trades file: %w", err)
	}
	defer func() { _ = tf.Close() }()

	trades, err := ParseTrades(tf)
	if err != nil {
		return len(rows), 0, fmt.Errorf("parse %s: %w", tradesPath, err)
	}
	for i, trade := range trades {
		if err := reg.RecordTrade(trade.Symbol, trade); err != nil {
			return len(rows), i, fmt.Errorf("record trade %d: %w", i+1, err)
		}
	}
	log.Info().Int("trades", len(trades)).Str("file", tradesPath).Msg("trades recorded")

	return len(rows), len(trades), nil
}
