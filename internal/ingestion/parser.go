package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/gbce/internal/domain/models"
)

// expectedStockHeaders enforces strict column ordering for stock listing
// files. If the header doesn't match EXACTLY (order + count), parsing
// must fail.
var expectedStockHeaders = []string{
	"Symbol",
	"Type",
	"LastDividend",
	"FixedDividendPercent",
	"ParValue",
}

// expectedTradeHeaders enforces strict column ordering for trade files.
var expectedTradeHeaders = []string{
	"Symbol",
	"Quantity",
	"Side",
	"Price",
	"Timestamp",
}

// StockRow is one parsed stock listing entry, carrying the arguments a
// registry registration takes. FixedDividendPercent is nil when the cell
// is empty (Common stock).
type StockRow struct {
	Symbol               string
	Type                 models.StockType
	LastDividend         float64
	ParValue             float64
	FixedDividendPercent *float64
}

// newReader builds a semicolon-separated CSV reader with the settings
// shared by both file formats.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1 // allow variable but we check explicitly
	return cr
}

// validateHeader checks that the first record matches the expected columns
// exactly, in order.
func validateHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("header has %d columns, expected %d", len(got), len(want))
	}
	for i := range want {
		if strings.TrimSpace(got[i]) != want[i] {
			return fmt.Errorf("header column %d is %q, expected %q", i+1, got[i], want[i])
		}
	}
	return nil
}

// ParseStocks reads a stock listing file.
//
// Format (semicolon-separated):
//
//	Symbol;Type;LastDividend;FixedDividendPercent;ParValue
//	TEA;Common;0;;100
//	GIN;Preferred;8;2;100
//
// An empty FixedDividendPercent cell means the stock has none (Common).
// Any malformed row aborts parsing with an error.
func ParseStocks(r io.Reader) ([]StockRow, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header, expectedStockHeaders); err != nil {
		return nil, err
	}

	var rows []StockRow
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) != len(expectedStockHeaders) {
			return nil, fmt.Errorf("line %d: has %d columns, expected %d", line, len(rec), len(expectedStockHeaders))
		}

		row := StockRow{Symbol: strings.TrimSpace(rec[0])}

		switch kind := models.StockType(strings.TrimSpace(rec[1])); kind {
		case models.StockTypeCommon, models.StockTypePreferred:
			row.Type = kind
		default:
			return nil, fmt.Errorf("line %d: unknown stock type %q", line, rec[1])
		}

		if row.LastDividend, err = strconv.ParseFloat(strings.TrimSpace(rec[2]), 64); err != nil {
			return nil, fmt.Errorf("line %d: last dividend: %w", line, err)
		}
		if cell := strings.TrimSpace(rec[3]); cell != "" {
			pct, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: fixed dividend: %w", line, err)
			}
			row.FixedDividendPercent = &pct
		}
		if row.ParValue, err = strconv.ParseFloat(strings.TrimSpace(rec[4]), 64); err != nil {
			return nil, fmt.Errorf("line %d: par value: %w", line, err)
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// ParseTrades reads a trade file.
//
// Format (semicolon-separated):
//
//	Symbol;Quantity;Side;Price;Timestamp
//	TEA;100;Buy;120.5;2026-08-24T10:00:00Z
//	TEA;50;Sell;125.4;
//
// Timestamp is RFC3339; an empty cell defaults the trade to construction
// time. Rows go through models.NewTrade, so quantity/price/side
// constraints apply.
func ParseTrades(r io.Reader) ([]*models.Trade, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header, expectedTradeHeaders); err != nil {
		return nil, err
	}

	var trades []*models.Trade
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) != len(expectedTradeHeaders) {
			return nil, fmt.Errorf("line %d: has %d columns, expected %d", line, len(rec), len(expectedTradeHeaders))
		}

		symbol := strings.TrimSpace(rec[0])
		quantity, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: quantity: %w", line, err)
		}
		side := models.TradeSide(strings.TrimSpace(rec[2]))
		price, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: price: %w", line, err)
		}

		var timestamp time.Time
		if cell := strings.TrimSpace(rec[4]); cell != "" {
			if timestamp, err = time.Parse(time.RFC3339, cell); err != nil {
				return nil, fmt.Errorf("line %d: timestamp: %w", line, err)
			}
		}

		trade, err := models.NewTrade(symbol, quantity, side, price, timestamp)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		trades = append(trades, trade)
	}
	return trades, nil
}
