package ingestion

import (
	"strings"
	"testing"
	"time"

	"github.com/guttosm/gbce/internal/domain/models"
)

const stocksCSV = `Symbol;Type;LastDividend;FixedDividendPercent;ParValue
TEA;Common;0;;100
POP;Common;8;;100
GIN;Preferred;8;2;100
`

const tradesCSV = `Symbol;Quantity;Side;Price;Timestamp
TEA;100;Buy;120.5;2026-08-24T10:00:00Z
TEA;50;Sell;125.4;
GIN;549;Buy;465;2026-08-24T10:03:00Z
`

func TestParseStocks(t *testing.T) {
	rows, err := ParseStocks(strings.NewReader(stocksCSV))
	if err != nil {
		t.Fatalf("ParseStocks: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Symbol != "TEA" || rows[0].Type != models.StockTypeCommon || rows[0].FixedDividendPercent != nil {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	gin := rows[2]
	if gin.Type != models.StockTypePreferred || gin.FixedDividendPercent == nil || *gin.FixedDividendPercent != 2 {
		t.Fatalf("unexpected preferred row: %+v", gin)
	}
	if gin.LastDividend != 8 || gin.ParValue != 100 {
		t.Fatalf("unexpected preferred amounts: %+v", gin)
	}
}

func TestParseStocks_BadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "wrong header order", in: "Type;Symbol;LastDividend;FixedDividendPercent;ParValue\n"},
		{name: "missing column", in: "Symbol;Type;LastDividend;FixedDividendPercent\n"},
		{name: "unknown stock type", in: "Symbol;Type;LastDividend;FixedDividendPercent;ParValue\nTEA;Weird;0;;100\n"},
		{name: "bad dividend", in: "Symbol;Type;LastDividend;FixedDividendPercent;ParValue\nTEA;Common;abc;;100\n"},
		{name: "bad par value", in: "Symbol;Type;LastDividend;FixedDividendPercent;ParValue\nTEA;Common;0;;xyz\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseStocks(strings.NewReader(tc.in)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseTrades(t *testing.T) {
	trades, err := ParseTrades(strings.NewReader(tradesCSV))
	if err != nil {
		t.Fatalf("ParseTrades: %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("got %d trades, want 3", len(trades))
	}

	first := trades[0]
	if first.Symbol != "TEA" || first.Quantity != 100 || first.Side != models.TradeSideBuy || first.Price != 120.5 {
		t.Fatalf("unexpected first trade: %+v", first)
	}
	want := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Fatalf("timestamp %v, want %v", first.Timestamp, want)
	}

	// Empty timestamp cell defaults to construction time.
	if time.Since(trades[1].Timestamp) > time.Second {
		t.Fatalf("empty timestamp not defaulted: %v", trades[1].Timestamp)
	}
}

func TestParseTrades_BadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{name: "wrong header", in: "Symbol;Qty;Side;Price;Timestamp\n"},
		{name: "bad quantity", in: "Symbol;Quantity;Side;Price;Timestamp\nTEA;ten;Buy;120.5;\n"},
		{name: "zero quantity", in: "Symbol;Quantity;Side;Price;Timestamp\nTEA;0;Buy;120.5;\n"},
		{name: "bad side", in: "Symbol;Quantity;Side;Price;Timestamp\nTEA;10;Hold;120.5;\n"},
		{name: "negative price", in: "Symbol;Quantity;Side;Price;Timestamp\nTEA;10;Buy;-1;\n"},
		{name: "bad timestamp", in: "Symbol;Quantity;Side;Price;Timestamp\nTEA;10;Buy;120.5;yesterday\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTrades(strings.NewReader(tc.in)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
