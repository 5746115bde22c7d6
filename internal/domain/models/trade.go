package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TradeSide indicates whether a trade bought or sold the stock.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "Buy"
	TradeSideSell TradeSide = "Sell"
)

// Trade represents one executed transaction. It is immutable once
// constructed: it is appended to a stock's history and never mutated
// or removed afterwards.
//
// Fields:
//   - ID: unique trade identifier assigned at construction.
//   - Symbol: ticker of the stock the trade belongs to. Must match the
//     symbol it is recorded under (checked by the registry).
//   - Quantity: number of shares, strictly positive.
//   - Side: Buy or Sell.
//   - Price: execution price per share, strictly positive.
//   - Timestamp: execution time; defaults to construction time.
type Trade struct {
	ID        string
	Symbol    string
	Quantity  int64
	Side      TradeSide
	Price     float64
	Timestamp time.Time
}

// NewTrade validates and constructs a Trade.
//
// Constraints enforced here (violations return *ValidationError):
//   - Quantity > 0
//   - Price > 0
//   - Side is Buy or Sell
//
// A zero timestamp is replaced with the current time.
func NewTrade(symbol string, quantity int64, side TradeSide, price float64, timestamp time.Time) (*Trade, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: fmt.Sprintf("must be positive, got %d", quantity)}
	}
	if price <= 0 {
		return nil, &ValidationError{Field: "price", Reason: fmt.Sprintf("must be positive, got %v", price)}
	}
	if side != TradeSideBuy && side != TradeSideSell {
		return nil, &ValidationError{Field: "side", Reason: fmt.Sprintf("must be %q or %q, got %q", TradeSideBuy, TradeSideSell, side)}
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return &Trade{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Quantity:  quantity,
		Side:      side,
		Price:     price,
		Timestamp: timestamp,
	}, nil
}

// TotalPrice returns the full traded value, quantity times price.
func (t *Trade) TotalPrice() float64 {
	return float64(t.Quantity) * t.Price
}
