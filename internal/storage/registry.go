package storage

import (
	"sync"

	"github.com/guttosm/gbce/internal/domain/models"
)

// StockRegistry defines the contract for the in-memory exchange ledger:
// per-symbol stock metadata plus an append-only trade history.
//
// Register and RecordTrade are writers; all other methods are readers and
// may run concurrently with each other.
type StockRegistry interface {
	Register(symbol string, kind models.StockType, lastDividend, parValue float64, fixedDividendPercent *float64) *models.Stock
	RecordTrade(symbol string, trade *models.Trade) error
	Get(symbol string) (*models.Stock, error)
	Trades(symbol string) ([]*models.Trade, error)
	All() map[string]*models.Stock
}

type memoryRegistry struct {
	mu     sync.RWMutex
	stocks map[string]*models.Stock
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() StockRegistry {
	return &memoryRegistry{stocks: make(map[string]*models.Stock)}
}

// NewMemoryRegistryFrom wraps a prebuilt symbol → stock mapping, giving a
// caller an isolated view (e.g., a fixture in tests). The map is used as-is;
// the caller must not touch it afterwards.
func NewMemoryRegistryFrom(stocks map[string]*models.Stock) StockRegistry {
	if stocks == nil {
		stocks = make(map[string]*models.Stock)
	}
	return &memoryRegistry{stocks: stocks}
}

var (
	defaultRegistry     StockRegistry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry instance, created on first use.
// Convenience call sites may use it instead of injecting their own.
func Default() StockRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewMemoryRegistry()
	})
	return defaultRegistry
}

// Register creates or overwrites the entry for symbol.
//
// fixedDividendPercent, when given, is a percentage and is stored as
// percentage/100 so that metric queries consume a fraction directly.
// No positivity validation happens here; only trade construction
// enforces positivity.
func (r *memoryRegistry) Register(symbol string, kind models.StockType, lastDividend, parValue float64, fixedDividendPercent *float64) *models.Stock {
	var fixed *float64
	if fixedDividendPercent != nil {
		f := *fixedDividendPercent / 100
		fixed = &f
	}

	stock := &models.Stock{
		Symbol:        symbol,
		Type:          kind,
		LastDividend:  lastDividend,
		FixedDividend: fixed,
		ParValue:      parValue,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stocks[symbol] = stock
	return stock
}

// RecordTrade appends trade to the named stock's history.
//
// Errors:
//   - *models.ValidationError when trade is nil.
//   - *models.NotFoundError when symbol is not registered.
//   - *models.MismatchError when trade.Symbol differs from symbol.
func (r *memoryRegistry) RecordTrade(symbol string, trade *models.Trade) error {
	if trade == nil {
		return &models.ValidationError{Field: "trade", Reason: "must not be nil"}
	}
	if trade.Symbol != symbol {
		return &models.MismatchError{Symbol: symbol, TradeSymbol: trade.Symbol}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stock, ok := r.stocks[symbol]
	if !ok {
		return &models.NotFoundError{Symbol: symbol}
	}
	stock.Trades = append(stock.Trades, trade)
	return nil
}

// Get returns the stock registered under symbol.
func (r *memoryRegistry) Get(symbol string) (*models.Stock, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stock, ok := r.stocks[symbol]
	if !ok {
		return nil, &models.NotFoundError{Symbol: symbol}
	}
	return stock, nil
}

// Trades returns a copy of the trade history for symbol. The copy is taken
// under the read lock so concurrent appends cannot tear the slice.
func (r *memoryRegistry) Trades(symbol string) ([]*models.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stock, ok := r.stocks[symbol]
	if !ok {
		return nil, &models.NotFoundError{Symbol: symbol}
	}
	out := make([]*models.Trade, len(stock.Trades))
	copy(out, stock.Trades)
	return out, nil
}

// All returns a shallow copy of the symbol → stock mapping.
func (r *memoryRegistry) All() map[string]*models.Stock {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*models.Stock, len(r.stocks))
	for symbol, stock := range r.stocks {
		out[symbol] = stock
	}
	return out
}
