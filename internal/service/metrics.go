package service

import (
	"fmt"
	"math"
	"time"

	"github.com/guttosm/gbce/internal/domain/models"
	"github.com/guttosm/gbce/internal/logger"
	"github.com/guttosm/gbce/internal/storage"
)

// defaultWindow is the trailing window the volume-weighted stock price
// looks back over when no override is configured.
const defaultWindow = 5 * time.Minute

// MetricsEngine computes derived financial metrics over a registry view.
//
// Every method returns (value, ok, err). ok == false with a nil error means
// the metric is mathematically undefined for the current inputs (zero
// denominator or an empty qualifying trade set). That is a valid outcome,
// distinct from failure, and is logged rather than raised. Errors are
// reserved for invalid arguments (*models.ValidationError) and unknown
// symbols (*models.NotFoundError).
type MetricsEngine interface {
	DividendYield(symbol string, price float64) (float64, bool, error)
	PERatio(symbol string, price float64) (float64, bool, error)
	VolumeWeightedStockPrice(symbol string) (float64, bool, error)
	AllShareIndex() (float64, bool, error)
}

type metricsEngine struct {
	stocks storage.StockRegistry
	now    func() time.Time
	window time.Duration
}

// Option customizes a MetricsEngine.
type Option func(*metricsEngine)

// WithClock overrides the current-time source used for the VWSP trailing
// window. Production uses the system clock; tests pin a fixed instant so
// the sliding window is deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *metricsEngine) { e.now = now }
}

// WithWindow overrides the VWSP trailing window length.
func WithWindow(d time.Duration) Option {
	return func(e *metricsEngine) { e.window = d }
}

// NewMetricsEngine constructs an engine over the given registry view.
// A nil registry falls back to the process-wide default instance.
func NewMetricsEngine(stocks storage.StockRegistry, opts ...Option) MetricsEngine {
	if stocks == nil {
		stocks = storage.Default()
	}
	e := &metricsEngine{
		stocks: stocks,
		now:    time.Now,
		window: defaultWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// validatePrice rejects prices that are not numbers >= 0.
func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return &models.ValidationError{Field: "price", Reason: fmt.Sprintf("must be a number >= 0, got %v", price)}
	}
	return nil
}

// DividendYield returns the dividend yield for symbol at the given price.
//
// Common stock: lastDividend / price.
// Preferred stock: fixedDividend * parValue / price, where fixedDividend is
// already stored as a fraction of par value.
//
// A zero price makes the yield undefined (ok == false), not an error.
func (e *metricsEngine) DividendYield(symbol string, price float64) (float64, bool, error) {
	stock, err := e.stocks.Get(symbol)
	if err != nil {
		return 0, false, err
	}
	if err := validatePrice(price); err != nil {
		return 0, false, err
	}
	if price == 0 {
		log := logger.Component("metrics")
		log.Info().Str("symbol", symbol).
			Msg("price is zero, dividend yield is undefined")
		return 0, false, nil
	}

	if stock.Type == models.StockTypePreferred {
		if stock.FixedDividend == nil {
			log := logger.Component("metrics")
			log.Warn().Str("symbol", symbol).
				Msg("preferred stock has no fixed dividend, yield is undefined")
			return 0, false, nil
		}
		return *stock.FixedDividend * stock.ParValue / price, true, nil
	}
	return stock.LastDividend / price, true, nil
}

// PERatio returns price divided by the dividend yield at that price.
// Undefined whenever the yield is undefined or zero.
func (e *metricsEngine) PERatio(symbol string, price float64) (float64, bool, error) {
	yield, ok, err := e.DividendYield(symbol, price)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	if yield == 0 {
		log := logger.Component("metrics")
		log.Info().Str("symbol", symbol).
			Msg("dividend yield is zero, P/E ratio is undefined")
		return 0, false, nil
	}
	return price / yield, true, nil
}

// VolumeWeightedStockPrice returns total traded value divided by total
// traded quantity over trades whose timestamp falls inside the trailing
// window ending now (inclusive lower bound). The window slides with the
// clock, so results change as trades age out.
func (e *metricsEngine) VolumeWeightedStockPrice(symbol string) (float64, bool, error) {
	trades, err := e.stocks.Trades(symbol)
	if err != nil {
		return 0, false, err
	}

	cutoff := e.now().Add(-e.window)
	var totalValue float64
	var totalQuantity int64
	for _, t := range trades {
		if t.Timestamp.Before(cutoff) {
			continue
		}
		totalValue += t.TotalPrice()
		totalQuantity += t.Quantity
	}

	if totalQuantity == 0 {
		return 0, false, nil
	}
	return totalValue / float64(totalQuantity), true, nil
}

// AllShareIndex returns the geometric mean of the volume-weighted stock
// price across every symbol in the view. A single symbol without a defined
// VWSP voids the whole index (all-or-nothing), as does an empty view.
func (e *metricsEngine) AllShareIndex() (float64, bool, error) {
	stocks := e.stocks.All()
	if len(stocks) == 0 {
		return 0, false, nil
	}

	product := 1.0
	for symbol := range stocks {
		vwsp, ok, err := e.VolumeWeightedStockPrice(symbol)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			log := logger.Component("metrics")
			log.Info().Str("symbol", symbol).
				Msg("no qualifying trades, all-share index is undefined")
			return 0, false, nil
		}
		product *= vwsp
	}
	return math.Pow(product, 1/float64(len(stocks))), true, nil
}
