package models

// StockType distinguishes how a stock's dividend is determined.
type StockType string

const (
	// StockTypeCommon pays an absolute last-declared dividend per share.
	StockTypeCommon StockType = "Common"
	// StockTypePreferred pays a fixed percentage of par value.
	StockTypePreferred StockType = "Preferred"
)

// Stock holds the exchange-listed metadata for one symbol together with
// its recorded trade history.
//
// Fields:
//   - Symbol: unique ticker identifying the stock (e.g., "TEA").
//   - Type: Common or Preferred.
//   - LastDividend: last declared dividend per share, absolute amount.
//   - FixedDividend: dividend as a fraction of par value. Populated only
//     for Preferred stock; nil for Common, where it is never consulted.
//     Registration receives a percentage and stores percentage/100 here.
//   - ParValue: nominal face value per share.
//   - Trades: append-only trade history in insertion order. Concurrent
//     readers must go through the registry, which copies under lock.
type Stock struct {
	Symbol        string
	Type          StockType
	LastDividend  float64
	FixedDividend *float64
	ParValue      float64
	Trades        []*Trade
}
