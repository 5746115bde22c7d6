package dto

import "time"

// StockReport is the per-symbol section of the demo report.
//
// Metric fields are pointers: a nil value marshals to JSON null and means
// the metric is undefined for the current inputs (e.g., zero quote price,
// no trades inside the VWSP window). Undefined is a valid outcome, not an
// error.
type StockReport struct {
	Symbol              string   `json:"symbol" example:"TEA"`
	Type                string   `json:"type" example:"Common"`
	QuotePrice          float64  `json:"quote_price" example:"120.50"`
	DividendYield       *float64 `json:"dividend_yield"`
	PERatio             *float64 `json:"pe_ratio"`
	VolumeWeightedPrice *float64 `json:"volume_weighted_price"`
}

// MarketReport is the full report printed by the demo entry point: every
// tracked stock's metrics plus the composite all-share index.
type MarketReport struct {
	Exchange      string        `json:"exchange" example:"GBCE"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Stocks        []StockReport `json:"stocks"`
	AllShareIndex *float64      `json:"all_share_index"`
}
