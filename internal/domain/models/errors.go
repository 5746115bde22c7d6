package models

import "fmt"

// ValidationError reports an argument that fails a domain constraint,
// such as a non-positive trade quantity or a negative query price.
//
// It is returned immediately to the caller and never recovered internally.
type ValidationError struct {
	Field  string // Name of the offending argument (e.g., "price")
	Reason string // Human-readable constraint description
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a symbol that is absent from the registry view.
type NotFoundError struct {
	Symbol string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("symbol %q is not registered", e.Symbol)
}

// MismatchError reports a trade recorded under a stock whose symbol does
// not match the trade's own symbol.
type MismatchError struct {
	Symbol      string // Symbol the trade was recorded under
	TradeSymbol string // Symbol carried by the trade itself
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("trade for %q does not belong to stock %q", e.TradeSymbol, e.Symbol)
}
