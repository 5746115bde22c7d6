package app

import (
	"github.com/guttosm/gbce/config"
	"github.com/guttosm/gbce/internal/service"
	"github.com/guttosm/gbce/internal/storage"
)

// InitializeApp sets up all application dependencies and returns a fresh
// stock registry, a metrics engine reading from it, and a cleanup function
// for shutdown.
//
// Responsibilities:
//   - Creates the in-memory registry (the session-lived ledger).
//   - Creates the metrics engine with the VWSP window from configuration.
//   - Provides a cleanup function (currently a no-op; the ledger holds no
//     external resources).
//
// Returns:
//   - storage.StockRegistry: the ledger to register stocks and record trades in.
//   - service.MetricsEngine: the query layer over that registry.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (storage.StockRegistry, service.MetricsEngine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Initialize the registry layer (in-memory ledger)
	reg := storage.NewMemoryRegistry()

	// Initialize the metrics layer (business logic)
	engine := service.NewMetricsEngine(reg, service.WithWindow(cfg.Exchange.Window()))

	cleanup := func() {}

	return reg, engine, cleanup, nil
}
