// Package common provides the shared wiring the subcommands use to
// reach the configuration and the store.
package common

import (
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/config"
	"fjacquet/fattura-desk/internal/ledger"
	"fjacquet/fattura-desk/internal/store"
)

// Env bundles the opened application state one command run needs.
type Env struct {
	Settings *config.Settings
	Store    *store.Store
	Ledger   *ledger.Service
}

// Open resolves the configuration, opens the store it points at and
// prepares the ledger derivations. Commands that cannot proceed without
// these exit through the shared logger.
func Open() *Env {
	settings, err := config.Load(root.ConfigPath)
	if err != nil {
		root.Log.Fatalf("Error reading configuration: %v", err)
	}

	s, err := store.Open(settings.StorePath())
	if err != nil {
		root.Log.Fatalf("Error opening store: %v", err)
	}

	svc, err := ledger.New(s.DB())
	if err != nil {
		_ = s.Close()
		root.Log.Fatalf("Error preparing ledger views: %v", err)
	}

	return &Env{Settings: settings, Store: s, Ledger: svc}
}

// Close releases the store connection.
func (e *Env) Close() {
	if err := e.Store.Close(); err != nil {
		root.Log.Warnf("Error closing store: %v", err)
	}
}
