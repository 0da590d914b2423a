// Command seed resets a store file to the built-in demo data: the seed
// catalog and dealers, and empty transaction logs. Useful for demos and for
// starting a deployment over.
//
// Usage: seed -store eesaa.db
package main

import (
	"encoding/json"
	"flag"

	"github.com/eesaa/retail-suite/internal/infrastructure/storage"
	"github.com/eesaa/retail-suite/internal/state"
	"github.com/eesaa/retail-suite/pkg/logger"
)

func main() {
	storePath := flag.String("store", "eesaa.db", "path to the store file")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	kv, err := storage.OpenSQLite(*storePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *storePath).Msg("open store")
	}
	defer kv.Close()

	collections := map[string]interface{}{
		state.KeyProducts:       state.SeedProducts(),
		state.KeyCustomers:      state.SeedCustomers(),
		state.KeyInvoices:       []struct{}{},
		state.KeyPayments:       []struct{}{},
		state.KeyStockRequests:  []struct{}{},
		state.KeyStockMovements: []struct{}{},
		state.KeyAuditLogs:      []struct{}{},
	}
	for key, value := range collections {
		data, err := json.Marshal(value)
		if err != nil {
			log.Fatal().Err(err).Str("collection", key).Msg("encode seed")
		}
		if err := kv.Save(key, data); err != nil {
			log.Fatal().Err(err).Str("collection", key).Msg("write seed")
		}
		log.Info().Str("collection", key).Msg("collection reset")
	}

	log.Info().Str("path", *storePath).Msg("store seeded")
}
