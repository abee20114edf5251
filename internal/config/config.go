package config

import (
	"os"
	"strings"
)

const defaultDatabaseDSN = "host=localhost port=5432 dbname=pocketledger user=postgres password=postgres sslmode=disable"
const defaultListenAddr = ":8080"
const defaultClientID = "PocketLedger"
const defaultClientKey = "PocketLedgerKey001"
const defaultSnapshotPath = "ledger.json"
const defaultMigrationsDir = "migrations"

type Config struct {
	DatabaseDSN   string
	MigrationsDir string
	ListenAddr    string
	ClientID      string
	ClientKey     string
	SnapshotPath  string
}

func Load() (Config, error) {
	return Config{
		DatabaseDSN:   envOr("DATABASE_DSN", defaultDatabaseDSN),
		MigrationsDir: envOr("MIGRATIONS_DIR", defaultMigrationsDir),
		ListenAddr:    envOr("LISTEN_ADDR", defaultListenAddr),
		ClientID:      envOr("CLIENT_ID", defaultClientID),
		ClientKey:     envOr("CLIENT_KEY", defaultClientKey),
		SnapshotPath:  envOr("SNAPSHOT_PATH", defaultSnapshotPath),
	}, nil
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	return value
}
