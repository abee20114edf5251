package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pocketbank/ledger/internal/adapter/http/controller"
	"github.com/pocketbank/ledger/internal/adapter/http/middleware"
	"github.com/pocketbank/ledger/internal/adapter/http/router"
	"github.com/pocketbank/ledger/internal/adapter/repository/postgres"
	"github.com/pocketbank/ledger/internal/config"
	"github.com/pocketbank/ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	service, err := services.NewLedgerService(ctx, postgres.NewBankRepository(db))
	if err != nil {
		log.Fatalf("load ledger: %v", err)
	}

	mux := router.New(
		controller.NewAccountController(service),
		controller.NewTransactionController(service),
		middleware.BasicAuth(cfg.ClientID, cfg.ClientKey),
	)

	log.Printf("ledger api listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
