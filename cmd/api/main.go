package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/contract"
	contractStore "github.com/MrJamesThe3rd/tally/internal/contract/store"
	"github.com/MrJamesThe3rd/tally/internal/database"
	tallyHttp "github.com/MrJamesThe3rd/tally/internal/http"
	adminHandler "github.com/MrJamesThe3rd/tally/internal/http/admin"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	balanceHandler "github.com/MrJamesThe3rd/tally/internal/http/balance"
	contractHandler "github.com/MrJamesThe3rd/tally/internal/http/contract"
	jobHandler "github.com/MrJamesThe3rd/tally/internal/http/job"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/tally/internal/payment/store"
	"github.com/MrJamesThe3rd/tally/internal/report"
	reportStore "github.com/MrJamesThe3rd/tally/internal/report/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		contractService = contract.NewService(contractStore.New(db))
		paymentService  = payment.NewService(paymentStore.New(db, cfg.Settlement.LockTimeout))
		reportService   = report.NewService(reportStore.New(db))
	)

	var (
		contractH = contractHandler.NewHandler(contractService)
		jobH      = jobHandler.NewHandler(contractService, paymentService)
		balanceH  = balanceHandler.NewHandler(paymentService)
		adminH    = adminHandler.NewHandler(reportService)
	)

	resolver := auth.NewResolver(cfg.Auth.Secret)
	router := tallyHttp.New(contractH, jobH, balanceH, adminH, resolver)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
