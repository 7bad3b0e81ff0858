package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/internal/adapter/http/controller"
	"github.com/api-sage/branch-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/branch-ledger/internal/adapter/http/router"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/internal/adapter/seed"
	"github.com/api-sage/branch-ledger/internal/config"
	"github.com/api-sage/branch-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo := memory.NewAccountRepository()
	logRepo := memory.NewTransactionLogRepository()
	tellerRepo := memory.NewTellerRepository()
	branchRepo := memory.NewBranchRepository()
	ratingRepo := memory.NewRatingRepository()

	accountService := services.NewAccountService(accountRepo)
	ledgerService := services.NewLedgerService(logRepo)
	tellerService := services.NewTellerService(tellerRepo, branchRepo)
	branchService := services.NewBranchService(branchRepo, tellerRepo, accountService, ledgerService, cfg.BankCode, cfg.TellerSeed)
	ratingService := services.NewRatingService(ratingRepo)
	recommendationService := services.NewRecommendationService(ratingRepo)

	if cfg.RatingsSeedPath != "" {
		ratings, err := seed.LoadRatings(cfg.RatingsSeedPath)
		if err != nil {
			log.Fatalf("load ratings seed: %v", err)
		}
		if err := seed.Apply(context.Background(), ratingRepo, ratings); err != nil {
			log.Fatalf("apply ratings seed: %v", err)
		}
		log.Printf("seeded %d ratings from %s", len(ratings), cfg.RatingsSeedPath)
	}

	mux := router.New(
		controller.NewBranchController(branchService),
		controller.NewAccountController(branchService, accountService),
		controller.NewTellerController(tellerService),
		controller.NewLedgerController(ledgerService),
		controller.NewRecommendationController(ratingService, recommendationService),
		middleware.ChannelAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("branch ledger listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server: %v", err)
	}
}
