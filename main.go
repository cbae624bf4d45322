package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	auction "github.com/rickscode/SabaySell-sub001/internal/auctionService"
	"github.com/rickscode/SabaySell-sub001/internal/authgate"
	boost "github.com/rickscode/SabaySell-sub001/internal/boostService"
	"github.com/rickscode/SabaySell-sub001/internal/config"
	model "github.com/rickscode/SabaySell-sub001/internal/models"
	"github.com/rickscode/SabaySell-sub001/internal/notify"
	"github.com/rickscode/SabaySell-sub001/internal/obs"
	"github.com/rickscode/SabaySell-sub001/internal/repository"
	"github.com/rickscode/SabaySell-sub001/internal/server"
	"github.com/rickscode/SabaySell-sub001/internal/sweeper"
	"github.com/rickscode/SabaySell-sub001/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}

	obs.Init()

	ctx := context.Background()

	var auctionStore repository.AuctionStore
	var boostStore repository.BoostStore
	if cfg.DatabaseURL != "" {
		pg, err := repository.NewPostgresRepo(ctx, cfg.DatabaseURL)
		if err != nil {
			utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
		}
		defer pg.Close()
		auctionStore, boostStore = pg, pg
	} else {
		mem := repository.NewMemoryRepo()
		seedAuctions(mem)
		auctionStore, boostStore = mem, mem
	}

	auctionSvc := auction.NewAuctionService(auctionStore, notify.LogNotifier{}, cfg.BidGraceWindow)
	boostSvc := boost.NewBoostService(boostStore, boost.Pricing{
		PriceUSDPerDay:  cfg.BoostPriceUSD,
		ExchangeRateKHR: cfg.ExchangeRateKHR,
	})

	sw := sweeper.New(auctionSvc, boostSvc)
	cr := cron.New()
	if _, err := cr.AddFunc(fmt.Sprintf("@every %s", cfg.SweepInterval), func() { sw.Run(ctx) }); err != nil {
		utils.Fatal("failed to schedule sweeper", map[string]any{"error": err.Error()})
	}
	cr.Start()
	defer cr.Stop()

	resolver := authgate.NewJWTResolver(cfg.SessionJWTSecret)
	router := server.SetupRouter(auctionSvc, boostSvc, resolver, cfg)

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedAuctions adds sample auctions to the in-memory repo
func seedAuctions(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	auctions := []model.Auction{
		{AuctionID: "auction1", ListingID: "listing1", OwnerID: "seller1", StartPrice: 100, CurrentPrice: 100, MinIncrement: 5, EndsAt: now.Add(48 * time.Hour), Status: model.AuctionActive},
		{AuctionID: "auction2", ListingID: "listing2", OwnerID: "seller2", StartPrice: 250, CurrentPrice: 250, MinIncrement: 10, EndsAt: now.Add(24 * time.Hour), Status: model.AuctionActive},
		{AuctionID: "auction3", ListingID: "listing3", OwnerID: "seller1", StartPrice: 40, CurrentPrice: 40, MinIncrement: 2, EndsAt: now.Add(72 * time.Hour), Status: model.AuctionActive},
	}

	for _, a := range auctions {
		repo.AddAuction(a)
	}
}
