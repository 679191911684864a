package main

import (
	"os"
	"time"

	bidding "bidding-client/internal/biddingService"
	"bidding-client/internal/config"
	"bidding-client/internal/repository"
	"bidding-client/internal/server"
	"bidding-client/utils"

	"github.com/jonboulle/clockwork"
)

// main starts the sandbox auction service the bidder client can be pointed at
func main() {
	cfg := config.Load()
	utils.Configure(cfg.LogLevel, os.Stdout)

	repo := repository.NewMemoryRepo()
	if err := prepopulate(repo, cfg.SeedFile); err != nil {
		utils.Fatal("failed to seed sandbox", map[string]any{"seed_file": cfg.SeedFile, "error": err.Error()})
	}

	biddingSvc := bidding.NewBiddingService(repo, clockwork.NewRealClock())

	router := server.SetupRouter(biddingSvc)

	utils.Info("starting sandbox auction server", map[string]any{"port": cfg.Port})
	if err := router.Run(cfg.Port); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulate loads the seed file when configured, otherwise built-in sample data
func prepopulate(repo *repository.MemoryRepo, seedFile string) error {
	if seedFile == "" {
		repository.DefaultSeed(time.Now().UTC()).Apply(repo)
		return nil
	}
	seed, err := repository.LoadSeed(seedFile)
	if err != nil {
		return err
	}
	seed.Apply(repo)
	return nil
}
