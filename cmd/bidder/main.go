// Command bidder is an interactive client for one item of a remote auction.
//
// Usage:
//
//	bidder <item-id>
//
// The token and user id are read from the credentials file written at sign-in.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"bidding-client/internal/apiclient"
	"bidding-client/internal/bidflow"
	"bidding-client/internal/cli"
	"bidding-client/internal/config"
	"bidding-client/internal/credentials"
	"bidding-client/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bidder:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return errors.New("usage: bidder <item-id>")
	}
	itemID, err := strconv.ParseInt(os.Args[1], 10, 64)
	if err != nil || itemID <= 0 {
		return fmt.Errorf("invalid item id %q", os.Args[1])
	}

	cfg := config.Load()
	logFile, err := os.OpenFile("bidder.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	utils.Configure(cfg.LogLevel, logFile)

	store, err := credentials.Load(cfg.CredentialsFile)
	if err != nil {
		return err
	}
	token, err := store.Token()
	if err != nil {
		return fmt.Errorf("%w: sign in first", err)
	}

	client := apiclient.New(cfg.APIURL, token,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithOnUnauthorized(func(status int) {
			utils.Warn("session rejected by auction service", map[string]any{"status": status})
			if err := store.Clear(); err != nil {
				utils.Error("failed to clear credentials", map[string]any{"error": err.Error()})
			}
		}),
	)

	page := bidflow.NewItemPage(client, bidflow.PageOptions{
		ViewerID:     store.UserID(),
		Ceiling:      store.Ceiling(),
		Increment:    cfg.BidIncrement,
		TickInterval: cfg.TickInterval,
		Store:        store,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := page.Open(ctx, itemID); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		// partial refresh failures still leave a usable page
		utils.Warn("initial load incomplete", map[string]any{"item_id": itemID, "error": err.Error()})
		if !page.View().ItemLoaded {
			return fmt.Errorf("failed to load item %d: %w", itemID, err)
		}
	}

	go func() {
		if err := page.RunCountdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			utils.Error("countdown stopped", map[string]any{"error": err.Error()})
		}
	}()

	err = cli.Run(ctx, cli.ItemPage{Page: page}, bufio.NewScanner(os.Stdin))
	if errors.Is(err, cli.ErrSignInRequired) {
		return nil
	}
	return err
}
