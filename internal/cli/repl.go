// Package cli is a line-oriented front end for one auction item page.
//
// The REPL reads commands, forwards them to the page controllers and prints the
// resulting view. The countdown runs on its own goroutine; commands never wait
// for it.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"bidding-client/internal/bidflow"
	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/models"

	"github.com/shopspring/decimal"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// pageIface is the command surface the REPL needs from an item page
type pageIface interface {
	View() bidflow.PageView
	SubmitBid(ctx context.Context, amount decimal.Decimal) error
	SubmitDraft(ctx context.Context) error
	SetAutoBidding(enabled bool)
	SetCeiling(ctx context.Context, amount decimal.Decimal) error
	Refresh(ctx context.Context) error
}

const helpText = "Available commands: show, bid [amount], auto on|off, ceiling <amount>, refresh, help, exit"

// ErrSignInRequired is returned by Run when the service rejected the session
var ErrSignInRequired = errors.New("sign in again")

// Run reads commands from scanner until EOF, "exit" or "quit", or until the
// service ends the session, in which case it returns ErrSignInRequired.
//
//	show               print the item page
//	bid                submit the suggested next bid
//	bid <amount>       submit a specific amount
//	auto on|off        choose the auto-bidding flag applied by the next ceiling change
//	ceiling <amount>   set the auto-bid ceiling
//	refresh            reload the item
//	help               list commands
//	exit | quit        leave
func Run(ctx context.Context, p pageIface, scanner *bufio.Scanner) error {
	printlnFn(Render(p.View()))
	for {
		printlnFn("bid> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		var err error
		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn(helpText)
			continue

		case "show":
			printlnFn(Render(p.View()))
			continue

		case "bid":
			if len(parts) == 1 {
				err = p.SubmitDraft(ctx)
				break
			}
			amount, perr := models.ParseAmount(parts[1])
			if perr != nil {
				printlnFn("Not a valid amount:", parts[1])
				continue
			}
			err = p.SubmitBid(ctx, amount)

		case "auto":
			if len(parts) != 2 || (parts[1] != "on" && parts[1] != "off") {
				printlnFn("Usage: auto on|off")
				continue
			}
			p.SetAutoBidding(parts[1] == "on")
			printlnFn("Auto-bidding will be", parts[1], "after the next ceiling change")
			continue

		case "ceiling":
			if len(parts) != 2 {
				printlnFn("Usage: ceiling <amount>")
				continue
			}
			amount, perr := models.ParseAmount(parts[1])
			if perr != nil {
				printlnFn("Not a valid amount:", parts[1])
				continue
			}
			err = p.SetCeiling(ctx, amount)

		case "refresh":
			err = p.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return nil

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if errors.Is(err, biddingerrors.ErrSessionAbandoned) {
			printlnFn("Your session has ended. Please sign in again.")
			return ErrSignInRequired
		}
		if errors.Is(err, biddingerrors.ErrAuctionClosed) {
			printlnFn("The auction is closed.")
		}
		printlnFn(Render(p.View()))
	}
}

// ItemPage adapts a bidflow.ItemPage to the REPL
type ItemPage struct {
	Page *bidflow.ItemPage
}

func (a ItemPage) View() bidflow.PageView { return a.Page.View() }

func (a ItemPage) SubmitBid(ctx context.Context, amount decimal.Decimal) error {
	return a.Page.Bids.SubmitBid(ctx, amount, a.Page.State.AutoBidding())
}

func (a ItemPage) SubmitDraft(ctx context.Context) error { return a.Page.Bids.SubmitDraft(ctx) }

func (a ItemPage) SetAutoBidding(enabled bool) { a.Page.Ceiling.SetAutoBidding(enabled) }

func (a ItemPage) SetCeiling(ctx context.Context, amount decimal.Decimal) error {
	a.Page.Ceiling.OpenDialog()
	return a.Page.Ceiling.SetCeiling(ctx, amount)
}

func (a ItemPage) Refresh(ctx context.Context) error { return a.Page.Refresher.Trigger(ctx) }
