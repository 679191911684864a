package bidflow

import (
	"context"
	"time"

	"bidding-client/internal/countdown"
	"bidding-client/internal/session"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// PageOptions configures an ItemPage
type PageOptions struct {
	ViewerID     int64
	Ceiling      decimal.Decimal
	Increment    decimal.Decimal
	TickInterval time.Duration
	Clock        clockwork.Clock
	Store        CeilingStore
	OnTick       func(countdown.State)
}

// PageView is what an item detail page presents
type PageView struct {
	session.View
	Countdown countdown.State
}

// CanBid reports whether bid submission is offered
func (v PageView) CanBid() bool {
	return v.ItemLoaded && !v.Countdown.Closed
}

// CanChangeSettings reports whether the bidding settings dialog is offered
func (v PageView) CanChangeSettings() bool {
	_, ok := v.OwnBid.Get()
	return ok && v.CanBid()
}

// ItemPage wires the session state, the countdown and the controllers of one item detail page
type ItemPage struct {
	State     *session.State
	Countdown *countdown.Engine
	Refresher *Refresher
	Bids      *BidController
	Ceiling   *CeilingController
}

// NewItemPage creates a page for opts.ViewerID backed by api
func NewItemPage(api AuctionAPI, opts PageOptions) *ItemPage {
	state := session.New(opts.ViewerID, opts.Ceiling)

	engineOpts := []countdown.Option{countdown.WithInterval(opts.TickInterval)}
	if opts.Clock != nil {
		engineOpts = append(engineOpts, countdown.WithClock(opts.Clock))
	}
	if opts.OnTick != nil {
		engineOpts = append(engineOpts, countdown.WithOnTick(opts.OnTick))
	}
	engine := countdown.NewEngine(state, engineOpts...)

	refresher := NewRefresher(api, state, opts.Increment)

	return &ItemPage{
		State:     state,
		Countdown: engine,
		Refresher: refresher,
		Bids:      NewBidController(api, state, refresher, engine),
		Ceiling:   NewCeilingController(api, state, refresher, opts.Store),
	}
}

// Open loads itemID into the page
func (p *ItemPage) Open(ctx context.Context, itemID int64) error {
	return p.Refresher.Open(ctx, itemID)
}

// RunCountdown blocks running the countdown until ctx is done or the auction closes
func (p *ItemPage) RunCountdown(ctx context.Context) error {
	return p.Countdown.Run(ctx)
}

// View returns the current page view
func (p *ItemPage) View() PageView {
	return PageView{View: p.State.Snapshot(), Countdown: p.Countdown.State()}
}
