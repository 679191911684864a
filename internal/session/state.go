// Package session holds the bid session state of one item detail view.
//
// The Refresh Coordinator is the only writer of the server-mirrored
// snapshots; controllers own the draft amount, the auto-bidding toggle,
// field errors and the settings dialog flag.
package session

import (
	"sync"
	"time"

	"bidding-client/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultCeilingHint is the informational text of the ceiling field when no error is shown.
const DefaultCeilingHint = "This value will be split between all items"

// FieldError is the inline error state of one input field
type FieldError struct {
	Active bool
	Text   string
}

// OwnBid is either NoBid or ExistingBid
type OwnBid struct {
	bid    models.Bid
	exists bool
}

// NoBid is the own-bid variant of a viewer who has not bid on the item
func NoBid() OwnBid {
	return OwnBid{}
}

// ExistingBid is the own-bid variant of a viewer who already holds a bid on the item.
// The bid exists regardless of the value of its identifier.
func ExistingBid(bid models.Bid) OwnBid {
	return OwnBid{bid: bid, exists: true}
}

// Get returns the bid and whether it exists
func (o OwnBid) Get() (models.Bid, bool) {
	return o.bid, o.exists
}

// View is an immutable snapshot of the session for presentation
type View struct {
	ItemID       int64
	Item         models.Item
	ItemLoaded   bool
	HighestBid   models.Bid
	OwnBid       OwnBid
	AutoBidding  bool
	Draft        decimal.Decimal
	Ceiling      decimal.Decimal
	BidError     FieldError
	CeilingError FieldError
	DialogOpen   bool
	Trigger      uint64
}

// LeadingIsOwn reports whether the viewer's bid is the current leader
func (v View) LeadingIsOwn() bool {
	own, ok := v.OwnBid.Get()
	return ok && v.HighestBid.ID > 0 && v.HighestBid.ID == own.ID
}

// State is the single source of truth of one item page
type State struct {
	mu sync.RWMutex

	viewerID   int64
	itemID     int64
	item       models.Item
	itemLoaded bool
	highest    models.Bid
	own        OwnBid

	autoBidding bool
	draft       decimal.Decimal
	ceiling     decimal.Decimal

	bidErr     FieldError
	ceilingErr FieldError
	dialogOpen bool

	trigger uint64
}

// New creates the state of a page viewed by viewerID, seeded with the last-known ceiling
func New(viewerID int64, ceiling decimal.Decimal) *State {
	return &State{
		viewerID:   viewerID,
		highest:    models.NoHighestBid,
		own:        NoBid(),
		ceiling:    ceiling,
		ceilingErr: FieldError{Text: DefaultCeilingHint},
	}
}

// ViewerID returns the signed-in user's identifier
func (s *State) ViewerID() int64 {
	return s.viewerID
}

// SetItemID selects the item the page shows. Changing it discards the previous item's snapshots.
func (s *State) SetItemID(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itemID == itemID {
		return false
	}
	s.itemID = itemID
	s.item = models.Item{}
	s.itemLoaded = false
	s.highest = models.NoHighestBid
	s.own = NoBid()
	s.draft = decimal.Zero
	s.bidErr = FieldError{}
	return true
}

// ItemID returns the selected item
func (s *State) ItemID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemID
}

// SetItem stores a freshly fetched item. The own bid is reset unless the viewer is still a bidder.
func (s *State) SetItem(item models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item = item
	s.itemLoaded = true
	if !item.HasBidder(s.viewerID) {
		s.own = NoBid()
	}
	if len(item.Bids) == 0 {
		s.highest = models.NoHighestBid
	}
}

// ViewerIsBidder reports whether the viewer appears in the loaded item's bidder list
func (s *State) ViewerIsBidder() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemLoaded && s.item.HasBidder(s.viewerID)
}

// CloseTime implements countdown.CloseTimeSource
func (s *State) CloseTime() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.itemLoaded || s.item.CloseAt.IsZero() {
		return time.Time{}, false
	}
	return s.item.CloseAt, true
}

// SetHighestBid stores the leading bid projection
func (s *State) SetHighestBid(bid models.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highest = bid
}

// HighestBid returns the leading bid projection
func (s *State) HighestBid() models.Bid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highest
}

// SetOwnBid stores the viewer's bid. An existing bid is ignored when the viewer is not a bidder.
func (s *State) SetOwnBid(own OwnBid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := own.Get(); ok && !s.item.HasBidder(s.viewerID) {
		return
	}
	s.own = own
}

// OwnBid returns the viewer's bid variant
func (s *State) OwnBid() OwnBid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.own
}

// SeedDraft sets the next-bid draft to the leading amount plus increment
func (s *State) SeedDraft(leading, increment decimal.Decimal) {
	s.SetDraft(leading.Add(increment))
}

// SetDraft replaces the unsubmitted next-bid amount
func (s *State) SetDraft(amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = amount
}

// Draft returns the unsubmitted next-bid amount
func (s *State) Draft() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// SetAutoBidding sets the auto-bidding toggle
func (s *State) SetAutoBidding(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoBidding = enabled
}

// AutoBidding returns the auto-bidding toggle
func (s *State) AutoBidding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autoBidding
}

// SetCeiling records the viewer's last-known auto-bid ceiling
func (s *State) SetCeiling(amount decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ceiling = amount
}

// Ceiling returns the viewer's last-known auto-bid ceiling
func (s *State) Ceiling() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ceiling
}

// SetBidError shows text against the bid amount field
func (s *State) SetBidError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bidErr = FieldError{Active: true, Text: text}
}

// ClearBidError hides the bid amount field error
func (s *State) ClearBidError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bidErr = FieldError{}
}

// BidError returns the bid amount field error
func (s *State) BidError() FieldError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bidErr
}

// SetCeilingError shows text against the ceiling field
func (s *State) SetCeilingError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ceilingErr = FieldError{Active: true, Text: text}
}

// ResetCeilingError restores the ceiling field's informational text
func (s *State) ResetCeilingError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ceilingErr = FieldError{Text: DefaultCeilingHint}
}

// CeilingError returns the ceiling field error
func (s *State) CeilingError() FieldError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ceilingErr
}

// SetDialogOpen opens or closes the bidding settings dialog
func (s *State) SetDialogOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = open
}

// DialogOpen reports whether the bidding settings dialog is open
func (s *State) DialogOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dialogOpen
}

// FlipTrigger changes the refresh trigger token and returns its new value
func (s *State) FlipTrigger() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trigger++
	return s.trigger
}

// Trigger returns the current refresh trigger token
func (s *State) Trigger() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trigger
}

// Snapshot returns a copy of the whole state
func (s *State) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item := s.item
	item.Bids = append([]int64(nil), s.item.Bids...)
	item.Bidders = append([]int64(nil), s.item.Bidders...)

	return View{
		ItemID:       s.itemID,
		Item:         item,
		ItemLoaded:   s.itemLoaded,
		HighestBid:   s.highest,
		OwnBid:       s.own,
		AutoBidding:  s.autoBidding,
		Draft:        s.draft,
		Ceiling:      s.ceiling,
		BidError:     s.bidErr,
		CeilingError: s.ceilingErr,
		DialogOpen:   s.dialogOpen,
		Trigger:      s.trigger,
	}
}
