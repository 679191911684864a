package repository

import (
	"fmt"
	"sort"
	"sync"

	"bidding-client/internal/biddingerrors"
	model "bidding-client/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the storage interface of the sandbox auction service
type AuctionDB interface {
	GetItem(itemID int64) (model.Item, error)
	GetBid(bidID int64) (model.Bid, error)
	GetBidByUser(itemID, userID int64) (model.Bid, error)
	GetHighestBid(itemID int64) (model.Bid, error)
	CreateBid(bid model.Bid) (model.Bid, error)
	UpdateBid(bid model.Bid) (model.Bid, error)
	GetProfile(userID int64) (model.UserProfile, error)
	UpdateProfile(profile model.UserProfile) (model.UserProfile, error)
	UserByToken(token string) (model.UserProfile, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	nextBid  int64
	items    map[int64]model.Item        // key: itemID -> value: item without bid lists
	bids     map[int64]model.Bid         // key: bidID -> value: bid
	itemBids map[int64][]int64           // key: itemID -> value: bid ids in placement order
	users    map[int64]model.UserProfile // key: userID -> value: profile
	tokens   map[string]int64            // key: token -> value: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:    make(map[int64]model.Item),
		bids:     make(map[int64]model.Bid),
		itemBids: make(map[int64][]int64),
		users:    make(map[int64]model.UserProfile),
		tokens:   make(map[string]int64),
	}
}

// GetItem returns an item with its bid ids ordered leader first and its bidder ids
func (r *MemoryRepo) GetItem(itemID int64) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %d: %w", itemID, biddingerrors.ErrItemNotFound)
	}

	ranked := r.rankedLocked(itemID)
	item.Bids = make([]int64, 0, len(ranked))
	item.Bidders = make([]int64, 0, len(ranked))
	for _, b := range ranked {
		item.Bids = append(item.Bids, b.ID)
		item.Bidders = append(item.Bidders, b.BidderID)
	}
	return item, nil
}

// GetBid returns one bid
func (r *MemoryRepo) GetBid(bidID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %d: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	return bid, nil
}

// GetBidByUser returns the bid a user placed on an item
func (r *MemoryRepo) GetBidByUser(itemID, userID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.itemBids[itemID] {
		if b := r.bids[id]; b.BidderID == userID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid of user %d on item %d: %w", userID, itemID, biddingerrors.ErrNoBid)
}

// GetHighestBid returns the leading bid for an item
func (r *MemoryRepo) GetHighestBid(itemID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranked := r.rankedLocked(itemID)
	if len(ranked) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for item %d: %w", itemID, biddingerrors.ErrNoBids)
	}
	return ranked[0], nil
}

// CreateBid stores a new bid and assigns its id
func (r *MemoryRepo) CreateBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[bid.ItemID]; !ok {
		return model.Bid{}, fmt.Errorf("create bid for item %d: %w", bid.ItemID, biddingerrors.ErrItemNotFound)
	}
	for _, id := range r.itemBids[bid.ItemID] {
		if r.bids[id].BidderID == bid.BidderID {
			return model.Bid{}, fmt.Errorf("create bid for item %d by user %d: %w", bid.ItemID, bid.BidderID, biddingerrors.ErrBidExists)
		}
	}

	r.nextBid++
	bid.ID = r.nextBid
	r.bids[bid.ID] = bid
	r.itemBids[bid.ItemID] = append(r.itemBids[bid.ItemID], bid.ID)
	return bid, nil
}

// UpdateBid replaces the amount and auto-bidding flag of an existing bid
func (r *MemoryRepo) UpdateBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.bids[bid.ID]
	if !ok {
		return model.Bid{}, fmt.Errorf("update bid %d: %w", bid.ID, biddingerrors.ErrBidNotFound)
	}
	current.Amount = bid.Amount
	current.AutoBidding = bid.AutoBidding
	r.bids[bid.ID] = current
	return current, nil
}

// GetProfile returns a user's profile
func (r *MemoryRepo) GetProfile(userID int64) (model.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.users[userID]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("get profile %d: %w", userID, biddingerrors.ErrUserNotFound)
	}
	return profile, nil
}

// UpdateProfile stores a user's new auto-bid ceiling
func (r *MemoryRepo) UpdateProfile(profile model.UserProfile) (model.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[profile.ID]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("update profile %d: %w", profile.ID, biddingerrors.ErrUserNotFound)
	}
	current.MaxAutoBidAmount = profile.MaxAutoBidAmount
	r.users[profile.ID] = current
	return current, nil
}

// UserByToken resolves a session token to its user
func (r *MemoryRepo) UserByToken(token string) (model.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.tokens[token]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("resolve token: %w", biddingerrors.ErrUserNotFound)
	}
	profile, ok := r.users[userID]
	if !ok {
		return model.UserProfile{}, fmt.Errorf("resolve token: %w", biddingerrors.ErrUserNotFound)
	}
	return profile, nil
}

// AddItem adds an item to the repository. Used for seeding and tests.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.Bids, item.Bidders = nil, nil
	r.items[item.ID] = item
}

// AddUser registers a user and the token it authenticates with. Used for seeding and tests.
func (r *MemoryRepo) AddUser(profile model.UserProfile, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[profile.ID] = profile
	if token != "" {
		r.tokens[token] = profile.ID
	}
}

// rankedLocked orders an item's bids by amount, earliest placement first on ties
func (r *MemoryRepo) rankedLocked(itemID int64) []model.Bid {
	ids := r.itemBids[itemID]
	ranked := make([]model.Bid, 0, len(ids))
	for _, id := range ids {
		ranked = append(ranked, r.bids[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	return ranked
}
