package bidding

import (
	"errors"
	"fmt"

	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/models"
	"bidding-client/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// BiddingService holds the acceptance rules of the sandbox auction service
type BiddingService struct {
	repo  repository.AuctionDB
	clock clockwork.Clock
}

// NewBiddingService creates a new BiddingService instance. A nil clock uses wall time.
func NewBiddingService(repo repository.AuctionDB, clock clockwork.Clock) *BiddingService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &BiddingService{
		repo:  repo,
		clock: clock,
	}
}

// Authenticate resolves a session token to the user it belongs to
func (s *BiddingService) Authenticate(token string) (models.UserProfile, error) {
	if token == "" {
		return models.UserProfile{}, fmt.Errorf("service: %w - missing token", biddingerrors.ErrUnauthorized)
	}
	profile, err := s.repo.UserByToken(token)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("service: %w - %v", biddingerrors.ErrUnauthorized, err)
	}
	return profile, nil
}

// GetItem returns one item with its ranked bid list
func (s *BiddingService) GetItem(itemID int64) (models.Item, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	return item, nil
}

// GetBid returns one bid
func (s *BiddingService) GetBid(bidID int64) (models.Bid, error) {
	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", bidID, err)
	}
	return bid, nil
}

// GetOwnBid returns the bid userID placed on itemID
func (s *BiddingService) GetOwnBid(itemID, userID int64) (models.Bid, error) {
	bid, err := s.repo.GetBidByUser(itemID, userID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get own bid on item %d: %w", itemID, err)
	}
	return bid, nil
}

// PlaceBid validates and records a user's first bid for an item
func (s *BiddingService) PlaceBid(userID, itemID int64, amount decimal.Decimal, autoBidding bool) (models.Bid, error) {
	if itemID <= 0 || userID <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - missing itemID or userID", biddingerrors.ErrInvalidBid)
	}

	item, err := s.openItem(itemID)
	if err != nil {
		return models.Bid{}, err
	}

	_, err = s.repo.GetBidByUser(itemID, userID)
	if err == nil {
		return models.Bid{}, fmt.Errorf("service: %w - user %d on item %d", biddingerrors.ErrBidExists, userID, itemID)
	}
	if !errors.Is(err, biddingerrors.ErrNoBid) {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bid: %w", err)
	}

	if err := s.validateAmount(item, amount); err != nil {
		return models.Bid{}, err
	}

	bid, err := s.repo.CreateBid(models.Bid{
		ItemID:      itemID,
		BidderID:    userID,
		Amount:      amount,
		AutoBidding: autoBidding,
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for item %d by user %d: %w", itemID, userID, err)
	}
	return bid, nil
}

// UpdateBid changes the amount and/or auto-bidding flag of a bid owned by userID.
// Nil arguments are left unchanged.
func (s *BiddingService) UpdateBid(userID, bidID int64, amount *decimal.Decimal, autoBidding *bool) (models.Bid, error) {
	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %d: %w", bidID, err)
	}
	if bid.BidderID != userID {
		return models.Bid{}, fmt.Errorf("service: %w - bid %d", biddingerrors.ErrForbidden, bidID)
	}

	item, err := s.openItem(bid.ItemID)
	if err != nil {
		return models.Bid{}, err
	}

	if amount != nil {
		if !amount.GreaterThan(bid.Amount) {
			return models.Bid{}, fmt.Errorf("service: %w - own bid is %s", biddingerrors.ErrBidTooLow, models.FormatAmount(bid.Amount))
		}
		if err := s.validateAmount(item, *amount); err != nil {
			return models.Bid{}, err
		}
		bid.Amount = *amount
	}
	if autoBidding != nil {
		bid.AutoBidding = *autoBidding
	}

	updated, err := s.repo.UpdateBid(bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to update bid %d: %w", bidID, err)
	}
	return updated, nil
}

// GetProfile returns a user's profile
func (s *BiddingService) GetProfile(userID int64) (models.UserProfile, error) {
	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("service: failed to get profile %d: %w", userID, err)
	}
	return profile, nil
}

// UpdateProfile stores a user's auto-bid ceiling
func (s *BiddingService) UpdateProfile(userID int64, ceiling decimal.Decimal) (models.UserProfile, error) {
	if ceiling.IsNegative() {
		return models.UserProfile{}, fmt.Errorf("service: %w - negative amount", biddingerrors.ErrInvalidCeiling)
	}
	profile, err := s.repo.UpdateProfile(models.UserProfile{ID: userID, MaxAutoBidAmount: ceiling})
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("service: failed to update profile %d: %w", userID, err)
	}
	return profile, nil
}

// openItem loads an item that still accepts bids
func (s *BiddingService) openItem(itemID int64) (models.Item, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}
	if !s.clock.Now().Before(item.CloseAt) {
		return models.Item{}, fmt.Errorf("service: %w - item %d closed at %s", biddingerrors.ErrAuctionExpired, itemID, item.CloseAt)
	}
	return item, nil
}

// validateAmount checks a proposed amount against the initial bid and the current leader
func (s *BiddingService) validateAmount(item models.Item, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	if amount.LessThan(item.InitBid) {
		return fmt.Errorf("service: %w - initial bid is %s", biddingerrors.ErrBidTooLow, models.FormatAmount(item.InitBid))
	}

	highest, err := s.repo.GetHighestBid(item.ID)
	if err == nil {
		if !amount.GreaterThan(highest.Amount) {
			return fmt.Errorf("service: %w - current highest bid is %s", biddingerrors.ErrBidTooLow, models.FormatAmount(highest.Amount))
		}
	} else if !errors.Is(err, biddingerrors.ErrNoBids) {
		return fmt.Errorf("service: failed to check highest bid: %w", err)
	}
	return nil
}
