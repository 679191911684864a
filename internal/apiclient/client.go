// Package apiclient talks to the remote auction service over HTTP/JSON.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bidding-client/internal/biddingerrors"
	"bidding-client/internal/models"
	"bidding-client/utils"
)

// DefaultTimeout bounds every request
const DefaultTimeout = 5 * time.Second

// envelope is the response body shape of the auction service
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithOnUnauthorized registers the hook run when the service answers 401 or 403.
// The authentication collaborator uses it to drop the local session.
func WithOnUnauthorized(fn func(status int)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client is an AuctionAPI backed by HTTP
type Client struct {
	baseURL        string
	token          string
	http           *http.Client
	onUnauthorized func(status int)
}

// New creates a Client for baseURL authenticating with token
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetItem fetches one auction item
func (c *Client) GetItem(ctx context.Context, itemID int64) (models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodGet, "/items/"+strconv.FormatInt(itemID, 10), nil, http.StatusOK, &item)
	if errors.Is(err, errNotFound) {
		return models.Item{}, fmt.Errorf("get item %d: %w", itemID, biddingerrors.ErrItemNotFound)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", itemID, err)
	}
	return item, nil
}

// GetBid fetches one bid
func (c *Client) GetBid(ctx context.Context, bidID int64) (models.Bid, error) {
	var bid models.Bid
	err := c.do(ctx, http.MethodGet, "/bids/"+strconv.FormatInt(bidID, 10), nil, http.StatusOK, &bid)
	if errors.Is(err, errNotFound) {
		return models.Bid{}, fmt.Errorf("get bid %d: %w", bidID, biddingerrors.ErrBidNotFound)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("get bid %d: %w", bidID, err)
	}
	return bid, nil
}

// GetOwnBid fetches the caller's bid on an item, or biddingerrors.ErrNoBid
func (c *Client) GetOwnBid(ctx context.Context, itemID int64) (models.Bid, error) {
	query := url.Values{"auction_item": {strconv.FormatInt(itemID, 10)}}
	var bid models.Bid
	err := c.do(ctx, http.MethodGet, "/bids/own-bid?"+query.Encode(), nil, http.StatusOK, &bid)
	if errors.Is(err, errNotFound) {
		return models.Bid{}, fmt.Errorf("get own bid for item %d: %w", itemID, biddingerrors.ErrNoBid)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("get own bid for item %d: %w", itemID, err)
	}
	return bid, nil
}

// CreateBid places the caller's first bid on an item
func (c *Client) CreateBid(ctx context.Context, bid models.NewBid) (models.Bid, error) {
	var created models.Bid
	if err := c.do(ctx, http.MethodPost, "/bids", bid, http.StatusCreated, &created); err != nil {
		return models.Bid{}, fmt.Errorf("create bid on item %d: %w", bid.ItemID, err)
	}
	return created, nil
}

// UpdateBid changes the amount and/or auto-bidding flag of an existing bid
func (c *Client) UpdateBid(ctx context.Context, bidID int64, patch models.BidPatch) (models.Bid, error) {
	var updated models.Bid
	if err := c.do(ctx, http.MethodPatch, "/bids/"+strconv.FormatInt(bidID, 10), patch, http.StatusOK, &updated); err != nil {
		return models.Bid{}, fmt.Errorf("update bid %d: %w", bidID, err)
	}
	return updated, nil
}

// UpdateProfile changes the caller's auto-bid ceiling
func (c *Client) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodPatch, "/user", patch, http.StatusOK, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// GetProfile fetches the caller's profile
func (c *Client) GetProfile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user", nil, http.StatusOK, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

var errNotFound = errors.New("not found")

func (c *Client) do(ctx context.Context, method, endpoint string, payload any, want int, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", biddingerrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %v", biddingerrors.ErrUnavailable, err)
	}

	utils.Debug("auction api call", map[string]any{
		"method":  method,
		"path":    endpoint,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode == want {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	if resp.StatusCode != want {
		return c.mapStatus(resp.StatusCode, env)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) mapStatus(status int, env envelope) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if c.onUnauthorized != nil {
			c.onUnauthorized(status)
		}
		return fmt.Errorf("%w: status %d", biddingerrors.ErrSessionAbandoned, status)
	case status == http.StatusNotFound:
		return errNotFound
	case isValidationStatus(status) && env.Message != "":
		return &biddingerrors.ValidationError{Status: status, Message: env.Message}
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", biddingerrors.ErrUnavailable, status)
	default:
		return fmt.Errorf("%w: %d %s", biddingerrors.ErrUnexpectedStatus, status, env.Message)
	}
}

func isValidationStatus(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return true
	}
	return false
}
