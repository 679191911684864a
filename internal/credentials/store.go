// Package credentials reads the client state persisted by the authentication
// collaborator: the issued token, the signed-in user and their last-known
// auto-bid ceiling.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"bidding-client/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNotSignedIn is returned when no token is stored
var ErrNotSignedIn = errors.New("not signed in")

type fileData struct {
	Token      string `yaml:"token"`
	UserID     int64  `yaml:"user_id"`
	MaxAutoBid string `yaml:"max_auto_bid"`
}

// Store is a YAML-file backed credentials store
type Store struct {
	mu   sync.Mutex
	path string
	data fileData
}

// Load reads the credentials file at path. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	return s, nil
}

// Token returns the stored token, or ErrNotSignedIn
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Token == "" {
		return "", ErrNotSignedIn
	}
	return s.data.Token, nil
}

// UserID returns the signed-in user's identifier
func (s *Store) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.UserID
}

// Ceiling returns the last-known auto-bid ceiling, zero when unknown or unparsable
func (s *Store) Ceiling() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.MaxAutoBid == "" {
		return decimal.Zero
	}
	ceiling, err := models.ParseAmount(s.data.MaxAutoBid)
	if err != nil {
		return decimal.Zero
	}
	return ceiling
}

// SaveCeiling records a ceiling confirmed by the service
func (s *Store) SaveCeiling(ceiling decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.MaxAutoBid = models.FormatAmount(ceiling)
	return s.write()
}

// Clear drops the whole session, as done when the service rejects the token
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = fileData{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}

func (s *Store) write() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
