package repository

import (
	"fmt"
	"os"
	"time"

	model "bidding-client/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed is the initial content of a sandbox repository
type Seed struct {
	Items []model.Item `yaml:"items"`
	Users []SeedUser   `yaml:"users"`
}

// SeedUser is a demo account and the token it signs in with
type SeedUser struct {
	model.UserProfile `yaml:",inline"`
	Token             string `yaml:"token"`
}

// LoadSeed reads a YAML seed file
func LoadSeed(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed returns sample items closing relative to now and two demo users
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Items: []model.Item{
			{ID: 1, Title: "Vintage camera", Description: "Rangefinder in working order", InitBid: decimal.NewFromInt(100), CloseAt: now.Add(2 * time.Hour)},
			{ID: 2, Title: "Oak writing desk", Description: "Early 1900s, restored", InitBid: decimal.NewFromInt(200), CloseAt: now.Add(26 * time.Hour)},
			{ID: 3, Title: "Signed first edition", Description: "Dust jacket included", InitBid: decimal.NewFromInt(150), CloseAt: now.Add(10 * time.Minute)},
		},
		Users: []SeedUser{
			{UserProfile: model.UserProfile{ID: 1, Username: "user1", MaxAutoBidAmount: decimal.NewFromInt(500)}, Token: "user1-token"},
			{UserProfile: model.UserProfile{ID: 2, Username: "user2", MaxAutoBidAmount: decimal.NewFromInt(500)}, Token: "user2-token"},
		},
	}
}

// Apply loads the seed into repo
func (s Seed) Apply(repo *MemoryRepo) {
	for _, item := range s.Items {
		repo.AddItem(item)
	}
	for _, user := range s.Users {
		repo.AddUser(user.UserProfile, user.Token)
	}
}
