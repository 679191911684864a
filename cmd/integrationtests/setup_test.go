package integrationtests

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"bidding-client/internal/apiclient"
	bidding "bidding-client/internal/biddingService"
	"bidding-client/internal/bidflow"
	"bidding-client/internal/credentials"
	model "bidding-client/internal/models"
	"bidding-client/internal/repository"
	"bidding-client/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	itemID  int64 = 42
	aliceID int64 = 7
	bobID   int64 = 8
)

var (
	startTime = time.Date(2030, time.March, 1, 12, 0, 0, 0, time.UTC)
	closeAt   = startTime.Add(time.Hour)
)

// sandbox is a running auction service seeded with one item and two bidders
type sandbox struct {
	srv   *httptest.Server
	repo  *repository.MemoryRepo
	clock *clockwork.FakeClock
}

// SetupSandbox starts the sandbox service on a local listener.
func SetupSandbox(t *testing.T) *sandbox {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := clockwork.NewFakeClockAt(startTime)
	repo := repository.NewMemoryRepo()
	repository.Seed{
		Items: []model.Item{{ID: itemID, Title: "Vintage camera", InitBid: decimal.NewFromInt(5), CloseAt: closeAt}},
		Users: []repository.SeedUser{
			{UserProfile: model.UserProfile{ID: aliceID, Username: "alice"}, Token: "alice-token"},
			{UserProfile: model.UserProfile{ID: bobID, Username: "bob"}, Token: "bob-token"},
		},
	}.Apply(repo)

	router := server.SetupRouter(bidding.NewBiddingService(repo, clock))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &sandbox{srv: srv, repo: repo, clock: clock}
}

// bidder is one signed-in client looking at the seeded item
type bidder struct {
	page  *bidflow.ItemPage
	store *credentials.Store
}

// OpenPage signs a client in as viewerID and opens the seeded item.
// clientClock drives the client-side countdown.
func (s *sandbox) OpenPage(t *testing.T, token string, viewerID int64, clientClock clockwork.Clock) *bidder {
	t.Helper()

	store, err := credentials.Load(filepath.Join(t.TempDir(), "credentials.yaml"))
	require.NoError(t, err)

	client := apiclient.New(s.srv.URL, token, apiclient.WithOnUnauthorized(func(int) {
		_ = store.Clear()
	}))
	page := bidflow.NewItemPage(client, bidflow.PageOptions{
		ViewerID: viewerID,
		Clock:    clientClock,
		Store:    store,
	})
	require.NoError(t, page.Open(context.Background(), itemID))
	return &bidder{page: page, store: store}
}

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }
