package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "bomul-market/internal/auctionService"
	"bomul-market/internal/events"
	"bomul-market/internal/ledger"
	"bomul-market/internal/metrics"
	"bomul-market/internal/repository"
	"bomul-market/internal/seed"
	"bomul-market/internal/server"
	"bomul-market/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testMarket is a fully wired marketplace over in-memory backends
type testMarket struct {
	Router *gin.Engine
	Ledger *ledger.Ledger
	Engine *auction.AuctionService
	Hub    *events.Hub
}

// SetupTestRouter initializes the router over a seeded in-memory marketplace.
func SetupTestRouter(t *testing.T) *testMarket {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	marketMetrics := metrics.NewMarketMetrics(registry)

	hub := events.NewHub(nil, "", events.WithMetrics(marketMetrics))
	l := ledger.New(repository.NewMemoryRepo(), hub,
		ledger.WithSessionStore(session.NewStore(session.NewMemoryKV())),
		ledger.WithHashCost(bcrypt.MinCost),
	)
	require.NoError(t, l.Seed(context.Background(), seed.Users(), seed.Products(time.Now()), seed.DemoPassword))

	engine := auction.NewAuctionService(l, auction.WithMetrics(marketMetrics))
	router := server.SetupRouter(server.Dependencies{
		Auctions: engine,
		Market:   l,
		Events:   hub,
		Gatherer: registry,
	})
	return &testMarket{Router: router, Ledger: l, Engine: engine, Hub: hub}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// returns the envelope's data field alongside the recorder
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok {
			return data, w
		}
	}
	return resp, w
}
