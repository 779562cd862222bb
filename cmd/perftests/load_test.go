package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	auction "bomul-market/internal/auctionService"
	"bomul-market/internal/events"
	"bomul-market/internal/ledger"
	model "bomul-market/internal/models"
	"bomul-market/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumUsers        int
	NumProducts     int
	ReadRatio       int // out of 10
	MaxBidIncrement int
	Listeners       int  // local event subscribers attached to the hub
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupMarket creates the ledger and engine with users, products and listeners
func setupMarket(s LoadScenario) (*ledger.Ledger, *auction.AuctionService, *int64) {
	repo := repository.NewMemoryRepo()
	hub := events.NewHub(nil, "")

	var delivered int64
	for i := 0; i < s.Listeners; i++ {
		hub.Subscribe(func(events.Event) { atomic.AddInt64(&delivered, 1) })
	}

	l := ledger.New(repo, hub)
	for i := 0; i < s.NumUsers; i++ {
		_ = repo.InsertUser(model.User{ID: fmt.Sprintf("user_%d", i), Name: fmt.Sprintf("user %d", i)})
	}
	for i := 0; i < s.NumProducts; i++ {
		_ = repo.InsertProduct(model.Product{
			ID:           fmt.Sprintf("item_%d", i),
			SellerID:     "seller",
			Title:        fmt.Sprintf("title_%d", i),
			Type:         model.ProductTypeAuction,
			Status:       model.ProductStatusActive,
			StartPrice:   100,
			CurrentPrice: 100,
			CostPrice:    model.Price(1 << 40),
			EndsAt:       time.Now().Add(time.Hour),
			Bids:         []model.Bid{},
		})
	}
	return l, auction.NewAuctionService(l), &delivered
}

// Benchmark_Load_AuctionSystem runs multiple scenarios
func Benchmark_Load_AuctionSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, 50, 1, false},
		{"High-Contention-WriteHeavy", 500, 10, 0, 20, 1, false},
		{"Mixed-Workload", 300, 50, 7, 30, 4, false},
		{"ReadHeavy", 200, 50, 9, 20, 1, false},
		{"Edge-Case-SingleProduct", 100, 1, 5, 10, 1, false},
		{"Peak-Burst-ManyListeners", 500, 50, 0, 20, 32, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	l, svc, delivered := setupMarket(s)
	ctx := context.Background()

	var totalOps, successfulBids, failedBids, totalReads int64
	productSuccess := make([]int64, s.NumProducts)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			productIndex := rnd.Intn(s.NumProducts)
			productID := fmt.Sprintf("item_%d", productIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				_, _ = l.GetProductByID(productID)
				atomic.AddInt64(&totalReads, 1)
			} else {
				current, _ := l.GetProductByID(productID)
				amount := current.CurrentPrice + int64(1+rnd.Intn(s.MaxBidIncrement))
				bidder, _ := l.GetUserByID(fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers)))
				// racing bidders see stale prices, so rejections are expected
				if res := svc.PlaceBid(ctx, productID, amount, bidder); !res.Success {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&productSuccess[productIndex], 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Products: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Events Delivered: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumProducts, totalOps, successfulBids, failedBids, totalReads, atomic.LoadInt64(delivered), elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	for i, v := range productSuccess {
		if v > 0 {
			b.Logf("Product %d successful bids: %d", i, v)
		}
	}

	for i := 0; i < s.NumProducts; i++ {
		p, _ := l.GetProductByID(fmt.Sprintf("item_%d", i))
		for j := 1; j < len(p.Bids); j++ {
			if p.Bids[j].Amount <= p.Bids[j-1].Amount {
				b.Fatalf("product %s bids not strictly increasing at %d", p.ID, j)
			}
		}
	}
}
