package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"bomul-market/internal/events"
	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

// Helper to build an active auction
func activeAuction(startPrice, currentPrice int64) models.Product {
	return models.Product{
		ID:           "p1",
		SellerID:     "seller",
		Type:         models.ProductTypeAuction,
		Status:       models.ProductStatusActive,
		StartPrice:   startPrice,
		CurrentPrice: currentPrice,
		EndsAt:       testNow.Add(time.Hour),
		Bids:         []models.Bid{},
	}
}

// applyTo runs the engine's mutation against a local copy, like the ledger does
func applyTo(product models.Product) func(context.Context, string, func(*models.Product) error) (models.Product, error) {
	return func(_ context.Context, _ string, fn func(*models.Product) error) (models.Product, error) {
		working := product.Clone()
		if err := fn(&working); err != nil {
			return product, err
		}
		return working, nil
	}
}

func applyToPair(product models.Product, user models.User) func(context.Context, string, string, func(*models.Product, *models.User) error) (models.Product, models.User, error) {
	return func(_ context.Context, _, _ string, fn func(*models.Product, *models.User) error) (models.Product, models.User, error) {
		p, u := product.Clone(), user
		if err := fn(&p, &u); err != nil {
			return product, user, err
		}
		return p, u, nil
	}
}

// eventTypeMatcher matches an events.Event by its type
type eventTypeMatcher struct{ want events.Type }

func (m eventTypeMatcher) Matches(x interface{}) bool {
	e, ok := x.(events.Event)
	return ok && e.Type == m.want
}

func (m eventTypeMatcher) String() string { return "event of type " + string(m.want) }

func eventOfType(t events.Type) gomock.Matcher {
	return eventTypeMatcher{want: t}
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	bidder := models.User{ID: "bidder", Name: "입찰자"}

	tests := []struct {
		name          string
		product       models.Product
		amount        int64
		bidder        models.User
		mockSetup     func(m *MockLedger, product models.Product)
		expectSuccess bool
		expectedError error
		wantStatus    models.ProductStatus
		wantPrice     int64
	}{
		{
			name:    "below_cap",
			product: activeAuction(50000, 50000),
			amount:  499999,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
				m.EXPECT().AddXp(gomock.Any(), "bidder", 10).Return(models.User{}, nil)
				m.EXPECT().Publish(gomock.Any(), eventOfType(events.BidUpdate))
			},
			expectSuccess: true,
			wantStatus:    models.ProductStatusActive,
			wantPrice:     499999,
		},
		{
			name:    "exactly_cap",
			product: activeAuction(50000, 499999),
			amount:  500000,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
				m.EXPECT().AddXp(gomock.Any(), "bidder", 60).Return(models.User{}, nil)
				m.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed))
			},
			expectSuccess: true,
			wantStatus:    models.ProductStatusSold,
			wantPrice:     500000,
		},
		{
			name:    "above_cap_clamped",
			product: activeAuction(50000, 50000),
			amount:  9000000,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
				m.EXPECT().AddXp(gomock.Any(), "bidder", 60).Return(models.User{}, nil)
				m.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed))
			},
			expectSuccess: true,
			wantStatus:    models.ProductStatusSold,
			wantPrice:     500000,
		},
		{
			name: "cost_price_sets_cap",
			product: func() models.Product {
				p := activeAuction(50000, 120000)
				p.CostPrice = models.Price(80000)
				return p
			}(),
			amount: 800000,
			bidder: bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
				m.EXPECT().AddXp(gomock.Any(), "bidder", 60).Return(models.User{}, nil)
				m.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed))
			},
			expectSuccess: true,
			wantStatus:    models.ProductStatusSold,
			wantPrice:     800000,
		},
		{
			name:    "equal_to_current_price",
			product: activeAuction(50000, 70000),
			amount:  70000,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
			},
			expectedError: marketerrors.ErrBidTooLow,
		},
		{
			name: "shop_item",
			product: func() models.Product {
				p := activeAuction(50000, 50000)
				p.Type = models.ProductTypeShop
				return p
			}(),
			amount: 60000,
			bidder: bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
			},
			expectedError: marketerrors.ErrInvalidAuction,
		},
		{
			name: "already_sold",
			product: func() models.Product {
				p := activeAuction(50000, 50000)
				p.Status = models.ProductStatusSold
				return p
			}(),
			amount: 60000,
			bidder: bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
			},
			expectedError: marketerrors.ErrInvalidAuction,
		},
		{
			name:    "missing_product",
			product: activeAuction(50000, 50000),
			amount:  60000,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).Return(models.Product{}, marketerrors.ErrProductNotFound)
			},
			expectedError: marketerrors.ErrInvalidAuction,
		},
		{
			name:          "missing_bidder",
			product:       activeAuction(50000, 50000),
			amount:        60000,
			bidder:        models.User{},
			mockSetup:     func(m *MockLedger, p models.Product) {},
			expectedError: marketerrors.ErrInvalidBidder,
		},
		{
			name:    "xp_failure_does_not_fail_bid",
			product: activeAuction(1000, 1000),
			amount:  2000,
			bidder:  bidder,
			mockSetup: func(m *MockLedger, p models.Product) {
				m.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(p))
				m.EXPECT().AddXp(gomock.Any(), "bidder", 10).Return(models.User{}, errors.New("user vanished"))
				m.EXPECT().Publish(gomock.Any(), eventOfType(events.BidUpdate))
			},
			expectSuccess: true,
			wantStatus:    models.ProductStatusActive,
			wantPrice:     2000,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := NewMockLedger(ctrl)
			service := NewAuctionService(mockLedger, WithClock(func() time.Time { return testNow }))
			tc.mockSetup(mockLedger, tc.product)

			res := service.PlaceBid(context.Background(), "p1", tc.amount, tc.bidder)

			if tc.expectedError != nil {
				require.False(t, res.Success)
				require.ErrorIs(t, res.Err, tc.expectedError)
				require.Equal(t, tc.expectedError.Error(), res.Message)
				return
			}
			require.True(t, res.Success)
			require.NoError(t, res.Err)
			require.NotNil(t, res.Product)
			require.Equal(t, tc.wantStatus, res.Product.Status)
			require.Equal(t, tc.wantPrice, res.Product.CurrentPrice)
			require.LessOrEqual(t, res.Product.CurrentPrice, res.Product.PriceCap())

			latest, ok := res.Product.LatestBid()
			require.True(t, ok)
			require.Equal(t, res.Product.CurrentPrice, latest.Amount)
			require.Equal(t, tc.bidder.ID, latest.BidderID)
			require.Equal(t, testNow, latest.Timestamp)
			if tc.wantStatus == models.ProductStatusSold {
				require.Equal(t, tc.bidder.ID, res.Product.WinnerID)
			}
		})
	}
}

// Tests QuickCloseAuction
func TestAuctionService_QuickCloseAuction(t *testing.T) {
	buyer := models.User{ID: "buyer", Name: "구매자", QuickCloseTickets: 1, XP: 20}

	tests := []struct {
		name          string
		product       models.Product
		user          models.User
		mutateErr     error
		expectedError error
	}{
		{name: "wins_at_current_price", product: activeAuction(50000, 120000), user: buyer},
		{
			name:          "seller_self_close",
			product:       activeAuction(50000, 120000),
			user:          models.User{ID: "seller", QuickCloseTickets: 5},
			expectedError: marketerrors.ErrSelfBidForbidden,
		},
		{
			name:          "no_tickets",
			product:       activeAuction(50000, 120000),
			user:          models.User{ID: "buyer", QuickCloseTickets: 0},
			expectedError: marketerrors.ErrNoTicketsAvailable,
		},
		{
			name: "already_closed",
			product: func() models.Product {
				p := activeAuction(50000, 120000)
				p.Status = models.ProductStatusExpired
				return p
			}(),
			user:          buyer,
			expectedError: marketerrors.ErrAuctionAlreadyClosed,
		},
		{
			name:          "missing_user",
			product:       activeAuction(50000, 120000),
			user:          buyer,
			mutateErr:     marketerrors.ErrUserNotFound,
			expectedError: marketerrors.ErrUserNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := NewMockLedger(ctrl)
			service := NewAuctionService(mockLedger, WithClock(func() time.Time { return testNow }))

			call := mockLedger.EXPECT().MutateProductAndUser(gomock.Any(), "p1", tc.user.ID, gomock.Any())
			if tc.mutateErr != nil {
				call.Return(models.Product{}, models.User{}, tc.mutateErr)
			} else {
				call.DoAndReturn(applyToPair(tc.product, tc.user))
			}
			if tc.expectedError == nil {
				gomock.InOrder(
					mockLedger.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed)),
					mockLedger.EXPECT().Publish(gomock.Any(), eventOfType(events.UserUpdate)),
				)
			}

			res := service.QuickCloseAuction(context.Background(), "p1", tc.user.ID)

			if tc.expectedError != nil {
				require.False(t, res.Success)
				require.ErrorIs(t, res.Err, tc.expectedError)
				return
			}
			require.True(t, res.Success)
			require.Equal(t, models.ProductStatusSold, res.Product.Status)
			require.Equal(t, tc.user.ID, res.Product.WinnerID)
			require.Equal(t, tc.product.CurrentPrice, res.Product.CurrentPrice)
			require.Equal(t, tc.user.QuickCloseTickets-1, res.User.QuickCloseTickets)
			require.Equal(t, tc.user.XP+50, res.User.XP)

			synthetic, ok := res.Product.LatestBid()
			require.True(t, ok)
			require.True(t, strings.HasPrefix(synthetic.ID, "ticket-"))
			require.Equal(t, tc.product.CurrentPrice, synthetic.Amount)
		})
	}
}

// Tests BuyNow
func TestAuctionService_BuyNow(t *testing.T) {
	shop := activeAuction(850000, 850000)
	shop.Type = models.ProductTypeShop
	sold := shop.Clone()
	sold.Status = models.ProductStatusSold
	buyer := models.User{ID: "buyer", XP: 0}

	tests := []struct {
		name          string
		product       models.Product
		mutateErr     error
		expectedError error
	}{
		{name: "shop_checkout", product: shop},
		{name: "auction_checkout", product: activeAuction(1000, 1500)},
		{name: "already_sold", product: sold, expectedError: marketerrors.ErrAuctionAlreadyClosed},
		{name: "unknown_buyer", product: shop, mutateErr: marketerrors.ErrUserNotFound, expectedError: marketerrors.ErrUserNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := NewMockLedger(ctrl)
			service := NewAuctionService(mockLedger)

			if tc.mutateErr != nil {
				mockLedger.EXPECT().MutateProductAndUser(gomock.Any(), "p1", "buyer", gomock.Any()).
					Return(tc.product, models.User{}, fmt.Errorf("update user buyer: %w", tc.mutateErr))
			} else {
				mockLedger.EXPECT().MutateProductAndUser(gomock.Any(), "p1", "buyer", gomock.Any()).DoAndReturn(applyToPair(tc.product, buyer))
			}
			if tc.expectedError == nil {
				mockLedger.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed))
				mockLedger.EXPECT().AnnounceIfCurrent(gomock.Any(), gomock.Any())
			}

			res := service.BuyNow(context.Background(), "p1", "buyer")
			if tc.expectedError != nil {
				require.False(t, res.Success)
				require.ErrorIs(t, res.Err, tc.expectedError)
				require.NotEmpty(t, res.Message)
				return
			}
			require.True(t, res.Success)
			require.Equal(t, models.ProductStatusSold, res.Product.Status)
			require.Equal(t, "buyer", res.Product.WinnerID)
			require.Equal(t, 50, res.User.XP)
		})
	}
}

// Tests ExpireAuction
func TestAuctionService_ExpireAuction(t *testing.T) {
	withBids := activeAuction(1000, 3000)
	withBids.Bids = []models.Bid{
		{ID: "b1", BidderID: "early", Amount: 2000},
		{ID: "b2", BidderID: "late", Amount: 3000},
	}
	shop := activeAuction(1000, 1000)
	shop.Type = models.ProductTypeShop

	tests := []struct {
		name          string
		product       models.Product
		now           time.Time
		expectXPFor   string
		expectedError error
		wantStatus    models.ProductStatus
	}{
		{name: "settles_latest_bidder", product: withBids, now: testNow.Add(2 * time.Hour), expectXPFor: "late", wantStatus: models.ProductStatusSold},
		{name: "expires_without_bids", product: activeAuction(1000, 1000), now: testNow.Add(2 * time.Hour), wantStatus: models.ProductStatusExpired},
		{name: "not_yet_due", product: withBids, now: testNow, expectedError: marketerrors.ErrNotExpired},
		{name: "shop_items_never_expire", product: shop, now: testNow.Add(2 * time.Hour), expectedError: marketerrors.ErrInvalidAuction},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := NewMockLedger(ctrl)
			service := NewAuctionService(mockLedger)

			mockLedger.EXPECT().MutateProduct(gomock.Any(), "p1", gomock.Any()).DoAndReturn(applyTo(tc.product))
			if tc.expectXPFor != "" {
				mockLedger.EXPECT().AddXp(gomock.Any(), tc.expectXPFor, 50).Return(models.User{}, nil)
			}
			if tc.expectedError == nil {
				mockLedger.EXPECT().Publish(gomock.Any(), eventOfType(events.AuctionClosed))
			}

			res := service.ExpireAuction(context.Background(), "p1", tc.now)
			if tc.expectedError != nil {
				require.ErrorIs(t, res.Err, tc.expectedError)
				return
			}
			require.True(t, res.Success)
			require.Equal(t, tc.wantStatus, res.Product.Status)
			require.Equal(t, tc.expectXPFor, res.Product.WinnerID)
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("context"), marketerrors.ErrBidTooLow)
	require.Equal(t, "bid must exceed current price", RejectionMessage(wrapped))
	require.Equal(t, "boom", RejectionMessage(errors.New("boom")))
}
