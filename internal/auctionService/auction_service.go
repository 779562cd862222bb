package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bomul-market/internal/events"
	"bomul-market/internal/marketerrors"
	"bomul-market/internal/metrics"
	"bomul-market/internal/models"
	"bomul-market/internal/progression"
	"bomul-market/utils"
)

//go:generate mockgen -destination=mock_ledger.go -package=auction bomul-market/internal/auctionService Ledger

// Ledger is the state the engine transacts against
type Ledger interface {
	MutateProduct(ctx context.Context, productID string, fn func(*models.Product) error) (models.Product, error)
	MutateProductAndUser(ctx context.Context, productID, userID string, fn func(*models.Product, *models.User) error) (models.Product, models.User, error)
	AddXp(ctx context.Context, userID string, amount int) (models.User, error)
	AnnounceIfCurrent(ctx context.Context, user models.User)
	Publish(ctx context.Context, e events.Event)
}

// AuctionService enforces the auction and shop transaction rules
type AuctionService struct {
	ledger  Ledger
	metrics *metrics.MarketMetrics
	now     func() time.Time
}

// Option customizes an AuctionService
type Option func(*AuctionService)

func WithMetrics(m *metrics.MarketMetrics) Option {
	return func(s *AuctionService) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) { s.now = now }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(ledger Ledger, opts ...Option) *AuctionService {
	s := &AuctionService{
		ledger: ledger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid records a bid above the current price. A bid reaching the price
// cap is recorded at the cap and wins the auction immediately.
func (s *AuctionService) PlaceBid(ctx context.Context, productID string, amount int64, bidder models.User) models.Result {
	if bidder.ID == "" {
		return s.rejectBid(productID, bidder.ID, fmt.Errorf("service: %w - missing bidder id", marketerrors.ErrInvalidBidder))
	}

	var capped bool
	product, err := s.ledger.MutateProduct(ctx, productID, func(p *models.Product) error {
		if p.Type != models.ProductTypeAuction || p.Status != models.ProductStatusActive {
			return fmt.Errorf("service: %w - product %s is %s %s", marketerrors.ErrInvalidAuction, p.ID, p.Status, p.Type)
		}
		if amount <= p.CurrentPrice {
			return fmt.Errorf("service: %w - current price is %d", marketerrors.ErrBidTooLow, p.CurrentPrice)
		}

		recorded := amount
		if limit := p.PriceCap(); amount >= limit {
			capped = true
			if limit > p.CurrentPrice {
				recorded = limit
			}
		}

		p.Bids = append(p.Bids, models.Bid{
			ID:         utils.GenerateID(),
			BidderID:   bidder.ID,
			BidderName: bidder.Name,
			Amount:     recorded,
			Timestamp:  s.now().UTC(),
		})
		p.CurrentPrice = recorded
		if capped {
			p.Status = models.ProductStatusSold
			p.WinnerID = bidder.ID
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, marketerrors.ErrProductNotFound) {
			err = fmt.Errorf("service: %w: %w", marketerrors.ErrInvalidAuction, err)
		}
		return s.rejectBid(productID, bidder.ID, err)
	}

	xp := progression.XPBid
	if capped {
		xp += progression.XPWin
	}
	if _, err := s.ledger.AddXp(ctx, bidder.ID, xp); err != nil {
		utils.Warn("service: bid xp not awarded", map[string]any{"user_id": bidder.ID, "error": err.Error()})
	}

	if capped {
		s.metrics.IncBid("capped")
		s.metrics.IncClosed("price_cap")
		s.ledger.Publish(ctx, events.ProductEvent(events.AuctionClosed, product))
		utils.Info("service: auction won at price cap", map[string]any{"product_id": productID, "user_id": bidder.ID, "amount": product.CurrentPrice})
		return success("price ceiling reached, auction won immediately", &product, nil)
	}

	s.metrics.IncBid("accepted")
	s.ledger.Publish(ctx, events.ProductEvent(events.BidUpdate, product))
	return success("bid placed", &product, nil)
}

// QuickCloseAuction spends one ticket to win an active auction at its current price
func (s *AuctionService) QuickCloseAuction(ctx context.Context, productID, userID string) models.Result {
	product, user, err := s.ledger.MutateProductAndUser(ctx, productID, userID, func(p *models.Product, u *models.User) error {
		if p.SellerID == u.ID {
			return fmt.Errorf("service: %w", marketerrors.ErrSelfBidForbidden)
		}
		if u.QuickCloseTickets <= 0 {
			return fmt.Errorf("service: %w", marketerrors.ErrNoTicketsAvailable)
		}
		if p.Status != models.ProductStatusActive {
			return fmt.Errorf("service: %w - product %s is %s", marketerrors.ErrAuctionAlreadyClosed, p.ID, p.Status)
		}

		now := s.now().UTC()
		p.Status = models.ProductStatusSold
		p.WinnerID = u.ID
		p.Bids = append(p.Bids, models.Bid{
			ID:         utils.GeneratePrefixedID("ticket"),
			BidderID:   u.ID,
			BidderName: u.Name,
			Amount:     p.CurrentPrice,
			Timestamp:  now,
		})
		u.QuickCloseTickets--
		u.XP = progression.ApplyXP(u.XP, progression.XPWin)
		return nil
	})
	if err != nil {
		utils.Info("service: quick close rejected", map[string]any{"product_id": productID, "user_id": userID, "error": err.Error()})
		return failure(err)
	}

	s.metrics.IncClosed("quick_close")
	s.ledger.Publish(ctx, events.ProductEvent(events.AuctionClosed, product))
	s.ledger.Publish(ctx, events.UserEvent(&user))
	utils.Info("service: auction quick closed", map[string]any{"product_id": productID, "user_id": userID, "tickets_left": user.QuickCloseTickets})
	return success("premium ticket used, auction won immediately", &product, &user)
}

// BuyNow sells an active listing to buyerID at its current price
func (s *AuctionService) BuyNow(ctx context.Context, productID, buyerID string) models.Result {
	product, buyer, err := s.ledger.MutateProductAndUser(ctx, productID, buyerID, func(p *models.Product, u *models.User) error {
		if p.Status != models.ProductStatusActive {
			return fmt.Errorf("service: %w - product %s is %s", marketerrors.ErrAuctionAlreadyClosed, p.ID, p.Status)
		}
		p.Status = models.ProductStatusSold
		p.WinnerID = u.ID
		u.XP = progression.ApplyXP(u.XP, progression.XPWin)
		return nil
	})
	if err != nil {
		utils.Info("service: buy now rejected", map[string]any{"product_id": productID, "user_id": buyerID, "error": err.Error()})
		return failure(err)
	}

	s.metrics.IncClosed("buy_now")
	s.ledger.Publish(ctx, events.ProductEvent(events.AuctionClosed, product))
	s.ledger.AnnounceIfCurrent(ctx, buyer)
	return success("purchase complete", &product, &buyer)
}

// ExpireAuction closes an active auction whose end time has passed. The
// latest bidder wins when bids exist; otherwise the listing expires unsold.
func (s *AuctionService) ExpireAuction(ctx context.Context, productID string, now time.Time) models.Result {
	product, err := s.ledger.MutateProduct(ctx, productID, func(p *models.Product) error {
		if p.Type != models.ProductTypeAuction {
			return fmt.Errorf("service: %w - product %s is %s", marketerrors.ErrInvalidAuction, p.ID, p.Type)
		}
		if p.Status != models.ProductStatusActive {
			return fmt.Errorf("service: %w - product %s is %s", marketerrors.ErrAuctionAlreadyClosed, p.ID, p.Status)
		}
		if now.Before(p.EndsAt) {
			return fmt.Errorf("service: %w - ends at %s", marketerrors.ErrNotExpired, p.EndsAt.UTC().Format(time.RFC3339))
		}
		if latest, ok := p.LatestBid(); ok {
			p.Status = models.ProductStatusSold
			p.WinnerID = latest.BidderID
			return nil
		}
		p.Status = models.ProductStatusExpired
		return nil
	})
	if err != nil {
		return failure(err)
	}

	if product.Status == models.ProductStatusSold {
		if _, err := s.ledger.AddXp(ctx, product.WinnerID, progression.XPWin); err != nil {
			utils.Warn("service: settlement xp not awarded", map[string]any{"user_id": product.WinnerID, "error": err.Error()})
		}
		s.metrics.IncClosed("settled")
	} else {
		s.metrics.IncClosed("expired")
	}

	s.ledger.Publish(ctx, events.ProductEvent(events.AuctionClosed, product))
	utils.Info("service: auction ended", map[string]any{"product_id": productID, "status": product.Status, "winner_id": product.WinnerID})
	if product.Status == models.ProductStatusSold {
		return success("auction ended, sold to the highest bidder", &product, nil)
	}
	return success("auction ended without bids", &product, nil)
}

func (s *AuctionService) rejectBid(productID, userID string, err error) models.Result {
	s.metrics.IncBid(rejectionReason(err))
	utils.Info("service: bid rejected", map[string]any{"product_id": productID, "user_id": userID, "error": err.Error()})
	return failure(err)
}

func success(message string, product *models.Product, user *models.User) models.Result {
	return models.Result{Success: true, Message: message, Product: product, User: user}
}

func failure(err error) models.Result {
	return models.Result{Success: false, Message: RejectionMessage(err), Err: err}
}

// sentinels in match priority order
var rejections = []struct {
	err    error
	reason string
}{
	{marketerrors.ErrInvalidAuction, "invalid_auction"},
	{marketerrors.ErrBidTooLow, "too_low"},
	{marketerrors.ErrSelfBidForbidden, "self_bid"},
	{marketerrors.ErrNoTicketsAvailable, "no_tickets"},
	{marketerrors.ErrAuctionAlreadyClosed, "closed"},
	{marketerrors.ErrInvalidBidder, "invalid_bidder"},
	{marketerrors.ErrNotExpired, "not_expired"},
	{marketerrors.ErrProductNotFound, "not_found"},
	{marketerrors.ErrUserNotFound, "not_found"},
}

// RejectionMessage returns the human-readable text of the first known
// sentinel in err's chain.
func RejectionMessage(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.err.Error()
		}
	}
	return err.Error()
}

func rejectionReason(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "error"
}
