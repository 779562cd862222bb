package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"
	"bomul-market/utils"
)

// ProductSource lists the current products
type ProductSource interface {
	GetProducts() []models.Product
}

// Expirer closes a due auction
type Expirer interface {
	ExpireAuction(ctx context.Context, productID string, now time.Time) models.Result
}

// ExpirySweep closes every active auction whose end time has passed
type ExpirySweep struct {
	products ProductSource
	expirer  Expirer
	now      func() time.Time
}

func NewExpirySweep(products ProductSource, expirer Expirer, now func() time.Time) *ExpirySweep {
	if now == nil {
		now = time.Now
	}
	return &ExpirySweep{products: products, expirer: expirer, now: now}
}

func (j *ExpirySweep) Name() string { return "expiry_sweep" }

func (j *ExpirySweep) Run(ctx context.Context) error {
	now := j.now()
	var closed int
	var errs []error
	for _, p := range j.products.GetProducts() {
		if p.Type != models.ProductTypeAuction || p.Status != models.ProductStatusActive || now.Before(p.EndsAt) {
			continue
		}
		res := j.expirer.ExpireAuction(ctx, p.ID, now)
		if res.Success {
			closed++
			continue
		}
		// closed concurrently by a bid or quick close since the listing was read
		if errors.Is(res.Err, marketerrors.ErrAuctionAlreadyClosed) || errors.Is(res.Err, marketerrors.ErrProductNotFound) {
			continue
		}
		errs = append(errs, fmt.Errorf("expire %s: %w", p.ID, res.Err))
	}
	if closed > 0 {
		utils.Info("scheduler: auctions expired", map[string]any{"closed": closed})
	}
	return errors.Join(errs...)
}

// MonthRoller starts a new ticket month
type MonthRoller interface {
	RolloverMonth(ctx context.Context) []models.User
}

// MonthRollover invokes the ticket month rollover once per calendar month change
type MonthRollover struct {
	roller MonthRoller
	now    func() time.Time

	mu        sync.Mutex
	lastMonth int
}

// NewMonthRollover treats the month at construction as already rolled over
func NewMonthRollover(roller MonthRoller, now func() time.Time) *MonthRollover {
	if now == nil {
		now = time.Now
	}
	return &MonthRollover{roller: roller, now: now, lastMonth: monthIndex(now())}
}

func (j *MonthRollover) Name() string { return "month_rollover" }

func (j *MonthRollover) Run(ctx context.Context) error {
	current := monthIndex(j.now())

	j.mu.Lock()
	if current <= j.lastMonth {
		j.mu.Unlock()
		return nil
	}
	j.lastMonth = current
	j.mu.Unlock()

	users := j.roller.RolloverMonth(ctx)
	utils.Info("scheduler: ticket month rolled over", map[string]any{"users": len(users)})
	return nil
}

func monthIndex(t time.Time) int {
	t = t.UTC()
	return t.Year()*12 + int(t.Month()) - 1
}
