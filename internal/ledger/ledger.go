// Package ledger owns the marketplace collections and the session pointer.
// Every write goes through a Ledger method, which persists user changes and
// announces the change on the event hub.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bomul-market/internal/events"
	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"
	"bomul-market/internal/progression"
	"bomul-market/internal/repository"
	"bomul-market/internal/session"
	"bomul-market/utils"

	"golang.org/x/crypto/bcrypt"
)

// DefaultListingDuration applies when a listing is submitted without an end time
const DefaultListingDuration = 30 * 24 * time.Hour

// Publisher delivers ledger events
type Publisher interface {
	Publish(ctx context.Context, e events.Event)
}

// Ledger is the single authority over products, users, reports and the
// current session. Construct one per process and share it.
type Ledger struct {
	repo      repository.MarketDB
	publisher Publisher
	store     *session.Store
	hashCost  int
	now       func() time.Time

	mu            sync.RWMutex
	currentUserID string
	credentials   map[string]string // key: userID -> value: bcrypt hash

	persistMu sync.Mutex
}

// Option customizes a Ledger
type Option func(*Ledger)

// WithSessionStore persists the session pointer, users and credentials
func WithSessionStore(store *session.Store) Option {
	return func(l *Ledger) { l.store = store }
}

// WithHashCost sets the bcrypt cost used for new credentials
func WithHashCost(cost int) Option {
	return func(l *Ledger) { l.hashCost = cost }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a ledger over repo. A nil publisher discards events.
func New(repo repository.MarketDB, publisher Publisher, opts ...Option) *Ledger {
	l := &Ledger{
		repo:        repo,
		publisher:   publisher,
		hashCost:    bcrypt.DefaultCost,
		now:         time.Now,
		credentials: make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Restore loads users and the session pointer from the session store.
// Credentials are read on demand. It reports whether a user collection was found.
func (l *Ledger) Restore(ctx context.Context) (bool, error) {
	if l.store == nil {
		return false, nil
	}
	users, ok, err := l.store.Users(ctx)
	if err != nil {
		return false, fmt.Errorf("ledger: restore users: %w", err)
	}
	if !ok {
		return false, nil
	}
	for _, u := range users {
		l.repo.ReplaceUser(u)
	}

	currentID, hasCurrent, err := l.store.CurrentUserID(ctx)
	if err != nil {
		return true, fmt.Errorf("ledger: restore session: %w", err)
	}

	l.mu.Lock()
	if hasCurrent {
		if _, err := l.repo.GetUser(currentID); err == nil {
			l.currentUserID = currentID
		}
	}
	l.mu.Unlock()

	utils.Info("ledger: session restored", map[string]any{"users": len(users), "current_user": l.currentID()})
	return true, nil
}

// Seed inserts demo users and products that are not present yet. Every
// seeded user without a credential gets password.
func (l *Ledger) Seed(ctx context.Context, users []models.User, products []models.Product, password string) error {
	for _, u := range users {
		if err := l.repo.InsertUser(u); err != nil && !errors.Is(err, marketerrors.ErrUserExists) {
			return fmt.Errorf("ledger: seed user %s: %w", u.ID, err)
		}
		if _, ok := l.credentialHash(ctx, u.ID); ok || password == "" {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), l.hashCost)
		if err != nil {
			return fmt.Errorf("ledger: seed credential %s: %w", u.ID, err)
		}
		l.saveCredential(ctx, u.ID, string(hash))
	}
	for _, p := range products {
		if err := l.repo.InsertProduct(p); err != nil && !errors.Is(err, marketerrors.ErrDuplicateProduct) {
			return fmt.Errorf("ledger: seed product %s: %w", p.ID, err)
		}
	}
	l.persistUsers(ctx)
	return nil
}

// GetProducts returns every product. Callers filter and sort themselves.
func (l *Ledger) GetProducts() []models.Product {
	return l.repo.ListProducts()
}

func (l *Ledger) GetProductByID(id string) (models.Product, bool) {
	p, err := l.repo.GetProduct(id)
	if err != nil {
		return models.Product{}, false
	}
	return p, true
}

// AddProduct validates and stores a new listing, awards the seller listing XP
// and announces PRODUCT_LISTED.
func (l *Ledger) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if strings.TrimSpace(product.Title) == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - title is required", marketerrors.ErrInvalidListing)
	}
	if product.StartPrice <= 0 {
		return models.Product{}, fmt.Errorf("ledger: %w - start price must be positive", marketerrors.ErrInvalidListing)
	}
	if product.Type != models.ProductTypeAuction && product.Type != models.ProductTypeShop {
		return models.Product{}, fmt.Errorf("ledger: %w - unknown type %q", marketerrors.ErrInvalidListing, product.Type)
	}
	seller, err := l.repo.GetUser(product.SellerID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: %w - seller %q: %v", marketerrors.ErrInvalidListing, product.SellerID, err)
	}

	now := l.now().UTC()
	if product.ID == "" {
		product.ID = utils.GenerateID()
	}
	if product.SellerName == "" {
		product.SellerName = seller.Name
	}
	if product.DeliveryMethod == "" {
		product.DeliveryMethod = models.DeliveryParcel
	}
	product.CreatedAt = now
	if product.EndsAt.IsZero() {
		product.EndsAt = now.Add(DefaultListingDuration)
	}
	product.Status = models.ProductStatusActive
	product.CurrentPrice = product.StartPrice
	product.Bids = []models.Bid{}
	product.WinnerID = ""
	product.Version = 0

	if err := l.repo.InsertProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("ledger: add product: %w", err)
	}
	utils.Info("ledger: product listed", map[string]any{"product_id": product.ID, "seller_id": seller.ID, "type": product.Type})

	l.Publish(ctx, events.ProductEvent(events.ProductListed, product))
	if _, err := l.AddXp(ctx, seller.ID, progression.XPListing); err != nil {
		utils.Warn("ledger: listing xp not awarded", map[string]any{"seller_id": seller.ID, "error": err.Error()})
	}
	return product, nil
}

// DeleteProduct removes a listing permanently. No event is emitted and
// bids or reports referencing it are kept.
func (l *Ledger) DeleteProduct(_ context.Context, id string) error {
	if err := l.repo.DeleteProduct(id); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	utils.Info("ledger: product deleted", map[string]any{"product_id": id})
	return nil
}

// MutateProduct applies fn atomically to one product
func (l *Ledger) MutateProduct(_ context.Context, productID string, fn func(*models.Product) error) (models.Product, error) {
	return l.repo.UpdateProduct(productID, fn)
}

// MutateProductAndUser applies fn atomically to a product and a user and
// persists the user collection on success.
func (l *Ledger) MutateProductAndUser(ctx context.Context, productID, userID string, fn func(*models.Product, *models.User) error) (models.Product, models.User, error) {
	product, user, err := l.repo.UpdateProductAndUser(productID, userID, fn)
	if err != nil {
		return product, user, err
	}
	l.persistUsers(ctx)
	return product, user, nil
}

// Publish forwards e to the event hub
func (l *Ledger) Publish(ctx context.Context, e events.Event) {
	if l.publisher == nil {
		return
	}
	l.publisher.Publish(ctx, e)
}

// ApplyRemote folds a snapshot from another session into local state.
// Product snapshots older than the local copy are rejected.
func (l *Ledger) ApplyRemote(e events.Event) bool {
	switch e.Type {
	case events.BidUpdate, events.AuctionClosed, events.ProductListed:
		if e.Product == nil {
			return false
		}
		// only a listing may introduce a product; updates for unknown ids are dropped
		return l.repo.ReplaceProduct(*e.Product, e.Type == events.ProductListed)
	case events.UserUpdate:
		// the session pointer is per session; a remote logout changes nothing here
		if e.User == nil {
			return false
		}
		l.repo.ReplaceUser(*e.User)
		l.persistUsers(context.Background())
		return true
	case events.ReportUpdate:
		return true
	default:
		return false
	}
}

// persistUsers snapshots and saves under persistMu so an older collection
// never lands after a newer one.
func (l *Ledger) persistUsers(ctx context.Context) {
	if l.store == nil {
		return
	}
	l.persistMu.Lock()
	defer l.persistMu.Unlock()
	if err := l.store.SaveUsers(ctx, l.repo.ListUsers()); err != nil {
		utils.Error("ledger: failed to persist users", map[string]any{"error": err.Error()})
	}
}

// saveCredential caches the hash and writes it under the user's own key
func (l *Ledger) saveCredential(ctx context.Context, id, hash string) {
	l.mu.Lock()
	l.credentials[id] = hash
	l.mu.Unlock()

	if l.store == nil {
		return
	}
	if err := l.store.SaveCredential(ctx, id, hash); err != nil {
		utils.Error("ledger: failed to persist credential", map[string]any{"user_id": id, "error": err.Error()})
	}
}

func (l *Ledger) persistSession(ctx context.Context, id string) {
	if l.store == nil {
		return
	}
	if err := l.store.SaveCurrentUserID(ctx, id); err != nil {
		utils.Error("ledger: failed to persist session pointer", map[string]any{"error": err.Error()})
	}
}
