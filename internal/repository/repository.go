package repository

import (
	"bomul-market/internal/marketerrors"
	model "bomul-market/internal/models"
	"fmt"
	"sync"
)

// MarketDB defines the storage interface of the marketplace ledger
type MarketDB interface {
	ListProducts() []model.Product
	GetProduct(id string) (model.Product, error)
	InsertProduct(product model.Product) error
	UpdateProduct(id string, fn func(*model.Product) error) (model.Product, error)
	UpdateProductAndUser(productID, userID string, fn func(*model.Product, *model.User) error) (model.Product, model.User, error)
	ReplaceProduct(product model.Product, allowInsert bool) bool
	DeleteProduct(id string) error

	ListUsers() []model.User
	GetUser(id string) (model.User, error)
	InsertUser(user model.User) error
	UpdateUser(id string, fn func(*model.User) error) (model.User, error)
	UpdateAllUsers(fn func(*model.User)) []model.User
	ReplaceUser(user model.User)

	ListReports() []model.Report
	InsertReport(report model.Report) error
	UpdateReport(id string, fn func(*model.Report) error) (model.Report, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB.
// A single lock guards all collections so multi-entity updates stay atomic.
type MemoryRepo struct {
	mu           sync.RWMutex
	products     map[string]model.Product // key: productID -> value: product
	productOrder []string                 // insertion order of productIDs
	users        map[string]model.User    // key: userID -> value: user
	userOrder    []string
	reports      []model.Report
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[string]model.Product),
		users:    make(map[string]model.User),
	}
}

// ListProducts returns copies of all products in insertion order
func (r *MemoryRepo) ListProducts() []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.productOrder))
	for _, id := range r.productOrder {
		products = append(products, r.products[id].Clone())
	}
	return products
}

// GetProduct returns a copy of a single product
func (r *MemoryRepo) GetProduct(id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, marketerrors.ErrProductNotFound)
	}
	return p.Clone(), nil
}

// InsertProduct appends a new product
func (r *MemoryRepo) InsertProduct(product model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		return fmt.Errorf("insert product: %w - empty id", marketerrors.ErrInvalidListing)
	}
	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("insert product %s: %w", product.ID, marketerrors.ErrDuplicateProduct)
	}
	r.products[product.ID] = product.Clone()
	r.productOrder = append(r.productOrder, product.ID)
	return nil
}

// UpdateProduct applies fn to a working copy of the product and stores it
// with a bumped version when fn succeeds. A failing fn leaves the product untouched.
func (r *MemoryRepo) UpdateProduct(id string, fn func(*model.Product) error) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("update product %s: %w", id, marketerrors.ErrProductNotFound)
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.Version = current.Version + 1
	r.products[id] = working
	return working.Clone(), nil
}

// UpdateProductAndUser mutates a product and a user under one lock
func (r *MemoryRepo) UpdateProductAndUser(productID, userID string, fn func(*model.Product, *model.User) error) (model.Product, model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return model.Product{}, model.User{}, fmt.Errorf("update product %s: %w", productID, marketerrors.ErrProductNotFound)
	}
	user, ok := r.users[userID]
	if !ok {
		return model.Product{}, model.User{}, fmt.Errorf("update user %s: %w", userID, marketerrors.ErrUserNotFound)
	}

	workingProduct := product.Clone()
	workingUser := user
	if err := fn(&workingProduct, &workingUser); err != nil {
		return product.Clone(), user, err
	}
	workingProduct.Version = product.Version + 1
	r.products[productID] = workingProduct
	r.users[userID] = workingUser
	return workingProduct.Clone(), workingUser, nil
}

// ReplaceProduct overwrites the local copy with a snapshot from another session.
// Snapshots older than the local version are ignored. Unknown products are
// inserted only when allowInsert is set, so a deleted product stays deleted.
func (r *MemoryRepo) ReplaceProduct(product model.Product, allowInsert bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.products[product.ID]
	if exists && product.Version < current.Version {
		return false
	}
	if !exists {
		if !allowInsert {
			return false
		}
		r.productOrder = append(r.productOrder, product.ID)
	}
	r.products[product.ID] = product.Clone()
	return true
}

// DeleteProduct removes a product permanently. Bids and reports that
// reference it are left in place.
func (r *MemoryRepo) DeleteProduct(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("delete product %s: %w", id, marketerrors.ErrProductNotFound)
	}
	delete(r.products, id)
	for i, pid := range r.productOrder {
		if pid == id {
			r.productOrder = append(r.productOrder[:i], r.productOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ListUsers returns all users in registration order
func (r *MemoryRepo) ListUsers() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		users = append(users, r.users[id])
	}
	return users
}

// GetUser returns a single user
func (r *MemoryRepo) GetUser(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, marketerrors.ErrUserNotFound)
	}
	return u, nil
}

// InsertUser registers a new user; ids are unique
func (r *MemoryRepo) InsertUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; exists {
		return fmt.Errorf("insert user %s: %w", user.ID, marketerrors.ErrUserExists)
	}
	r.users[user.ID] = user
	r.userOrder = append(r.userOrder, user.ID)
	return nil
}

// UpdateUser applies fn to a working copy of the user
func (r *MemoryRepo) UpdateUser(id string, fn func(*model.User) error) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("update user %s: %w", id, marketerrors.ErrUserNotFound)
	}
	working := current
	if err := fn(&working); err != nil {
		return current, err
	}
	r.users[id] = working
	return working, nil
}

// UpdateAllUsers applies fn to every user and returns the updated collection
func (r *MemoryRepo) UpdateAllUsers(fn func(*model.User)) []model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		u := r.users[id]
		fn(&u)
		r.users[id] = u
		users = append(users, u)
	}
	return users
}

// ReplaceUser overwrites or inserts a user snapshot received from another session
func (r *MemoryRepo) ReplaceUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		r.userOrder = append(r.userOrder, user.ID)
	}
	r.users[user.ID] = user
}

// ListReports returns all reports in submission order
func (r *MemoryRepo) ListReports() []model.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Report{}, r.reports...)
}

// InsertReport appends a report
func (r *MemoryRepo) InsertReport(report model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reports {
		if existing.ID == report.ID {
			return fmt.Errorf("insert report %s: %w - duplicate id", report.ID, marketerrors.ErrInvalidReport)
		}
	}
	r.reports = append(r.reports, report)
	return nil
}

// UpdateReport applies fn to a working copy of the report
func (r *MemoryRepo) UpdateReport(id string, fn func(*model.Report) error) (model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.reports {
		if existing.ID != id {
			continue
		}
		working := existing
		if err := fn(&working); err != nil {
			return existing, err
		}
		r.reports[i] = working
		return working, nil
	}
	return model.Report{}, fmt.Errorf("update report %s: %w", id, marketerrors.ErrReportNotFound)
}
