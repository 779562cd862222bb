package ledger

import (
	"context"
	"fmt"
	"strings"

	"bomul-market/internal/events"
	"bomul-market/internal/marketerrors"
	"bomul-market/internal/models"
	"bomul-market/internal/progression"
	"bomul-market/utils"

	"golang.org/x/crypto/bcrypt"
)

// Ticket rules
const (
	MonthlyTicketLimit      = 3
	SubscriptionTicketGrant = 3
)

func (l *Ledger) GetUserByID(id string) (models.User, bool) {
	u, err := l.repo.GetUser(id)
	if err != nil {
		return models.User{}, false
	}
	return u, true
}

func (l *Ledger) ListUsers() []models.User {
	return l.repo.ListUsers()
}

// CurrentUser returns the session user or nil when nobody is signed in
func (l *Ledger) CurrentUser() *models.User {
	id := l.currentID()
	if id == "" {
		return nil
	}
	u, err := l.repo.GetUser(id)
	if err != nil {
		return nil
	}
	return &u
}

func (l *Ledger) currentID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentUserID
}

func (l *Ledger) isCurrent(id string) bool {
	return id != "" && l.currentID() == id
}

// SetCurrentSession points the session at id. An unknown id signs out.
func (l *Ledger) SetCurrentSession(ctx context.Context, id string) *models.User {
	u, err := l.repo.GetUser(id)
	if err != nil {
		l.ClearSession(ctx)
		return nil
	}

	l.mu.Lock()
	l.currentUserID = u.ID
	l.mu.Unlock()
	l.persistSession(ctx, u.ID)

	l.Publish(ctx, events.UserEvent(&u))
	return &u
}

// ClearSession signs the current user out
func (l *Ledger) ClearSession(ctx context.Context) {
	l.mu.Lock()
	l.currentUserID = ""
	l.mu.Unlock()
	l.persistSession(ctx, "")

	l.Publish(ctx, events.UserEvent(nil))
}

// RegisterUser creates an account, stores the hashed secret and signs the
// new user in.
func (l *Ledger) RegisterUser(ctx context.Context, user models.User, secret string) (models.User, error) {
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Name) == "" {
		return models.User{}, fmt.Errorf("ledger: %w - id and name are required", marketerrors.ErrInvalidCredentials)
	}
	if secret == "" {
		return models.User{}, fmt.Errorf("ledger: %w - password is required", marketerrors.ErrInvalidCredentials)
	}
	if !user.AgreedToTerms {
		return models.User{}, fmt.Errorf("ledger: %w", marketerrors.ErrTermsNotAccepted)
	}
	if user.Role == "" {
		user.Role = models.RoleBuyer
	}
	if user.QuickCloseTickets < 0 {
		user.QuickCloseTickets = 0
	}
	user.TicketsPurchasedMonth = 0
	user.XP = 0

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), l.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("ledger: hash credential: %w", err)
	}
	if err := l.repo.InsertUser(user); err != nil {
		return models.User{}, fmt.Errorf("ledger: register: %w", err)
	}

	l.saveCredential(ctx, user.ID, string(hash))
	l.mu.Lock()
	l.currentUserID = user.ID
	l.mu.Unlock()

	l.persistUsers(ctx)
	l.persistSession(ctx, user.ID)
	utils.Info("ledger: user registered", map[string]any{"user_id": user.ID, "role": user.Role})

	l.Publish(ctx, events.UserEvent(&user))
	return user, nil
}

// credentialHash checks the local cache first and falls back to the session
// store, where another session may have registered the account.
func (l *Ledger) credentialHash(ctx context.Context, id string) (string, bool) {
	l.mu.RLock()
	hash, ok := l.credentials[id]
	l.mu.RUnlock()
	if ok || l.store == nil {
		return hash, ok
	}

	hash, ok, err := l.store.Credential(ctx, id)
	if err != nil {
		utils.Warn("ledger: credential lookup failed", map[string]any{"user_id": id, "error": err.Error()})
		return "", false
	}
	if !ok {
		return "", false
	}
	l.mu.Lock()
	l.credentials[id] = hash
	l.mu.Unlock()
	return hash, true
}

// ValidateUser reports whether password matches the stored credential of id
func (l *Ledger) ValidateUser(ctx context.Context, id, password string) bool {
	hash, ok := l.credentialHash(ctx, id)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login validates the credential and points the session at the user
func (l *Ledger) Login(ctx context.Context, id, password string) (models.User, error) {
	if !l.ValidateUser(ctx, id, password) {
		utils.Info("ledger: login rejected", map[string]any{"user_id": id})
		return models.User{}, fmt.Errorf("ledger: %w", marketerrors.ErrInvalidCredentials)
	}
	u := l.SetCurrentSession(ctx, id)
	if u == nil {
		return models.User{}, fmt.Errorf("ledger: login %s: %w", id, marketerrors.ErrUserNotFound)
	}
	return *u, nil
}

// AddXp adds amount to the user's xp, clamping at zero. USER_UPDATE is
// emitted only when the user is the current session user.
func (l *Ledger) AddXp(ctx context.Context, userID string, amount int) (models.User, error) {
	user, err := l.repo.UpdateUser(userID, func(u *models.User) error {
		u.XP = progression.ApplyXP(u.XP, amount)
		return nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("ledger: add xp: %w", err)
	}
	l.persistUsers(ctx)
	l.AnnounceIfCurrent(ctx, user)
	return user, nil
}

// AnnounceIfCurrent emits USER_UPDATE when user is the session user
func (l *Ledger) AnnounceIfCurrent(ctx context.Context, user models.User) {
	if l.isCurrent(user.ID) {
		l.Publish(ctx, events.UserEvent(&user))
	}
}

// SubscribeUser activates the subscription and grants its tickets
func (l *Ledger) SubscribeUser(ctx context.Context, userID string) (models.User, error) {
	user, err := l.repo.UpdateUser(userID, func(u *models.User) error {
		u.IsSubscribed = true
		u.QuickCloseTickets += SubscriptionTicketGrant
		return nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("ledger: subscribe: %w", err)
	}
	l.persistUsers(ctx)
	utils.Info("ledger: user subscribed", map[string]any{"user_id": userID, "tickets": user.QuickCloseTickets})

	l.Publish(ctx, events.UserEvent(&user))
	return user, nil
}

// PurchaseTicket buys one quick-close ticket within the monthly limit
func (l *Ledger) PurchaseTicket(ctx context.Context, userID string) models.Result {
	user, err := l.repo.UpdateUser(userID, func(u *models.User) error {
		if u.TicketsPurchasedMonth >= MonthlyTicketLimit {
			return marketerrors.ErrMonthlyLimitExceeded
		}
		u.QuickCloseTickets++
		u.TicketsPurchasedMonth++
		return nil
	})
	if err != nil {
		utils.Info("ledger: ticket purchase rejected", map[string]any{"user_id": userID, "error": err.Error()})
		return models.Result{Success: false, Message: err.Error(), Err: err}
	}
	l.persistUsers(ctx)

	l.Publish(ctx, events.UserEvent(&user))
	return models.Result{
		Success: true,
		Message: fmt.Sprintf("ticket purchased (%d/%d this month)", user.TicketsPurchasedMonth, MonthlyTicketLimit),
		User:    &user,
	}
}

// RolloverMonth starts a new purchase month: counters reset and
// subscribers receive their monthly tickets.
func (l *Ledger) RolloverMonth(ctx context.Context) []models.User {
	users := l.repo.UpdateAllUsers(func(u *models.User) {
		u.TicketsPurchasedMonth = 0
		if u.IsSubscribed {
			u.QuickCloseTickets += SubscriptionTicketGrant
		}
	})
	l.persistUsers(ctx)
	utils.Info("ledger: month rolled over", map[string]any{"users": len(users)})

	for _, u := range users {
		if l.isCurrent(u.ID) {
			l.Publish(ctx, events.UserEvent(&u))
		}
	}
	return users
}
