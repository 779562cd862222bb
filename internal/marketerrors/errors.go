package marketerrors

import "errors"

// Repository-level errors
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrReportNotFound    = errors.New("report not found")
	ErrUserExists        = errors.New("user already exists")
	ErrDuplicateProduct  = errors.New("product already exists")
	ErrSessionBackend    = errors.New("session store failure")
	ErrBroadcastDecoding = errors.New("malformed broadcast message")
)

// business logic errors
var (
	ErrInvalidAuction       = errors.New("invalid auction")
	ErrBidTooLow            = errors.New("bid must exceed current price")
	ErrSelfBidForbidden     = errors.New("seller cannot instant-win own item")
	ErrNoTicketsAvailable   = errors.New("no tickets available")
	ErrAuctionAlreadyClosed = errors.New("auction already closed")
	ErrMonthlyLimitExceeded = errors.New("monthly ticket purchase limit exceeded")
	ErrInvalidListing       = errors.New("invalid listing")
	ErrInvalidBidder        = errors.New("invalid bidder")
	ErrNotExpired           = errors.New("auction has not reached its end time")
	ErrTermsNotAccepted     = errors.New("terms of service must be accepted")
	ErrInvalidCredentials   = errors.New("invalid id or password")
	ErrInvalidReport        = errors.New("invalid report")
)
