package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrAccessDenied         = errors.New("reservation access denied")
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrCodeCollision        = errors.New("reservation code collision")
	ErrCalendarTokenInvalid = errors.New("calendar token invalid")

	// Chat errors
	ErrEmptyMessage  = errors.New("message content is empty")
	ErrInvalidSender = errors.New("invalid message sender")

	// Catalog errors
	ErrOfferNotFound        = errors.New("offer not found")
	ErrOfferInUse           = errors.New("offer is referenced by reservations")
	ErrDiscountCodeNotFound = errors.New("discount code not found")
	ErrDuplicateDiscount    = errors.New("discount code already exists")

	// Account errors
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user inactive")
	ErrEmailTaken           = errors.New("email already taken")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrNothingToUpdate      = errors.New("nothing to update")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
