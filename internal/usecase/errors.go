package usecase

import "errors"

// Sentinel errors the handlers map onto HTTP statuses.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrNotOwner = errors.New("you are not allowed to access this booking")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCancellable    = errors.New("only pending bookings can be cancelled")
	ErrAlreadyReviewed   = errors.New("booking has already been reviewed")

	ErrNothingToPay   = errors.New("no bookings are selected for payment")
	ErrCheckoutFailed = errors.New("checkout failed, please try again")
	ErrNoAttempt      = errors.New("no checkout is in progress")

	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
