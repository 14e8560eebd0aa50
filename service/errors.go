package service

import (
	"errors"
	"fmt"
)

// Business rejections. Every one of them rolls back the whole request
// transaction; only infrastructure errors escape as plain errors.
var (
	// ErrInvalidCode is the single client-facing message for every promo
	// and referral failure. Reasons are deliberately not leaked.
	ErrInvalidCode = errors.New("invalid or expired code")

	ErrUnsupportedDelivery = errors.New("delivery is not available for this wilaya")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUnknownLocation     = errors.New("unknown wilaya or commune")
	ErrProductUnavailable  = errors.New("product unavailable")
	ErrUnknownSpecValue    = errors.New("unknown specification value")
)

// ErrReferralRejected distinguishes referral fraud rejections from promo
// rejections inside the engine and in tests, while unwrapping to
// ErrInvalidCode so the surface wording stays identical.
var ErrReferralRejected = fmt.Errorf("referral rejected: %w", ErrInvalidCode)
