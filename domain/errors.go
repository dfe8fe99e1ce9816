package domain

import "errors"

var (
	ErrValidation            = errors.New("validation failed")
	ErrOrderNotFound         = errors.New("order not found")
	ErrGoodsNotFound         = errors.New("goods not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrGoodsInUse            = errors.New("goods is referenced by orders")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidShippingStatus = errors.New("invalid shipping status")
	ErrInvalidTransition     = errors.New("shipping status transition not allowed")
	ErrIdempotencyInFlight   = errors.New("request with this idempotency key is still in progress")
	ErrArtistNotFound        = errors.New("artist not found")
	ErrInvalidArtistStatus   = errors.New("invalid artist status")
	ErrInvalidRole           = errors.New("invalid role")
)
