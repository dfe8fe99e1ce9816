package rest

import (
	"errors"
	"goodsStore/domain"
	"net/http"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ResponseMessage struct {
	ID         uint64 `json:"id,omitempty"`
	Message    string `json:"message"`
	Idempotent bool   `json:"idempotent,omitempty"`
}

const serverErrorMessage = "Server error"

// errorResponse maps a service error to its status code. Causes of 5xx
// responses stay in the logs.
func errorResponse(err error) (int, ResponseError) {
	switch {
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, ResponseError{Message: "Invalid role"}
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidShippingStatus),
		errors.Is(err, domain.ErrInvalidArtistStatus):
		return http.StatusBadRequest, ResponseError{Message: err.Error()}
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, ResponseError{Message: "Order not found"}
	case errors.Is(err, domain.ErrGoodsNotFound):
		return http.StatusNotFound, ResponseError{Message: "Good not found"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ResponseError{Message: "User not found"}
	case errors.Is(err, domain.ErrArtistNotFound):
		return http.StatusNotFound, ResponseError{Message: "Artist not found"}
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrIdempotencyInFlight),
		errors.Is(err, domain.ErrGoodsInUse):
		return http.StatusConflict, ResponseError{Message: err.Error()}
	default:
		return http.StatusInternalServerError, ResponseError{Message: serverErrorMessage}
	}
}
