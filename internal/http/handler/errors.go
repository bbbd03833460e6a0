package handler

import (
	"errors"
	"net/http"

	"marketsync/internal/core"
	"marketsync/internal/errs"
)

// status maps a failure onto its HTTP status. Narrower categories are
// checked before the ones they wrap.
func status(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrPinningDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, errs.ErrAlreadyPurchased):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUserRejected):
		return http.StatusNotAcceptable
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrPriceMismatch):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrMarketplacePaused):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrTransactionReverted):
		return http.StatusFailedDependency
	case errors.Is(err, errs.ErrNoURIProvided):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrEmptyAsset):
		return http.StatusGone
	case errors.Is(err, errs.ErrAllGatewaysExhausted):
		return http.StatusGatewayTimeout
	case errors.Is(err, errs.ErrQueryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(err error) Response {
	code := status(err)
	resp := Response{Message: errs.Message(err), Error: err.Error()}
	switch code {
	case http.StatusUnauthorized:
		resp.Message = "Login failed"
	case http.StatusNotImplemented:
		resp.Message = "Uploading is not configured."
	case http.StatusInternalServerError:
		resp.Error = "unexpected error occurred"
	}
	return resp
}
