package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidAmount       = fmt.Errorf("invalid amount: %w", ErrValidation)
	ErrAlreadyPurchased    = fmt.Errorf("product already purchased: %w", ErrValidation)
	ErrUserRejected        = errors.New("user rejected the request")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrPriceMismatch       = errors.New("price mismatch")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrNotOwner            = errors.New("caller is not the owner")
	ErrMarketplacePaused   = errors.New("marketplace is paused")

	ErrNoURIProvided        = errors.New("no uri provided")
	ErrAllGatewaysExhausted = errors.New("all ipfs gateways failed")
	ErrEmptyAsset           = errors.New("downloaded asset is empty")

	ErrQueryFailed = errors.New("query failed")
)

// RevertError is a ledger rejection observed after submission.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return ErrTransactionReverted.Error()
	}
	return fmt.Sprintf("%s: %s", ErrTransactionReverted, e.Reason)
}

// Unwrap lets errors.Is match the reverted sentinel plus the class implied by the reason.
func (e *RevertError) Unwrap() []error {
	out := []error{ErrTransactionReverted}
	reason := strings.ToLower(e.Reason)
	switch {
	case strings.Contains(reason, "paused"), strings.Contains(reason, "enforcedpause"):
		out = append(out, ErrMarketplacePaused)
	case strings.Contains(reason, "not the seller"),
		strings.Contains(reason, "not seller"),
		strings.Contains(reason, "only seller"),
		strings.Contains(reason, "not the owner"),
		strings.Contains(reason, "not owner"),
		strings.Contains(reason, "ownableunauthorizedaccount"):
		out = append(out, ErrNotOwner)
	}
	return out
}

// Validation wraps a local input problem so that it matches ErrValidation.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// QueryFailed marks a read that could not complete.
func QueryFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrQueryFailed, err)
}

// Temporary reports failures that are expected to clear without user action.
func Temporary(err error) bool {
	return errors.Is(err, ErrMarketplacePaused) ||
		errors.Is(err, ErrAllGatewaysExhausted) ||
		errors.Is(err, ErrQueryFailed)
}

// Message maps a failure onto the text shown to a user.
func Message(err error) string {
	var revert *RevertError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyPurchased):
		return "You already own this product."
	case errors.Is(err, ErrInvalidAmount):
		return "Enter a valid, non-negative amount."
	case errors.Is(err, ErrValidation):
		return "Some of the details are invalid. Please check them and try again."
	case errors.Is(err, ErrUserRejected):
		return "Transaction rejected. Approve it to continue."
	case errors.Is(err, ErrInsufficientFunds):
		return "Insufficient funds to cover the price and network fee."
	case errors.Is(err, ErrPriceMismatch):
		return "The price changed. Review the current price and confirm again."
	case errors.Is(err, ErrMarketplacePaused):
		return "The marketplace is temporarily unavailable. Please try again shortly."
	case errors.Is(err, ErrNotOwner):
		return "Only the owner can perform this action."
	case errors.As(err, &revert) && revert.Reason != "":
		return revert.Reason
	case errors.Is(err, ErrTransactionReverted):
		return "The transaction was rejected by the marketplace."
	case errors.Is(err, ErrNoURIProvided):
		return "This product has no file attached."
	case errors.Is(err, ErrAllGatewaysExhausted), errors.Is(err, ErrEmptyAsset):
		return "The file could not be retrieved right now. Please try again later."
	case errors.Is(err, ErrQueryFailed):
		return "Could not load data from the network. Please try again later."
	default:
		return "Something went wrong. Please try again later."
	}
}
