package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

const (
	codeUserRejected = 4001
	revertPrefix     = "execution reverted"
)

// Translate maps a chain or signer failure onto the taxonomy. Errors that
// already belong to it pass through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrUserRejected) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrPriceMismatch) ||
		errors.Is(err, ErrTransactionReverted) {
		return err
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeUserRejected {
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "insufficient funds"):
		return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
	case strings.Contains(msg, "user rejected"),
		strings.Contains(msg, "user denied"),
		strings.Contains(msg, "request denied"):
		return fmt.Errorf("%w: %w", ErrUserRejected, err)
	}

	if reason, ok := revertReason(err); ok {
		return &RevertError{Reason: reason}
	}

	return err
}

// revertReason digs the human readable reason out of a revert, first from
// the RPC error data, then from the "execution reverted: ..." message.
func revertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			if raw, decErr := hexutil.Decode(data); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return reason, true
				}
			}
		}
	}

	msg := err.Error()
	idx := strings.Index(strings.ToLower(msg), revertPrefix)
	if idx < 0 {
		return "", false
	}

	reason := strings.TrimSpace(msg[idx+len(revertPrefix):])
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
	return reason, true
}
