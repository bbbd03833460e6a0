package errs_test

import (
	"errors"
	"fmt"

	"marketsync/internal/errs"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type dataError struct {
	msg  string
	data any
}

func (e dataError) Error() string  { return e.msg }
func (e dataError) ErrorData() any { return e.data }

type codedError struct {
	code int
}

func (e codedError) Error() string  { return fmt.Sprintf("rpc error %d", e.code) }
func (e codedError) ErrorCode() int { return e.code }

func encodeRevert(reason string) string {
	stringTy, err := abi.NewType("string", "", nil)
	Expect(err).NotTo(HaveOccurred())
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	Expect(err).NotTo(HaveOccurred())
	selector := []byte{0x08, 0xc3, 0x79, 0xa0}
	return hexutil.Encode(append(selector, packed...))
}

var _ = Describe("Errs", func() {
	Describe("Translate", func() {
		It("passes nil through", func() {
			Expect(errs.Translate(nil)).To(BeNil())
		})

		It("keeps errors that are already classified", func() {
			err := fmt.Errorf("wrapped: %w", errs.ErrPriceMismatch)
			Expect(errs.Translate(err)).To(Equal(err))
		})

		It("detects insufficient funds", func() {
			err := errs.Translate(errors.New("insufficient funds for gas * price + value"))
			Expect(err).To(MatchError(errs.ErrInsufficientFunds))
		})

		It("detects user rejection by rpc code", func() {
			err := errs.Translate(codedError{code: 4001})
			Expect(err).To(MatchError(errs.ErrUserRejected))
		})

		It("detects user rejection by message", func() {
			err := errs.Translate(errors.New("Request denied"))
			Expect(err).To(MatchError(errs.ErrUserRejected))
		})

		It("decodes revert reasons from rpc data", func() {
			err := errs.Translate(dataError{msg: "execution reverted", data: encodeRevert("Cannot buy own product")})
			var revert *errs.RevertError
			Expect(errors.As(err, &revert)).To(BeTrue())
			Expect(revert.Reason).To(Equal("Cannot buy own product"))
			Expect(err).To(MatchError(errs.ErrTransactionReverted))
		})

		It("falls back to the message prefix", func() {
			err := errs.Translate(errors.New("execution reverted: Only seller can update"))
			Expect(err).To(MatchError(errs.ErrTransactionReverted))
			Expect(err).To(MatchError(errs.ErrNotOwner))
			Expect(err.Error()).To(ContainSubstring("Only seller can update"))
		})

		It("classifies paused reverts as temporary", func() {
			err := errs.Translate(errors.New("execution reverted: Pausable: paused"))
			Expect(err).To(MatchError(errs.ErrMarketplacePaused))
			Expect(errs.Temporary(err)).To(BeTrue())
		})

		It("leaves unknown errors untouched", func() {
			raw := errors.New("connection refused")
			Expect(errs.Translate(raw)).To(Equal(raw))
		})
	})

	Describe("Message", func() {
		It("gives every category a distinct message", func() {
			categories := []error{
				errs.ErrValidation,
				errs.ErrInvalidAmount,
				errs.ErrAlreadyPurchased,
				errs.ErrUserRejected,
				errs.ErrInsufficientFunds,
				errs.ErrPriceMismatch,
				errs.ErrTransactionReverted,
				errs.ErrNotOwner,
				errs.ErrMarketplacePaused,
				errs.ErrNoURIProvided,
				errs.ErrAllGatewaysExhausted,
				errs.ErrQueryFailed,
			}
			seen := map[string]error{}
			for _, c := range categories {
				msg := errs.Message(c)
				Expect(msg).NotTo(BeEmpty())
				Expect(seen).NotTo(HaveKey(msg), "duplicate message for %v", c)
				seen[msg] = c
			}
		})

		It("surfaces meaningful revert reasons verbatim", func() {
			Expect(errs.Message(&errs.RevertError{Reason: "Cannot buy own product"})).To(Equal("Cannot buy own product"))
		})

		It("uses a generic text for empty reasons", func() {
			Expect(errs.Message(&errs.RevertError{})).To(Equal(errs.Message(errs.ErrTransactionReverted)))
		})
	})
})
