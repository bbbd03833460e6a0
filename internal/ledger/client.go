package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"marketsync/internal/errs"
	"marketsync/internal/units"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrContractNotDeployed = errors.New("no contract code at marketplace address")

const defaultConfirmTimeout = 2 * time.Minute

// Client is the single point of contact with the marketplace contract.
// Writes are validated locally, signed by the session, submitted and then
// confirmed through their receipt.
type Client struct {
	logs           *zap.SugaredLogger
	address        common.Address
	contract       Contract
	backend        Backend
	signer         Signer
	confirmTimeout time.Duration
}

func NewClient(logger *zap.SugaredLogger, address common.Address, contract Contract, backend Backend, signer Signer, confirmTimeout time.Duration) *Client {
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirmTimeout
	}
	return &Client{
		logs:           logger,
		address:        address,
		contract:       contract,
		backend:        backend,
		signer:         signer,
		confirmTimeout: confirmTimeout,
	}
}

// Address is the marketplace contract address.
func (c *Client) Address() common.Address {
	return c.address
}

func (c *Client) CreateListing(ctx context.Context, l Listing) (TxResult, error) {
	if err := l.Validate(); err != nil {
		return TxResult{}, errs.Validation(err)
	}
	return c.transact(ctx, "createProduct", nil,
		l.Name, l.Description, l.Category, l.Price, l.URI, l.ThumbnailURI)
}

func (c *Client) UpdateListing(ctx context.Context, id uint64, u ListingUpdate) (TxResult, error) {
	if id == 0 {
		return TxResult{}, errs.Validation(errors.New("id: must be greater than zero"))
	}
	if err := u.Validate(); err != nil {
		return TxResult{}, errs.Validation(err)
	}
	return c.transact(ctx, "updateProduct", nil,
		new(big.Int).SetUint64(id), u.Name, u.Description, u.Category, u.Price)
}

func (c *Client) UpdateListingMedia(ctx context.Context, id uint64, uri, thumbnailURI string) (TxResult, error) {
	switch {
	case id == 0:
		return TxResult{}, errs.Validation(errors.New("id: must be greater than zero"))
	case strings.TrimSpace(uri) == "":
		return TxResult{}, errs.Validation(errors.New("uri: cannot be blank"))
	case strings.TrimSpace(thumbnailURI) == "":
		return TxResult{}, errs.Validation(errors.New("thumbnailUri: cannot be blank"))
	}
	return c.transact(ctx, "updateProductMedia", nil, new(big.Int).SetUint64(id), uri, thumbnailURI)
}

// Purchase buys product id for exactly price. The current on-chain price is
// read first; if it differs nothing is submitted.
func (c *Client) Purchase(ctx context.Context, id uint64, price *big.Int) (TxResult, error) {
	if id == 0 {
		return TxResult{}, errs.Validation(errors.New("id: must be greater than zero"))
	}
	if err := positive(price); err != nil {
		return TxResult{}, errs.Validation(fmt.Errorf("price: %w", err))
	}

	product, err := c.GetOne(ctx, id)
	if err != nil {
		return TxResult{}, fmt.Errorf("re-reading price: %w", err)
	}
	if product.Price.Cmp(price) != 0 {
		c.logs.Warnw("purchase price is stale",
			"product_id", id,
			"offered", price.String(),
			"current", product.Price.String())
		return TxResult{}, fmt.Errorf("%w: offered %s, listing is now %s",
			errs.ErrPriceMismatch, units.FormatDecimal(price), units.FormatDecimal(product.Price))
	}

	owned, err := c.HasUserPurchased(ctx, id, c.signer.Address())
	if err != nil {
		return TxResult{}, fmt.Errorf("checking previous purchase: %w", err)
	}
	if owned {
		return TxResult{}, errs.ErrAlreadyPurchased
	}

	return c.transact(ctx, "purchaseProduct", price, new(big.Int).SetUint64(id))
}

func (c *Client) Pause(ctx context.Context) (TxResult, error) {
	return c.transact(ctx, "pauseMarketplace", nil)
}

func (c *Client) Unpause(ctx context.Context) (TxResult, error) {
	return c.transact(ctx, "unpauseMarketplace", nil)
}

func (c *Client) SetFeeBasisPoints(ctx context.Context, bps uint64) (TxResult, error) {
	if bps > units.BasisPointsDenominator {
		return TxResult{}, errs.Validation(fmt.Errorf("fee: %d basis points exceeds %d", bps, units.BasisPointsDenominator))
	}
	return c.transact(ctx, "setMarketplaceFee", nil, new(big.Int).SetUint64(bps))
}

func (c *Client) WithdrawFees(ctx context.Context) (TxResult, error) {
	return c.transact(ctx, "withdrawFees", nil)
}

func (c *Client) ListAll(ctx context.Context) ([]Product, error) {
	return c.listProducts(ctx, "getAllProducts")
}

func (c *Client) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	if strings.TrimSpace(category) == "" {
		return nil, errs.Validation(errors.New("category: cannot be blank"))
	}
	return c.listProducts(ctx, "getProductsByCategory", category)
}

func (c *Client) ListBySeller(ctx context.Context, seller string) ([]Product, error) {
	if !common.IsHexAddress(seller) {
		return nil, errs.Validation(fmt.Errorf("seller: %q is not an address", seller))
	}
	return c.listProducts(ctx, "getSellerProducts", common.HexToAddress(seller))
}

func (c *Client) GetOne(ctx context.Context, id uint64) (Product, error) {
	if id == 0 {
		return Product{}, errs.Validation(errors.New("id: must be greater than zero"))
	}
	out, err := c.call(ctx, "getProduct", new(big.Int).SetUint64(id))
	if err != nil {
		return Product{}, err
	}
	tuple, err := unpack[productTuple](out, 0)
	if err != nil {
		return Product{}, errs.QueryFailed("getProduct", err)
	}
	return tuple.toProduct(), nil
}

func (c *Client) HasUserPurchased(ctx context.Context, id uint64, user common.Address) (bool, error) {
	out, err := c.call(ctx, "hasUserPurchased", new(big.Int).SetUint64(id), user)
	if err != nil {
		return false, err
	}
	owned, err := unpack[bool](out, 0)
	if err != nil {
		return false, errs.QueryFailed("hasUserPurchased", err)
	}
	return owned, nil
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	out, err := c.call(ctx, "getMarketplaceStats")
	if err != nil {
		return Stats{}, err
	}
	values := make([]*big.Int, 4)
	for i := range values {
		if values[i], err = unpack[*big.Int](out, i); err != nil {
			return Stats{}, errs.QueryFailed("getMarketplaceStats", err)
		}
	}
	return Stats{
		TotalProducts:      nonNil(values[0]),
		TotalSales:         nonNil(values[1]),
		TotalFeesCollected: nonNil(values[2]),
		FeeBasisPoints:     nonNil(values[3]),
	}, nil
}

// FeeBasisPoints is the marketplace fee currently charged on every sale.
func (c *Client) FeeBasisPoints(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, "marketplaceFeePercent")
	if err != nil {
		return 0, err
	}
	fee, err := unpack[*big.Int](out, 0)
	if err != nil || fee == nil || !fee.IsUint64() {
		return 0, errs.QueryFailed("marketplaceFeePercent", fmt.Errorf("unexpected fee %v: %w", fee, err))
	}
	return fee.Uint64(), nil
}

func (c *Client) IsPaused(ctx context.Context) (bool, error) {
	out, err := c.call(ctx, "paused")
	if err != nil {
		return false, err
	}
	paused, err := unpack[bool](out, 0)
	if err != nil {
		return false, errs.QueryFailed("paused", err)
	}
	return paused, nil
}

func (c *Client) Owner(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, "owner")
	if err != nil {
		return common.Address{}, err
	}
	owner, err := unpack[common.Address](out, 0)
	if err != nil {
		return common.Address{}, errs.QueryFailed("owner", err)
	}
	return owner, nil
}

// Verify checks that the configured address hosts a marketplace: code is
// deployed and the product count, owner and fee are all readable.
func (c *Client) Verify(ctx context.Context) error {
	code, err := c.backend.CodeAt(ctx, c.address, nil)
	if err != nil {
		return errs.QueryFailed("code", err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%s: %w", c.address.Hex(), ErrContractNotDeployed)
	}

	for _, method := range []string{"productCount", "owner", "marketplaceFeePercent"} {
		if _, err := c.call(ctx, method); err != nil {
			return fmt.Errorf("verifying contract: %w", err)
		}
	}
	return nil
}

func (c *Client) listProducts(ctx context.Context, method string, params ...interface{}) ([]Product, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	tuples, err := unpack[[]productTuple](out, 0)
	if err != nil {
		return nil, errs.QueryFailed(method, err)
	}
	products := make([]Product, 0, len(tuples))
	for _, t := range tuples {
		products = append(products, t.toProduct())
	}
	return products, nil
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	opts := &bind.CallOpts{Context: ctx}
	if c.signer != nil {
		opts.From = c.signer.Address()
	}

	var out []interface{}
	if err := c.contract.Call(opts, &out, method, params...); err != nil {
		c.logs.Errorw("contract call failed", "method", method, "error", err)
		return nil, errs.QueryFailed(method, errs.Translate(err))
	}
	return out, nil
}

func (c *Client) transact(ctx context.Context, method string, value *big.Int, params ...interface{}) (TxResult, error) {
	opts, err := c.signer.TransactOpts(ctx, value)
	if err != nil {
		return TxResult{}, fmt.Errorf("%s: %w", method, errs.Translate(err))
	}

	tx, err := c.contract.Transact(opts, method, params...)
	if err != nil {
		c.logs.Errorw("transaction rejected before submission", "method", method, "error", err)
		return TxResult{}, fmt.Errorf("%s: %w", method, errs.Translate(err))
	}
	c.logs.Infow("transaction submitted", "method", method, "tx_hash", tx.Hash().Hex())

	waitCtx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.backend, tx)
	if err != nil {
		return TxResult{Hash: tx.Hash()}, fmt.Errorf("%s: waiting for receipt of %s: %w", method, tx.Hash().Hex(), err)
	}
	if receipt == nil {
		return TxResult{Hash: tx.Hash()}, fmt.Errorf("%s: no receipt for %s", method, tx.Hash().Hex())
	}

	result := TxResult{Hash: tx.Hash()}
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		c.logs.Errorw("transaction reverted", "method", method, "tx_hash", tx.Hash().Hex(), "block", result.BlockNumber)
		return result, fmt.Errorf("%s: %w", method, &errs.RevertError{})
	}

	for _, l := range receipt.Logs {
		if l == nil || l.Address != c.address {
			continue
		}
		if ev, err := DecodeEvent(*l); err == nil {
			if created, ok := ev.(ProductCreated); ok {
				result.ProductID = created.ProductID
			}
		}
	}

	c.logs.Infow("transaction confirmed", "method", method, "tx_hash", tx.Hash().Hex(), "block", result.BlockNumber)
	return result, nil
}

func unpack[T any](out []interface{}, i int) (v T, err error) {
	if i >= len(out) {
		return v, fmt.Errorf("missing output %d", i)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converting output %d: %v", i, r)
		}
	}()
	return *abi.ConvertType(out[i], new(T)).(*T), nil
}
