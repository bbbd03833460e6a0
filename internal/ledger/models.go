package ledger

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"marketsync/internal/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jellydator/validation"
)

// Product is a listing as the contract reports it. Prices are in the
// smallest unit.
type Product struct {
	ID           uint64         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Price        *big.Int       `json:"price"`
	Seller       common.Address `json:"seller"`
	SalesCount   *big.Int       `json:"salesCount"`
	URI          string         `json:"uri"`
	ThumbnailURI string         `json:"thumbnailUri"`
}

// Listing is the input for a new product.
type Listing struct {
	Name         string
	Description  string
	Category     string
	Price        *big.Int
	URI          string
	ThumbnailURI string
}

func (l Listing) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&l.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&l.Price, validation.Required, validation.By(positive)),
	)
}

// ListingUpdate carries the seller-editable fields of a product.
type ListingUpdate struct {
	Name        string
	Description string
	Category    string
	Price       *big.Int
}

func (u ListingUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&u.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&u.Price, validation.Required, validation.By(positive)),
	)
}

// Stats mirrors getMarketplaceStats. The fee is in basis points.
type Stats struct {
	TotalProducts      *big.Int `json:"totalProducts"`
	TotalSales         *big.Int `json:"totalSales"`
	TotalFeesCollected *big.Int `json:"totalFeesCollected"`
	FeeBasisPoints     *big.Int `json:"feeBasisPoints"`
}

// TxResult identifies a confirmed transaction. ProductID is set when the
// receipt carried a creation event.
type TxResult struct {
	Hash        common.Hash `json:"hash"`
	BlockNumber uint64      `json:"blockNumber"`
	ProductID   uint64      `json:"productId,omitempty"`
}

type ProductCreated struct {
	ProductID uint64
	Name      string
	Price     *big.Int
	Seller    common.Address
	Raw       types.Log
}

type ProductUpdated struct {
	ProductID uint64
	Name      string
	Price     *big.Int
	Seller    common.Address
	Raw       types.Log
}

type ProductPurchased struct {
	ProductID uint64
	Seller    common.Address
	Buyer     common.Address
	Raw       types.Log
}

// PurchaseEvent is a ProductPurchased log enriched with the value paid and
// the block time.
type PurchaseEvent struct {
	ProductID      uint64         `json:"productId"`
	Buyer          common.Address `json:"buyer"`
	Seller         common.Address `json:"seller"`
	Amount         *big.Int       `json:"amount"`
	TxHash         common.Hash    `json:"transactionHash"`
	BlockNumber    uint64         `json:"blockNumber"`
	BlockTimestamp time.Time      `json:"blockTimestamp"`
}

// productTuple matches the contract's Product struct field by field.
type productTuple struct {
	Id           *big.Int
	Name         string
	Description  string
	Category     string
	Price        *big.Int
	Seller       common.Address
	Uri          string
	ThumbnailUri string
	SalesCount   *big.Int
}

func (t productTuple) toProduct() Product {
	var id uint64
	if t.Id != nil && t.Id.IsUint64() {
		id = t.Id.Uint64()
	}
	return Product{
		ID:           id,
		Name:         t.Name,
		Description:  t.Description,
		Category:     t.Category,
		Price:        nonNil(t.Price),
		Seller:       t.Seller,
		SalesCount:   nonNil(t.SalesCount),
		URI:          t.Uri,
		ThumbnailURI: t.ThumbnailUri,
	}
}

func nonNil(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func positive(value interface{}) error {
	v, _ := value.(*big.Int)
	if v == nil || v.Sign() <= 0 {
		return errors.New("must be greater than zero")
	}
	if !units.InRange(v) {
		return errors.New("must not exceed 2^256-1")
	}
	return nil
}
