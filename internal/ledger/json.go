package ledger

import (
	"encoding/json"
	"math/big"
	"time"

	"marketsync/internal/units"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Amounts go over the wire as base-10 strings in the smallest unit, next to
// a formatted decimal. JSON numbers would round them in most clients.

type productJSON struct {
	ID           uint64           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	Price        *math.Decimal256 `json:"price"`
	PriceDecimal string           `json:"priceDecimal"`
	Seller       common.Address   `json:"seller"`
	SalesCount   *math.Decimal256 `json:"salesCount"`
	URI          string           `json:"uri"`
	ThumbnailURI string           `json:"thumbnailUri"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Price:        decimal(p.Price),
		PriceDecimal: units.FormatDecimal(p.Price),
		Seller:       p.Seller,
		SalesCount:   decimal(p.SalesCount),
		URI:          p.URI,
		ThumbnailURI: p.ThumbnailURI,
	})
}

func (p *Product) UnmarshalJSON(input []byte) error {
	var dec productJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*p = Product{
		ID:           dec.ID,
		Name:         dec.Name,
		Description:  dec.Description,
		Category:     dec.Category,
		Price:        (*big.Int)(dec.Price),
		Seller:       dec.Seller,
		SalesCount:   (*big.Int)(dec.SalesCount),
		URI:          dec.URI,
		ThumbnailURI: dec.ThumbnailURI,
	}
	return nil
}

type statsJSON struct {
	TotalProducts             *math.Decimal256 `json:"totalProducts"`
	TotalSales                *math.Decimal256 `json:"totalSales"`
	TotalFeesCollected        *math.Decimal256 `json:"totalFeesCollected"`
	TotalFeesCollectedDecimal string           `json:"totalFeesCollectedDecimal"`
	FeeBasisPoints            *math.Decimal256 `json:"feeBasisPoints"`
}

func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(statsJSON{
		TotalProducts:             decimal(s.TotalProducts),
		TotalSales:                decimal(s.TotalSales),
		TotalFeesCollected:        decimal(s.TotalFeesCollected),
		TotalFeesCollectedDecimal: units.FormatDecimal(s.TotalFeesCollected),
		FeeBasisPoints:            decimal(s.FeeBasisPoints),
	})
}

func (s *Stats) UnmarshalJSON(input []byte) error {
	var dec statsJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*s = Stats{
		TotalProducts:      (*big.Int)(dec.TotalProducts),
		TotalSales:         (*big.Int)(dec.TotalSales),
		TotalFeesCollected: (*big.Int)(dec.TotalFeesCollected),
		FeeBasisPoints:     (*big.Int)(dec.FeeBasisPoints),
	}
	return nil
}

type purchaseEventJSON struct {
	ProductID      uint64           `json:"productId"`
	Buyer          common.Address   `json:"buyer"`
	Seller         common.Address   `json:"seller"`
	Amount         *math.Decimal256 `json:"amount"`
	AmountDecimal  string           `json:"amountDecimal"`
	TxHash         common.Hash      `json:"transactionHash"`
	BlockNumber    uint64           `json:"blockNumber"`
	BlockTimestamp time.Time        `json:"blockTimestamp"`
}

func (e PurchaseEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(purchaseEventJSON{
		ProductID:      e.ProductID,
		Buyer:          e.Buyer,
		Seller:         e.Seller,
		Amount:         decimal(e.Amount),
		AmountDecimal:  units.FormatDecimal(e.Amount),
		TxHash:         e.TxHash,
		BlockNumber:    e.BlockNumber,
		BlockTimestamp: e.BlockTimestamp,
	})
}

func (e *PurchaseEvent) UnmarshalJSON(input []byte) error {
	var dec purchaseEventJSON
	if err := json.Unmarshal(input, &dec); err != nil {
		return err
	}
	*e = PurchaseEvent{
		ProductID:      dec.ProductID,
		Buyer:          dec.Buyer,
		Seller:         dec.Seller,
		Amount:         (*big.Int)(dec.Amount),
		TxHash:         dec.TxHash,
		BlockNumber:    dec.BlockNumber,
		BlockTimestamp: dec.BlockTimestamp,
	}
	return nil
}

// Decimal wraps v for text encoding as a base-10 string. nil encodes as "0".
func Decimal(v *big.Int) *math.Decimal256 {
	return decimal(v)
}

func decimal(v *big.Int) *math.Decimal256 {
	return (*math.Decimal256)(nonNil(v))
}
