package core

import (
	"encoding/json"
	"math/big"
	"time"

	"marketsync/internal/events"
	"marketsync/internal/ledger"
	"marketsync/internal/units"

	"github.com/ethereum/go-ethereum/common/math"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Operator is the single account allowed to use the write endpoints.
type Operator struct {
	Username     string
	PasswordHash string
	TokenTTL     time.Duration
}

type Config struct {
	Operator    Operator
	DownloadDir string
}

// ProductFilter narrows a listing query. Seller wins over Category; both
// empty lists everything.
type ProductFilter struct {
	Category string
	Seller   string
}

// NewListing is a listing as a user enters it: the price is a decimal
// string and the original filename travels separately from the description.
type NewListing struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	URI          string `json:"uri"`
	ThumbnailURI string `json:"thumbnailUri"`
	Filename     string `json:"filename"`
}

type ListingEdit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
}

// MediaEdit replaces the asset of a listing. A non-empty Filename is written
// into the description marker with a second transaction.
type MediaEdit struct {
	URI          string `json:"uri"`
	ThumbnailURI string `json:"thumbnailUri"`
	Filename     string `json:"filename"`
}

type MediaUpdate struct {
	Media   ledger.TxResult  `json:"media"`
	Details *ledger.TxResult `json:"details,omitempty"`
}

// PaymentStats summarizes the stored payment history of one address. Fees
// are computed with the fee in force now.
type PaymentStats struct {
	Sales          int      `json:"sales"`
	Revenue        *big.Int `json:"revenue"`
	Fees           *big.Int `json:"fees"`
	Net            *big.Int `json:"net"`
	Purchases      int      `json:"purchases"`
	Spent          *big.Int `json:"spent"`
	FeeBasisPoints uint64   `json:"feeBasisPoints"`
}

// MarshalJSON sends the amounts as base-10 strings in the smallest unit with
// formatted decimals alongside.
func (s PaymentStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sales          int              `json:"sales"`
		Revenue        *math.Decimal256 `json:"revenue"`
		RevenueDecimal string           `json:"revenueDecimal"`
		Fees           *math.Decimal256 `json:"fees"`
		FeesDecimal    string           `json:"feesDecimal"`
		Net            *math.Decimal256 `json:"net"`
		NetDecimal     string           `json:"netDecimal"`
		Purchases      int              `json:"purchases"`
		Spent          *math.Decimal256 `json:"spent"`
		SpentDecimal   string           `json:"spentDecimal"`
		FeeBasisPoints uint64           `json:"feeBasisPoints"`
	}{
		Sales:          s.Sales,
		Revenue:        ledger.Decimal(s.Revenue),
		RevenueDecimal: units.FormatDecimal(s.Revenue),
		Fees:           ledger.Decimal(s.Fees),
		FeesDecimal:    units.FormatDecimal(s.Fees),
		Net:            ledger.Decimal(s.Net),
		NetDecimal:     units.FormatDecimal(s.Net),
		Purchases:      s.Purchases,
		Spent:          ledger.Decimal(s.Spent),
		SpentDecimal:   units.FormatDecimal(s.Spent),
		FeeBasisPoints: s.FeeBasisPoints,
	})
}

type Inbox struct {
	Notifications []events.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}
