package repository

import (
	"time"

	"marketsync/internal/ledger"
)

// PaymentEvent is one purchase as seen by an account's history. A purchase
// is identified by its transaction hash and product id.
type PaymentEvent struct {
	ID          uint      `gorm:"primaryKey"`
	TxHash      string    `gorm:"size:66;not null;uniqueIndex:idx_payment_tx_product"` // 0x + 64 hex chars
	ProductID   uint64    `gorm:"not null;uniqueIndex:idx_payment_tx_product"`
	ProductName string    `gorm:"size:255"`
	Buyer       string    `gorm:"size:42;not null;index"` // checksummed address
	Seller      string    `gorm:"size:42;not null;index"`
	Amount      string    `gorm:"size:100;not null"` // smallest unit, decimal string
	BlockNumber uint64    `gorm:"not null;index"`
	BlockTime   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func NewPaymentEvent(ev ledger.PurchaseEvent, productName string) PaymentEvent {
	amount := "0"
	if ev.Amount != nil {
		amount = ev.Amount.String()
	}
	return PaymentEvent{
		TxHash:      ev.TxHash.Hex(),
		ProductID:   ev.ProductID,
		ProductName: productName,
		Buyer:       ev.Buyer.Hex(),
		Seller:      ev.Seller.Hex(),
		Amount:      amount,
		BlockNumber: ev.BlockNumber,
		BlockTime:   ev.BlockTimestamp,
	}
}
