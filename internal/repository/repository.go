package repository

import (
	"context"
	"errors"
	"fmt"

	"marketsync/internal/db"

	"github.com/ethereum/go-ethereum/common"
)

type PaymentRepository struct {
	db Storage
}

func NewPaymentRepository(db Storage) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

func (r *PaymentRepository) Migrate() error {
	err := r.db.MigrateModels(&PaymentEvent{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SavePaymentEvents stores events; ones already stored are ignored.
func (r *PaymentRepository) SavePaymentEvents(ctx context.Context, events []PaymentEvent) error {
	if len(events) == 0 {
		return nil
	}

	err := r.db.SaveToTable(ctx, &events)
	if err != nil {
		return fmt.Errorf("save payment events: %w", err)
	}

	return nil
}

// PaymentEventsOf returns the stored events where address is buyer or
// seller, newest first.
func (r *PaymentRepository) PaymentEventsOf(ctx context.Context, address common.Address) ([]PaymentEvent, error) {
	events := []PaymentEvent{}
	err := r.db.GetAllByAny(ctx, []string{"buyer", "seller"}, address.Hex(), "block_number desc, id desc", &events)
	if err != nil {
		return []PaymentEvent{}, fmt.Errorf("get payment events: %w", err)
	}

	return events, nil
}

// HasPaymentEvent reports whether the purchase of productID in txHash is
// already stored.
func (r *PaymentRepository) HasPaymentEvent(ctx context.Context, txHash common.Hash, productID uint64) (bool, error) {
	var stored PaymentEvent
	err := r.db.GetOneBy(ctx, "tx_hash", txHash.Hex(), &stored)
	if errors.Is(err, db.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get payment event: %w", err)
	}

	return stored.ProductID == productID, nil
}
