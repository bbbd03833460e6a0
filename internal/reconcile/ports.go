package reconcile

import (
	"context"

	"marketsync/internal/ledger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	LatestBlock(ctx context.Context) (uint64, error)
	PurchaseLogs(ctx context.Context, from, to uint64) ([]ledger.ProductPurchased, error)
	PurchaseEvents(ctx context.Context, from, to uint64) ([]ledger.PurchaseEvent, error)
}

//counterfeiter:generate -o fake -fake-name ProductReader . ProductReader
type ProductReader interface {
	GetOne(ctx context.Context, id uint64) (ledger.Product, error)
}
