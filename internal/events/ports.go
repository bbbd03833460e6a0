package events

import (
	"context"

	"marketsync/internal/ledger"
	"marketsync/internal/repository"
	"marketsync/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name LogWatcher . LogWatcher
type LogWatcher interface {
	WatchMarketplace(ctx context.Context, sink chan<- types.Log) (event.Subscription, error)
	PurchaseFromLog(ctx context.Context, log types.Log) (ledger.PurchaseEvent, error)
}

//counterfeiter:generate -o fake -fake-name ProductReader . ProductReader
type ProductReader interface {
	GetOne(ctx context.Context, id uint64) (ledger.Product, error)
	FeeBasisPoints(ctx context.Context) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name PaymentStore . PaymentStore
type PaymentStore interface {
	SavePaymentEvents(ctx context.Context, events []repository.PaymentEvent) error
	HasPaymentEvent(ctx context.Context, txHash common.Hash, productID uint64) (bool, error)
}

//counterfeiter:generate -o fake -fake-name WalletState . WalletState
type WalletState interface {
	State() wallet.State
	SubscribeState(ch chan<- wallet.State) event.Subscription
}
