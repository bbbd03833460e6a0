package core

import (
	"context"
	"io"
	"math/big"

	"marketsync/internal/download"
	"marketsync/internal/events"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/reconcile"
	"marketsync/internal/repository"
	tokenIssuer "marketsync/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	CreateListing(ctx context.Context, l ledger.Listing) (ledger.TxResult, error)
	UpdateListing(ctx context.Context, id uint64, u ledger.ListingUpdate) (ledger.TxResult, error)
	UpdateListingMedia(ctx context.Context, id uint64, uri, thumbnailURI string) (ledger.TxResult, error)
	Purchase(ctx context.Context, id uint64, price *big.Int) (ledger.TxResult, error)
	ListAll(ctx context.Context) ([]ledger.Product, error)
	ListByCategory(ctx context.Context, category string) ([]ledger.Product, error)
	ListBySeller(ctx context.Context, seller string) ([]ledger.Product, error)
	GetOne(ctx context.Context, id uint64) (ledger.Product, error)
	Stats(ctx context.Context) (ledger.Stats, error)
	FeeBasisPoints(ctx context.Context) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name Reconciler . Reconciler
type Reconciler interface {
	PurchasedProductsOf(ctx context.Context, buyer common.Address) (reconcile.Purchases, error)
	HasPurchased(ctx context.Context, id uint64, buyer common.Address) (bool, error)
	SalesOf(ctx context.Context, seller common.Address) (reconcile.Sales, error)
	History(ctx context.Context, account common.Address, lookback uint64) ([]ledger.PurchaseEvent, error)
}

//counterfeiter:generate -o fake -fake-name Downloader . Downloader
type Downloader interface {
	Download(ctx context.Context, p ledger.Product, dir string) (download.Result, error)
}

//counterfeiter:generate -o fake -fake-name Pinner . Pinner
type Pinner interface {
	PinFile(ctx context.Context, name string, content io.Reader) (pinning.PinResult, error)
}

//counterfeiter:generate -o fake -fake-name PaymentHistory . PaymentHistory
type PaymentHistory interface {
	PaymentEventsOf(ctx context.Context, address common.Address) ([]repository.PaymentEvent, error)
}

//counterfeiter:generate -o fake -fake-name Notifications . Notifications
type Notifications interface {
	List() []events.Notification
	Unread() int
	MarkRead(id string) bool
	MarkAllRead()
	Dismiss(id string) bool
	Subscribe(ch chan<- events.Notification) event.Subscription
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
