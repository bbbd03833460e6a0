package handler

import (
	"context"
	"io"
	"net/http"

	"marketsync/internal/core"
	"marketsync/internal/download"
	"marketsync/internal/events"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/reconcile"

	"github.com/ethereum/go-ethereum/event"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MarketService . MarketService
type MarketService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Products(ctx context.Context, filter core.ProductFilter) ([]ledger.Product, error)
	Product(ctx context.Context, id uint64) (ledger.Product, error)
	CreateListing(ctx context.Context, in core.NewListing) (ledger.TxResult, error)
	UpdateListing(ctx context.Context, id uint64, in core.ListingEdit) (ledger.TxResult, error)
	UpdateListingMedia(ctx context.Context, id uint64, in core.MediaEdit) (core.MediaUpdate, error)
	Purchase(ctx context.Context, id uint64, price string) (ledger.TxResult, error)
	PurchasedProducts(ctx context.Context, buyer string) (reconcile.Purchases, error)
	HasPurchased(ctx context.Context, id uint64, buyer string) (bool, error)
	Sales(ctx context.Context, seller string) (reconcile.Sales, error)
	History(ctx context.Context, account string, lookback uint64) ([]ledger.PurchaseEvent, error)
	Stats(ctx context.Context) (ledger.Stats, error)
	PaymentStats(ctx context.Context, account string) (core.PaymentStats, error)
	Download(ctx context.Context, id uint64, dir string) (download.Result, error)
	PinAsset(ctx context.Context, name string, content io.Reader) (pinning.PinResult, error)
	Notifications() core.Inbox
	MarkNotificationRead(id string) bool
	MarkAllNotificationsRead()
	DismissNotification(id string) bool
	SubscribeNotifications(ch chan<- events.Notification) event.Subscription
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
