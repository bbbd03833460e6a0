package core

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	"marketsync/internal/download"
	"marketsync/internal/errs"
	"marketsync/internal/events"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/reconcile"
	"marketsync/internal/units"
	tokenIssuer "marketsync/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrPinningDisabled error = errors.New("no pinning service configured")

const defaultTokenTTL = 24 * time.Hour

// Marketplace is what the API and the CLI talk to. It holds no state of its
// own beyond configuration.
type Marketplace struct {
	logs       *zap.SugaredLogger
	ledger     Ledger
	reconciler Reconciler
	downloader Downloader
	pinner     Pinner
	history    PaymentHistory
	inbox      Notifications
	jwtIssuer  JWTIssuer
	cfg        Config
}

// NewMarketplace wires the facade. pinner may be nil.
func NewMarketplace(
	logger *zap.SugaredLogger,
	ledger Ledger,
	reconciler Reconciler,
	downloader Downloader,
	pinner Pinner,
	history PaymentHistory,
	inbox Notifications,
	jwt JWTIssuer,
	cfg Config,
) *Marketplace {
	if cfg.Operator.TokenTTL <= 0 {
		cfg.Operator.TokenTTL = defaultTokenTTL
	}
	return &Marketplace{
		logs:       logger,
		ledger:     ledger,
		reconciler: reconciler,
		downloader: downloader,
		pinner:     pinner,
		history:    history,
		inbox:      inbox,
		jwtIssuer:  jwt,
		cfg:        cfg,
	}
}

// Authenticate checks the credentials against the configured operator and
// issues a signed token on success.
func (m *Marketplace) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	op := m.cfg.Operator
	if op.Username == "" || subtle.ConstantTimeCompare([]byte(op.Username), []byte(msg.Username)) != 1 {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   op.Username,
		Subject:    op.Username,
		Expiration: op.TokenTTL,
	}
	token := m.jwtIssuer.Generate(tokenInfo)
	signed, err := m.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	m.logs.Infow("operator authenticated", "username", op.Username)
	return signed, nil
}

// VerifyToken validates a bearer token and returns its subject.
func (m *Marketplace) VerifyToken(token string) (string, error) {
	claims, err := m.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", tokenIssuer.ErrTokenNotValid
	}
	return sub, nil
}

func (m *Marketplace) Products(ctx context.Context, filter ProductFilter) ([]ledger.Product, error) {
	var (
		products []ledger.Product
		err      error
	)
	switch {
	case strings.TrimSpace(filter.Seller) != "":
		products, err = m.ledger.ListBySeller(ctx, filter.Seller)
	case strings.TrimSpace(filter.Category) != "":
		products, err = m.ledger.ListByCategory(ctx, filter.Category)
	default:
		products, err = m.ledger.ListAll(ctx)
	}
	if err != nil {
		return []ledger.Product{}, fmt.Errorf("listing products: %w", err)
	}
	if products == nil {
		products = []ledger.Product{}
	}
	return products, nil
}

func (m *Marketplace) Product(ctx context.Context, id uint64) (ledger.Product, error) {
	p, err := m.ledger.GetOne(ctx, id)
	if err != nil {
		return ledger.Product{}, fmt.Errorf("getting product %d: %w", id, err)
	}
	return p, nil
}

// CreateListing converts the decimal price and appends the filename marker
// before submitting.
func (m *Marketplace) CreateListing(ctx context.Context, in NewListing) (ledger.TxResult, error) {
	price, err := units.ParseDecimal(in.Price)
	if err != nil {
		return ledger.TxResult{}, err
	}

	res, err := m.ledger.CreateListing(ctx, ledger.Listing{
		Name:         strings.TrimSpace(in.Name),
		Description:  download.WithFilenameMarker(in.Description, in.Filename),
		Category:     strings.TrimSpace(in.Category),
		Price:        price,
		URI:          strings.TrimSpace(in.URI),
		ThumbnailURI: strings.TrimSpace(in.ThumbnailURI),
	})
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("creating listing: %w", err)
	}

	m.logs.Infow("listing created", "product_id", res.ProductID, "tx_hash", res.Hash.Hex())
	return res, nil
}

// UpdateListing keeps the filename marker of the current description when
// the edit does not carry one.
func (m *Marketplace) UpdateListing(ctx context.Context, id uint64, in ListingEdit) (ledger.TxResult, error) {
	price, err := units.ParseDecimal(in.Price)
	if err != nil {
		return ledger.TxResult{}, err
	}

	current, err := m.ledger.GetOne(ctx, id)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("loading product %d: %w", id, err)
	}

	res, err := m.ledger.UpdateListing(ctx, id, ledger.ListingUpdate{
		Name:        strings.TrimSpace(in.Name),
		Description: download.PreserveFilenameMarker(current.Description, in.Description),
		Category:    strings.TrimSpace(in.Category),
		Price:       price,
	})
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("updating listing %d: %w", id, err)
	}

	m.logs.Infow("listing updated", "product_id", id, "tx_hash", res.Hash.Hex())
	return res, nil
}

// UpdateListingMedia swaps the asset of a listing. When the new asset comes
// with a filename that differs from the recorded one, the description marker
// is rewritten as well.
func (m *Marketplace) UpdateListingMedia(ctx context.Context, id uint64, in MediaEdit) (MediaUpdate, error) {
	current, err := m.ledger.GetOne(ctx, id)
	if err != nil {
		return MediaUpdate{}, fmt.Errorf("loading product %d: %w", id, err)
	}

	media, err := m.ledger.UpdateListingMedia(ctx, id, strings.TrimSpace(in.URI), strings.TrimSpace(in.ThumbnailURI))
	if err != nil {
		return MediaUpdate{}, fmt.Errorf("updating media of %d: %w", id, err)
	}
	out := MediaUpdate{Media: media}

	name := strings.TrimSpace(in.Filename)
	if name == "" || name == download.ExtractOriginalFilename(current.Description) {
		return out, nil
	}

	details, err := m.ledger.UpdateListing(ctx, id, ledger.ListingUpdate{
		Name:        current.Name,
		Description: download.WithFilenameMarker(current.Description, name),
		Category:    current.Category,
		Price:       current.Price,
	})
	if err != nil {
		return out, fmt.Errorf("recording filename of %d: %w", id, err)
	}
	out.Details = &details

	m.logs.Infow("listing media updated", "product_id", id, "filename", name)
	return out, nil
}

// Purchase buys id at the decimal price the user confirmed.
func (m *Marketplace) Purchase(ctx context.Context, id uint64, price string) (ledger.TxResult, error) {
	amount, err := units.ParseDecimal(price)
	if err != nil {
		return ledger.TxResult{}, err
	}

	res, err := m.ledger.Purchase(ctx, id, amount)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("purchasing %d: %w", id, err)
	}

	m.logs.Infow("product purchased", "product_id", id, "tx_hash", res.Hash.Hex(), "block", res.BlockNumber)
	return res, nil
}

func (m *Marketplace) PurchasedProducts(ctx context.Context, buyer string) (reconcile.Purchases, error) {
	addr, err := parseAddress(buyer)
	if err != nil {
		return reconcile.Purchases{Products: []ledger.Product{}}, err
	}
	return m.reconciler.PurchasedProductsOf(ctx, addr)
}

func (m *Marketplace) HasPurchased(ctx context.Context, id uint64, buyer string) (bool, error) {
	addr, err := parseAddress(buyer)
	if err != nil {
		return false, err
	}
	return m.reconciler.HasPurchased(ctx, id, addr)
}

func (m *Marketplace) Sales(ctx context.Context, seller string) (reconcile.Sales, error) {
	addr, err := parseAddress(seller)
	if err != nil {
		return reconcile.Sales{Sales: []reconcile.Sale{}}, err
	}
	return m.reconciler.SalesOf(ctx, addr)
}

// History is the on-chain payment history of account. lookback 0 uses the
// configured window.
func (m *Marketplace) History(ctx context.Context, account string, lookback uint64) ([]ledger.PurchaseEvent, error) {
	addr, err := parseAddress(account)
	if err != nil {
		return []ledger.PurchaseEvent{}, err
	}
	return m.reconciler.History(ctx, addr, lookback)
}

func (m *Marketplace) Stats(ctx context.Context) (ledger.Stats, error) {
	stats, err := m.ledger.Stats(ctx)
	if err != nil {
		return ledger.Stats{}, fmt.Errorf("marketplace stats: %w", err)
	}
	return stats, nil
}

// PaymentStats totals the stored payments of account on both sides.
func (m *Marketplace) PaymentStats(ctx context.Context, account string) (PaymentStats, error) {
	addr, err := parseAddress(account)
	if err != nil {
		return PaymentStats{}, err
	}

	payments, err := m.history.PaymentEventsOf(ctx, addr)
	if err != nil {
		return PaymentStats{}, errs.QueryFailed("loading payment history", err)
	}

	bps, err := m.ledger.FeeBasisPoints(ctx)
	if err != nil {
		m.logs.Warnw("fee unreadable; using fallback", "fallback_bps", events.FallbackFeeBasisPoints, "error", err)
		bps = events.FallbackFeeBasisPoints
	}

	stats := PaymentStats{
		Revenue:        new(big.Int),
		Fees:           new(big.Int),
		Net:            new(big.Int),
		Spent:          new(big.Int),
		FeeBasisPoints: bps,
	}
	for _, p := range payments {
		amount, err := units.ParseInteger(p.Amount)
		if err != nil {
			m.logs.Warnw("skipping stored payment with bad amount", "tx_hash", p.TxHash, "amount", p.Amount)
			continue
		}
		if common.HexToAddress(p.Seller) == addr {
			stats.Sales++
			stats.Revenue.Add(stats.Revenue, amount)
			stats.Fees.Add(stats.Fees, units.Fee(amount, bps))
		}
		if common.HexToAddress(p.Buyer) == addr {
			stats.Purchases++
			stats.Spent.Add(stats.Spent, amount)
		}
	}
	stats.Net.Sub(stats.Revenue, stats.Fees)

	return stats, nil
}

// Download saves the asset of product id into the configured directory, or
// into dir when it is set.
func (m *Marketplace) Download(ctx context.Context, id uint64, dir string) (download.Result, error) {
	p, err := m.ledger.GetOne(ctx, id)
	if err != nil {
		return download.Result{}, fmt.Errorf("getting product %d: %w", id, err)
	}
	if dir == "" {
		dir = m.cfg.DownloadDir
	}
	return m.downloader.Download(ctx, p, dir)
}

// PinAsset uploads a file to the pinning service so its URI can be listed.
func (m *Marketplace) PinAsset(ctx context.Context, name string, content io.Reader) (pinning.PinResult, error) {
	if m.pinner == nil {
		return pinning.PinResult{}, ErrPinningDisabled
	}
	res, err := m.pinner.PinFile(ctx, name, content)
	if err != nil {
		return pinning.PinResult{}, fmt.Errorf("pinning %q: %w", name, err)
	}
	return res, nil
}

func (m *Marketplace) Notifications() Inbox {
	return Inbox{Notifications: m.inbox.List(), Unread: m.inbox.Unread()}
}

func (m *Marketplace) MarkNotificationRead(id string) bool {
	return m.inbox.MarkRead(id)
}

func (m *Marketplace) MarkAllNotificationsRead() {
	m.inbox.MarkAllRead()
}

func (m *Marketplace) DismissNotification(id string) bool {
	return m.inbox.Dismiss(id)
}

// SubscribeNotifications delivers notifications added after the call.
func (m *Marketplace) SubscribeNotifications(ch chan<- events.Notification) event.Subscription {
	return m.inbox.Subscribe(ch)
}

func parseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, errs.Validation(fmt.Errorf("address: %q is not an address", s))
	}
	return common.HexToAddress(s), nil
}
