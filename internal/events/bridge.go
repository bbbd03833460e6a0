package events

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"marketsync/internal/ledger"
	"marketsync/internal/repository"
	"marketsync/internal/units"
	"marketsync/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/jpillora/backoff"
	"go.uber.org/zap"
)

const (
	FallbackFeeBasisPoints uint64 = 250
	displayPlaces                 = 4
	logBuffer                     = 64
)

type Config struct {
	TokenSymbol string
	MinBackoff  time.Duration
	MaxBackoff  time.Duration
}

// Bridge turns marketplace logs into notifications and payment history for
// one account at a time.
type Bridge struct {
	logs     *zap.SugaredLogger
	watcher  LogWatcher
	products ProductReader
	store    PaymentStore
	inbox    *Inbox
	cfg      Config

	mu     sync.Mutex
	active *attachment
}

type attachment struct {
	account common.Address
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewBridge(logger *zap.SugaredLogger, watcher LogWatcher, products ProductReader, store PaymentStore, inbox *Inbox, cfg Config) *Bridge {
	if cfg.TokenSymbol == "" {
		cfg.TokenSymbol = "ETH"
	}
	if cfg.MinBackoff <= 0 {
		cfg.MinBackoff = time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = time.Minute
	}
	return &Bridge{
		logs:     logger,
		watcher:  watcher,
		products: products,
		store:    store,
		inbox:    inbox,
		cfg:      cfg,
	}
}

// Attach starts listening on behalf of account. Any previous attachment is
// released first, so at most one subscription is ever live. Unsubscribing
// the returned subscription detaches.
func (b *Bridge) Attach(ctx context.Context, account common.Address) (event.Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()

	sink := make(chan types.Log, logBuffer)
	sub, err := b.watcher.WatchMarketplace(ctx, sink)
	if err != nil {
		return nil, fmt.Errorf("attaching %s: %w", account.Hex(), err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	att := &attachment{account: account, cancel: cancel, done: make(chan struct{})}
	b.active = att
	go b.listen(runCtx, att, sub, sink)

	b.logs.Infow("event bridge attached", "account", account.Hex())

	return event.NewSubscription(func(quit <-chan struct{}) error {
		select {
		case <-quit:
			b.detach(att)
		case <-att.done:
		}
		return nil
	}), nil
}

// Detach releases the live subscription, if any.
func (b *Bridge) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
}

// Attached reports the account currently listened for.
func (b *Bridge) Attached() (common.Address, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == nil {
		return common.Address{}, false
	}
	return b.active.account, true
}

// Run follows the wallet: it attaches on connect, detaches on disconnect and
// detaches for good when ctx ends.
func (b *Bridge) Run(ctx context.Context, w WalletState) error {
	states := make(chan wallet.State, 4)
	sub := w.SubscribeState(states)
	defer sub.Unsubscribe()
	defer b.Detach()

	b.follow(ctx, w.State())
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-sub.Err():
			return err
		case st := <-states:
			b.follow(ctx, st)
		}
	}
}

func (b *Bridge) follow(ctx context.Context, st wallet.State) {
	if !st.Connected {
		b.Detach()
		return
	}
	if current, ok := b.Attached(); ok && current == st.Account {
		return
	}
	if _, err := b.Attach(ctx, st.Account); err != nil {
		b.logs.Errorw("failed to attach event bridge", "account", st.Account.Hex(), "error", err)
	}
}

func (b *Bridge) detach(att *attachment) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == att {
		b.stopLocked()
	}
}

func (b *Bridge) stopLocked() {
	if b.active == nil {
		return
	}
	b.active.cancel()
	<-b.active.done
	b.logs.Infow("event bridge detached", "account", b.active.account.Hex())
	b.active = nil
}

func (b *Bridge) listen(ctx context.Context, att *attachment, sub event.Subscription, sink chan types.Log) {
	defer close(att.done)

	bo := &backoff.Backoff{Min: b.cfg.MinBackoff, Max: b.cfg.MaxBackoff, Factor: 2, Jitter: true}
	for {
		select {
		case <-ctx.Done():
			sub.Unsubscribe()
			return
		case err := <-sub.Err():
			sub.Unsubscribe()
			b.logs.Warnw("marketplace subscription dropped", "account", att.account.Hex(), "error", err)

			var rerr error
			sub, rerr = b.resubscribe(ctx, sink, bo)
			if rerr != nil {
				return
			}
		case l := <-sink:
			b.handle(ctx, att.account, l)
		}
	}
}

// resubscribe retries until the node accepts a subscription again or ctx
// ends. The dropped subscription has already been released.
func (b *Bridge) resubscribe(ctx context.Context, sink chan types.Log, bo *backoff.Backoff) (event.Subscription, error) {
	for {
		wait := bo.Duration()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		sub, err := b.watcher.WatchMarketplace(ctx, sink)
		if err == nil {
			b.logs.Infow("marketplace subscription restored", "attempts", bo.Attempt())
			bo.Reset()
			return sub, nil
		}
		b.logs.Warnw("resubscribe failed; retrying after backoff", "waited", wait, "attempts", bo.Attempt(), "error", err)
	}
}

func (b *Bridge) handle(ctx context.Context, account common.Address, l types.Log) {
	if l.Removed {
		return
	}

	decoded, err := ledger.DecodeEvent(l)
	if err != nil {
		if !errors.Is(err, ledger.ErrUnknownEvent) {
			b.logs.Warnw("undecodable marketplace log", "tx_hash", l.TxHash.Hex(), "error", err)
		}
		return
	}

	switch ev := decoded.(type) {
	case ledger.ProductPurchased:
		b.onPurchase(ctx, account, ev)
	case ledger.ProductCreated:
		if ev.Seller != account {
			return
		}
		b.inbox.Add(Notification{
			Kind:      KindInfo,
			Title:     "Product Listed Successfully",
			Message:   fmt.Sprintf("Your product %q has been listed for %s", ev.Name, b.amount(ev.Price)),
			ProductID: ev.ProductID,
			TxHash:    l.TxHash.Hex(),
		})
	case ledger.ProductUpdated:
		if ev.Seller != account {
			return
		}
		b.inbox.Add(Notification{
			Kind:      KindInfo,
			Title:     "Product Updated",
			Message:   fmt.Sprintf("Your product %q has been updated with a new price of %s", ev.Name, b.amount(ev.Price)),
			ProductID: ev.ProductID,
			TxHash:    l.TxHash.Hex(),
		})
	}
}

func (b *Bridge) onPurchase(ctx context.Context, account common.Address, p ledger.ProductPurchased) {
	isBuyer, isSeller := p.Buyer == account, p.Seller == account
	if !isBuyer && !isSeller {
		return
	}
	if b.handled(ctx, p) {
		b.logs.Debugw("purchase already handled", "tx_hash", p.Raw.TxHash.Hex(), "product_id", p.ProductID)
		return
	}

	name := fmt.Sprintf("#%d", p.ProductID)
	var price *big.Int
	product, err := b.products.GetOne(ctx, p.ProductID)
	if err != nil {
		b.logs.Warnw("could not load purchased product", "product_id", p.ProductID, "error", err)
	} else {
		name, price = product.Name, product.Price
	}

	ev, err := b.watcher.PurchaseFromLog(ctx, p.Raw)
	if err != nil {
		b.logs.Warnw("could not enrich purchase; using listing price", "tx_hash", p.Raw.TxHash.Hex(), "error", err)
		ev = ledger.PurchaseEvent{
			ProductID:      p.ProductID,
			Buyer:          p.Buyer,
			Seller:         p.Seller,
			Amount:         price,
			TxHash:         p.Raw.TxHash,
			BlockNumber:    p.Raw.BlockNumber,
			BlockTimestamp: time.Now().UTC(),
		}
	}

	if isBuyer {
		b.inbox.Add(Notification{
			Kind:      KindSuccess,
			Title:     "Purchase Successful!",
			Message:   fmt.Sprintf("You successfully purchased %q for %s", name, b.amount(ev.Amount)),
			ProductID: p.ProductID,
			TxHash:    p.Raw.TxHash.Hex(),
		})
	}

	if isSeller {
		bps, err := b.products.FeeBasisPoints(ctx)
		if err != nil {
			b.logs.Warnw("fee unreadable; using fallback", "fallback_bps", FallbackFeeBasisPoints, "error", err)
			bps = FallbackFeeBasisPoints
		}
		b.inbox.Add(Notification{
			Kind:  KindSuccess,
			Title: "New Sale!",
			Message: fmt.Sprintf("Your product %q was purchased for %s. You received %s",
				name, b.amount(ev.Amount), b.amount(units.NetOfFee(ev.Amount, bps))),
			ProductID: p.ProductID,
			TxHash:    p.Raw.TxHash.Hex(),
		})
	}

	if b.store == nil {
		return
	}
	if err := b.store.SavePaymentEvents(ctx, []repository.PaymentEvent{repository.NewPaymentEvent(ev, name)}); err != nil {
		b.logs.Errorw("failed to store payment event", "tx_hash", p.Raw.TxHash.Hex(), "error", err)
	}
}

// handled reports whether the purchase is already in the payment history,
// as happens when the node redelivers logs after a resubscribe. A failed
// lookup counts as not handled.
func (b *Bridge) handled(ctx context.Context, p ledger.ProductPurchased) bool {
	if b.store == nil {
		return false
	}
	seen, err := b.store.HasPaymentEvent(ctx, p.Raw.TxHash, p.ProductID)
	if err != nil {
		b.logs.Warnw("could not check payment history", "tx_hash", p.Raw.TxHash.Hex(), "error", err)
		return false
	}
	return seen
}

func (b *Bridge) amount(v *big.Int) string {
	s := "0"
	if v != nil {
		s = v.String()
	}
	return units.Display(s, displayPlaces) + " " + b.cfg.TokenSymbol
}
