package reconcile

import (
	"context"
	"fmt"
	"sort"

	"marketsync/internal/errs"
	"marketsync/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	DefaultPurchaseLookback uint64 = 200_000
	DefaultHistoryLookback  uint64 = 10_000
)

// Reconciler answers ownership questions from the purchase log because the
// ledger keeps no per-buyer index. Purchases older than the lookback window
// are not seen.
type Reconciler struct {
	logs     *zap.SugaredLogger
	chain    ChainReader
	products ProductReader
	cfg      Config
}

func NewReconciler(logger *zap.SugaredLogger, chain ChainReader, products ProductReader, cfg Config) *Reconciler {
	if cfg.PurchaseLookback == 0 {
		cfg.PurchaseLookback = DefaultPurchaseLookback
	}
	if cfg.HistoryLookback == 0 {
		cfg.HistoryLookback = DefaultHistoryLookback
	}
	return &Reconciler{
		logs:     logger,
		chain:    chain,
		products: products,
		cfg:      cfg,
	}
}

// PurchasedProductsOf lists the products buyer bought inside the window,
// once each, in the order of their first purchase. A nil error with no
// products means the scan completed and found none.
func (r *Reconciler) PurchasedProductsOf(ctx context.Context, buyer common.Address) (Purchases, error) {
	ids, from, to, err := r.purchasedIDs(ctx, buyer)
	if err != nil {
		return Purchases{Products: []ledger.Product{}}, err
	}

	products := make([]ledger.Product, 0, len(ids))
	for _, id := range ids {
		p, err := r.products.GetOne(ctx, id)
		if err != nil {
			return Purchases{Products: []ledger.Product{}}, errs.QueryFailed(fmt.Sprintf("hydrating product %d", id), err)
		}
		products = append(products, p)
	}

	r.logs.Infow("purchases reconciled",
		"buyer", buyer.Hex(),
		"from_block", from,
		"to_block", to,
		"products", len(products))

	return Purchases{Products: products, FromBlock: from, ToBlock: to}, nil
}

// HasPurchased reports whether buyer bought product id inside the window.
func (r *Reconciler) HasPurchased(ctx context.Context, id uint64, buyer common.Address) (bool, error) {
	ids, _, _, err := r.purchasedIDs(ctx, buyer)
	if err != nil {
		return false, err
	}
	return lo.Contains(ids, id), nil
}

// SalesOf lists every sale of seller inside the window.
func (r *Reconciler) SalesOf(ctx context.Context, seller common.Address) (Sales, error) {
	logs, from, to, err := r.scan(ctx, r.cfg.PurchaseLookback)
	if err != nil {
		return Sales{Sales: []Sale{}}, err
	}

	sold := lo.Filter(logs, func(p ledger.ProductPurchased, _ int) bool {
		return p.Seller == seller
	})
	sales := lo.Map(sold, func(p ledger.ProductPurchased, _ int) Sale {
		return Sale{
			ProductID:   p.ProductID,
			Buyer:       p.Buyer,
			TxHash:      p.Raw.TxHash,
			BlockNumber: p.Raw.BlockNumber,
		}
	})

	return Sales{Sales: sales, FromBlock: from, ToBlock: to}, nil
}

// History returns the enriched purchases account took part in, as buyer or
// seller, newest first. lookback 0 uses the configured history window. When
// some events could not be enriched the rest are returned together with the
// error.
func (r *Reconciler) History(ctx context.Context, account common.Address, lookback uint64) ([]ledger.PurchaseEvent, error) {
	if lookback == 0 {
		lookback = r.cfg.HistoryLookback
	}

	latest, err := r.chain.LatestBlock(ctx)
	if err != nil {
		return []ledger.PurchaseEvent{}, errs.QueryFailed("reading latest block", err)
	}
	from := windowStart(latest, lookback)

	events, err := r.chain.PurchaseEvents(ctx, from, latest)
	if err != nil && len(events) == 0 {
		return []ledger.PurchaseEvent{}, errs.QueryFailed("loading purchase history", err)
	}
	if err != nil {
		r.logs.Warnw("purchase history incomplete", "account", account.Hex(), "error", err)
		err = errs.QueryFailed("loading purchase history", err)
	}

	mine := lo.Filter(events, func(ev ledger.PurchaseEvent, _ int) bool {
		return ev.Buyer == account || ev.Seller == account
	})
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].BlockNumber != mine[j].BlockNumber {
			return mine[i].BlockNumber > mine[j].BlockNumber
		}
		return mine[i].BlockTimestamp.After(mine[j].BlockTimestamp)
	})

	return mine, err
}

func (r *Reconciler) purchasedIDs(ctx context.Context, buyer common.Address) ([]uint64, uint64, uint64, error) {
	logs, from, to, err := r.scan(ctx, r.cfg.PurchaseLookback)
	if err != nil {
		return nil, 0, 0, err
	}

	bought := lo.Filter(logs, func(p ledger.ProductPurchased, _ int) bool {
		return p.Buyer == buyer
	})
	ids := lo.Uniq(lo.Map(bought, func(p ledger.ProductPurchased, _ int) uint64 {
		return p.ProductID
	}))
	return ids, from, to, nil
}

func (r *Reconciler) scan(ctx context.Context, lookback uint64) ([]ledger.ProductPurchased, uint64, uint64, error) {
	latest, err := r.chain.LatestBlock(ctx)
	if err != nil {
		return nil, 0, 0, errs.QueryFailed("reading latest block", err)
	}
	from := windowStart(latest, lookback)

	logs, err := r.chain.PurchaseLogs(ctx, from, latest)
	if err != nil {
		return nil, 0, 0, errs.QueryFailed("scanning purchases", err)
	}
	return logs, from, latest, nil
}

func windowStart(latest, lookback uint64) uint64 {
	if latest <= lookback {
		return 0
	}
	return latest - lookback
}
