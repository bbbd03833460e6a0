package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"marketsync/internal/ledger"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const enrichConcurrency = 8

// NodeService reads marketplace history and live logs from the node.
type NodeService struct {
	logs     *zap.SugaredLogger
	client   EthClient
	contract common.Address
}

func NewNodeService(logger *zap.SugaredLogger, ethClient EthClient, contract common.Address) *NodeService {
	return &NodeService{
		logs:     logger,
		client:   ethClient,
		contract: contract,
	}
}

func (s *NodeService) LatestBlock(ctx context.Context) (uint64, error) {
	n, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching block number: %w", err)
	}
	return n, nil
}

// PurchaseLogs returns the decoded ProductPurchased logs in [from, to], in
// chain order.
func (s *NodeService) PurchaseLogs(ctx context.Context, from, to uint64) ([]ledger.ProductPurchased, error) {
	logs, err := s.client.FilterLogs(ctx, geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{s.contract},
		Topics:    [][]common.Hash{{ledger.TopicProductPurchased}},
	})
	if err != nil {
		return nil, fmt.Errorf("filtering purchase logs %d-%d: %w", from, to, err)
	}

	purchases := make([]ledger.ProductPurchased, 0, len(logs))
	for _, l := range logs {
		if l.Removed {
			continue
		}
		p, err := ledger.DecodePurchase(l)
		if err != nil {
			s.logs.Warnw("skipping undecodable purchase log", "tx_hash", l.TxHash.Hex(), "error", err)
			continue
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

// PurchaseEvents returns purchases in [from, to] enriched with the amount
// paid and the block time. Logs are enriched concurrently; the result keeps
// log order. Events that fail enrichment are left out and their errors are
// joined into the returned error.
func (s *NodeService) PurchaseEvents(ctx context.Context, from, to uint64) ([]ledger.PurchaseEvent, error) {
	purchases, err := s.PurchaseLogs(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resultsChan := make(chan *PurchaseResult, len(purchases))
	times := newBlockTimes(s.client)

	var g errgroup.Group
	g.SetLimit(enrichConcurrency)
	for i, p := range purchases {
		g.Go(func() error {
			ev, err := s.enrich(ctx, p, times)
			if err != nil {
				err = fmt.Errorf("enriching purchase %s: %w", p.Raw.TxHash.Hex(), err)
			}
			resultsChan <- &PurchaseResult{Index: i, Event: ev, Error: err}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(resultsChan)
	}()

	ordered := make([]*ledger.PurchaseEvent, len(purchases))
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		ordered[result.Index] = result.Event
	}

	events := make([]ledger.PurchaseEvent, 0, len(purchases))
	for _, ev := range ordered {
		if ev != nil {
			events = append(events, *ev)
		}
	}

	s.logs.Infow("purchase events loaded", "from", from, "to", to, "count", len(events))
	return events, aggrErr
}

// PurchaseFromLog enriches a single live ProductPurchased log.
func (s *NodeService) PurchaseFromLog(ctx context.Context, l types.Log) (ledger.PurchaseEvent, error) {
	p, err := ledger.DecodePurchase(l)
	if err != nil {
		return ledger.PurchaseEvent{}, err
	}
	ev, err := s.enrich(ctx, p, newBlockTimes(s.client))
	if err != nil {
		return ledger.PurchaseEvent{}, fmt.Errorf("enriching purchase %s: %w", l.TxHash.Hex(), err)
	}
	return *ev, nil
}

// WatchMarketplace streams every creation, update and purchase log of the
// marketplace into sink until the subscription is released.
func (s *NodeService) WatchMarketplace(ctx context.Context, sink chan<- types.Log) (event.Subscription, error) {
	sub, err := s.client.SubscribeFilterLogs(ctx, geth.FilterQuery{
		Addresses: []common.Address{s.contract},
		Topics: [][]common.Hash{{
			ledger.TopicProductCreated,
			ledger.TopicProductUpdated,
			ledger.TopicProductPurchased,
		}},
	}, sink)
	if err != nil {
		return nil, fmt.Errorf("subscribing to marketplace logs: %w", err)
	}
	return sub, nil
}

func (s *NodeService) enrich(ctx context.Context, p ledger.ProductPurchased, times *blockTimes) (*ledger.PurchaseEvent, error) {
	tx, _, err := s.client.TransactionByHash(ctx, p.Raw.TxHash)
	if err != nil {
		return nil, fmt.Errorf("fetching transaction: %w", err)
	}

	ts, err := times.get(ctx, p.Raw.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("fetching block %d: %w", p.Raw.BlockNumber, err)
	}

	return &ledger.PurchaseEvent{
		ProductID:      p.ProductID,
		Buyer:          p.Buyer,
		Seller:         p.Seller,
		Amount:         tx.Value(),
		TxHash:         p.Raw.TxHash,
		BlockNumber:    p.Raw.BlockNumber,
		BlockTimestamp: ts,
	}, nil
}

// blockTimes memoizes header lookups so logs sharing a block cost one call.
type blockTimes struct {
	client EthClient
	mu     sync.Mutex
	seen   map[uint64]time.Time
}

func newBlockTimes(client EthClient) *blockTimes {
	return &blockTimes{client: client, seen: make(map[uint64]time.Time)}
}

func (b *blockTimes) get(ctx context.Context, number uint64) (time.Time, error) {
	b.mu.Lock()
	ts, ok := b.seen[number]
	b.mu.Unlock()
	if ok {
		return ts, nil
	}

	header, err := b.client.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return time.Time{}, err
	}
	ts = time.Unix(int64(header.Time), 0).UTC()

	b.mu.Lock()
	b.seen[number] = ts
	b.mu.Unlock()
	return ts, nil
}
