package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"marketsync/internal/ethereum"
	"marketsync/internal/ethereum/fake"
	"marketsync/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func purchaseLog(contract common.Address, id int64, seller, buyer common.Address, block uint64, tx common.Hash) types.Log {
	return types.Log{
		Address: contract,
		Topics: []common.Hash{
			ledger.TopicProductPurchased,
			common.BigToHash(big.NewInt(id)),
			common.BytesToHash(seller.Bytes()),
			common.BytesToHash(buyer.Bytes()),
		},
		BlockNumber: block,
		TxHash:      tx,
	}
}

var _ = Describe("NodeService", func() {
	var (
		service    *ethereum.NodeService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error

		contract common.Address
		seller   common.Address
		buyer    common.Address
		tx1      *types.Transaction
		tx2      *types.Transaction
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()

		contract = common.HexToAddress("0x52e244B0aAcB70DD7F1eD68DF7D965BE8f62193A")
		seller = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000b2")

		tx1 = types.NewTransaction(0, contract, big.NewInt(1_000), 0, big.NewInt(0), nil)
		tx2 = types.NewTransaction(1, contract, big.NewInt(2_000), 0, big.NewInt(0), nil)

		fakeClient.HeaderByNumberStub = func(_ context.Context, number *big.Int) (*types.Header, error) {
			return &types.Header{Number: number, Time: 1_700_000_000 + number.Uint64()}, nil
		}

		service = ethereum.NewNodeService(zap.NewNop().Sugar(), fakeClient, contract)
	})

	Describe("LatestBlock", func() {
		It("returns the node's head", func() {
			fakeClient.BlockNumberReturns(123, nil)
			n, err := service.LatestBlock(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(uint64(123)))
		})

		It("wraps node errors", func() {
			fakeClient.BlockNumberReturns(0, testErr)
			_, err := service.LatestBlock(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("PurchaseEvents", func() {
		var (
			events []ledger.PurchaseEvent
			err    error
		)

		BeforeEach(func() {
			fakeClient.FilterLogsReturns([]types.Log{
				purchaseLog(contract, 1, seller, buyer, 10, tx1.Hash()),
				purchaseLog(contract, 2, seller, buyer, 11, tx2.Hash()),
			}, nil)
		})

		JustBeforeEach(func() {
			events, err = service.PurchaseEvents(ctx, 5, 20)
		})

		When("all logs are enriched successfully", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == tx1.Hash() {
						return tx1, false, nil
					}
					return tx2, false, nil
				}
			})

			It("returns them in log order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(events).To(HaveLen(2))
				Expect(events[0].ProductID).To(Equal(uint64(1)))
				Expect(events[0].Amount).To(Equal(big.NewInt(1_000)))
				Expect(events[0].Buyer).To(Equal(buyer))
				Expect(events[0].Seller).To(Equal(seller))
				Expect(events[0].BlockTimestamp).To(Equal(time.Unix(1_700_000_010, 0).UTC()))
				Expect(events[1].ProductID).To(Equal(uint64(2)))
				Expect(events[1].Amount).To(Equal(big.NewInt(2_000)))
			})

			It("queries the marketplace purchase topic in range", func() {
				Expect(fakeClient.FilterLogsCallCount()).To(Equal(1))
				_, q := fakeClient.FilterLogsArgsForCall(0)
				Expect(q.FromBlock).To(Equal(big.NewInt(5)))
				Expect(q.ToBlock).To(Equal(big.NewInt(20)))
				Expect(q.Addresses).To(ConsistOf(contract))
				Expect(q.Topics).To(Equal([][]common.Hash{{ledger.TopicProductPurchased}}))
			})
		})

		When("some logs fail to enrich", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					if hash == tx1.Hash() {
						return nil, false, testErr
					}
					return tx2, false, nil
				}
			})

			It("returns partial results with error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring(tx1.Hash().Hex()))
				Expect(events).To(HaveLen(1))
				Expect(events[0].TxHash).To(Equal(tx2.Hash()))
			})
		})

		When("the log query fails", func() {
			BeforeEach(func() {
				fakeClient.FilterLogsReturns(nil, testErr)
			})

			It("returns no events", func() {
				Expect(err).To(MatchError(testErr))
				Expect(events).To(BeEmpty())
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					select {
					case <-ctx.Done():
						return nil, false, ctx.Err()
					case <-time.After(100 * time.Millisecond):
						return tx1, false, nil
					}
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})

	Describe("PurchaseLogs", func() {
		It("skips removed and foreign logs", func() {
			removed := purchaseLog(contract, 3, seller, buyer, 12, tx1.Hash())
			removed.Removed = true
			fakeClient.FilterLogsReturns([]types.Log{
				removed,
				{Topics: []common.Hash{common.HexToHash("0x01")}},
				purchaseLog(contract, 4, seller, buyer, 13, tx2.Hash()),
			}, nil)

			logs, err := service.PurchaseLogs(ctx, 0, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(HaveLen(1))
			Expect(logs[0].ProductID).To(Equal(uint64(4)))
			Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
		})
	})

	Describe("PurchaseFromLog", func() {
		It("enriches a single log", func() {
			fakeClient.TransactionByHashReturns(tx2, false, nil)
			ev, err := service.PurchaseFromLog(ctx, purchaseLog(contract, 7, seller, buyer, 40, tx2.Hash()))
			Expect(err).NotTo(HaveOccurred())
			Expect(ev.ProductID).To(Equal(uint64(7)))
			Expect(ev.Amount).To(Equal(big.NewInt(2_000)))
			Expect(ev.BlockNumber).To(Equal(uint64(40)))
		})
	})

	Describe("WatchMarketplace", func() {
		It("subscribes to all marketplace events", func() {
			fakeClient.SubscribeFilterLogsReturns(event.NewSubscription(func(quit <-chan struct{}) error {
				<-quit
				return nil
			}), nil)

			sink := make(chan types.Log)
			sub, err := service.WatchMarketplace(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			defer sub.Unsubscribe()

			_, q, ch := fakeClient.SubscribeFilterLogsArgsForCall(0)
			Expect(q.Addresses).To(ConsistOf(contract))
			Expect(q.Topics[0]).To(ConsistOf(ledger.TopicProductCreated, ledger.TopicProductUpdated, ledger.TopicProductPurchased))
			Expect(ch).NotTo(BeNil())
		})

		It("reports subscription failures", func() {
			fakeClient.SubscribeFilterLogsReturns(nil, testErr)
			_, err := service.WatchMarketplace(ctx, make(chan types.Log))
			Expect(err).To(MatchError(testErr))
		})
	})
})
