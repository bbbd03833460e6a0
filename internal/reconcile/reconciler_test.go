package reconcile_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"marketsync/internal/errs"
	"marketsync/internal/ledger"
	"marketsync/internal/reconcile"
	"marketsync/internal/reconcile/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func purchased(id uint64, seller, buyer common.Address, block uint64) ledger.ProductPurchased {
	return ledger.ProductPurchased{
		ProductID: id,
		Seller:    seller,
		Buyer:     buyer,
		Raw:       types.Log{BlockNumber: block, TxHash: common.BigToHash(new(big.Int).SetUint64(block*100 + id))},
	}
}

var _ = Describe("Reconciler", func() {
	var (
		ctx      context.Context
		chain    *fake.ChainReader
		products *fake.ProductReader
		rec      *reconcile.Reconciler
		testErr  error

		alice common.Address
		bob   common.Address
		carol common.Address
	)

	BeforeEach(func() {
		ctx = context.Background()
		chain = new(fake.ChainReader)
		products = new(fake.ProductReader)
		testErr = errors.New("node unavailable")

		alice = common.HexToAddress("0xA11CE00000000000000000000000000000000001")
		bob = common.HexToAddress("0x00000000000000000000000000000000000B0B02")
		carol = common.HexToAddress("0x00000000000000000000000000000000CA401003")

		chain.LatestBlockReturns(500_000, nil)
		products.GetOneStub = func(_ context.Context, id uint64) (ledger.Product, error) {
			return ledger.Product{ID: id, Name: "product", Price: big.NewInt(int64(id))}, nil
		}

		rec = reconcile.NewReconciler(zap.NewNop().Sugar(), chain, products, reconcile.Config{})
	})

	Describe("PurchasedProductsOf", func() {
		var (
			result reconcile.Purchases
			err    error
			buyer  common.Address
		)

		BeforeEach(func() {
			buyer = alice
			chain.PurchaseLogsReturns([]ledger.ProductPurchased{
				purchased(3, bob, alice, 300_100),
				purchased(1, carol, bob, 300_200),
				purchased(1, carol, alice, 300_300),
				purchased(3, bob, alice, 300_400),
				purchased(2, bob, alice, 300_500),
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = rec.PurchasedProductsOf(ctx, buyer)
		})

		It("returns each bought product once, in first-purchase order", func() {
			Expect(err).NotTo(HaveOccurred())
			ids := []uint64{}
			for _, p := range result.Products {
				ids = append(ids, p.ID)
			}
			Expect(ids).To(Equal([]uint64{3, 1, 2}))
			Expect(products.GetOneCallCount()).To(Equal(3))
		})

		It("scans the default window", func() {
			_, from, to := chain.PurchaseLogsArgsForCall(0)
			Expect(from).To(Equal(uint64(300_000)))
			Expect(to).To(Equal(uint64(500_000)))
			Expect(result.FromBlock).To(Equal(uint64(300_000)))
			Expect(result.ToBlock).To(Equal(uint64(500_000)))
		})

		When("the address is written in another case", func() {
			BeforeEach(func() {
				buyer = common.HexToAddress(strings.ToLower(alice.Hex()))
			})

			It("still matches", func() {
				Expect(result.Products).To(HaveLen(3))
			})
		})

		When("the account bought nothing", func() {
			BeforeEach(func() {
				buyer = common.HexToAddress("0x0000000000000000000000000000000000000fff")
			})

			It("confirms none", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Products).To(BeEmpty())
				Expect(products.GetOneCallCount()).To(BeZero())
			})
		})

		When("the scan fails", func() {
			BeforeEach(func() {
				chain.PurchaseLogsReturns(nil, testErr)
			})

			It("returns an empty result with a query failure", func() {
				Expect(err).To(MatchError(errs.ErrQueryFailed))
				Expect(err).To(MatchError(testErr))
				Expect(result.Products).NotTo(BeNil())
				Expect(result.Products).To(BeEmpty())
			})
		})

		When("a product cannot be hydrated", func() {
			BeforeEach(func() {
				products.GetOneReturnsOnCall(1, ledger.Product{}, testErr)
				products.GetOneStub = nil
			})

			It("fails as a whole", func() {
				Expect(err).To(MatchError(errs.ErrQueryFailed))
				Expect(result.Products).To(BeEmpty())
			})
		})

		When("the chain is younger than the window", func() {
			BeforeEach(func() {
				chain.LatestBlockReturns(1_000, nil)
			})

			It("starts at genesis", func() {
				_, from, _ := chain.PurchaseLogsArgsForCall(0)
				Expect(from).To(BeZero())
			})
		})
	})

	Describe("HasPurchased", func() {
		BeforeEach(func() {
			chain.PurchaseLogsReturns([]ledger.ProductPurchased{
				purchased(4, bob, alice, 400_000),
			}, nil)
		})

		It("agrees with the purchase list", func() {
			owned, err := rec.HasPurchased(ctx, 4, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(BeTrue())

			owned, err = rec.HasPurchased(ctx, 5, alice)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(BeFalse())

			owned, err = rec.HasPurchased(ctx, 4, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(BeFalse())
		})

		It("reports scan failures", func() {
			chain.LatestBlockReturns(0, testErr)
			owned, err := rec.HasPurchased(ctx, 4, alice)
			Expect(err).To(MatchError(errs.ErrQueryFailed))
			Expect(owned).To(BeFalse())
		})
	})

	Describe("SalesOf", func() {
		It("lists the seller's sales in chain order", func() {
			chain.PurchaseLogsReturns([]ledger.ProductPurchased{
				purchased(1, bob, alice, 310_000),
				purchased(2, carol, alice, 320_000),
				purchased(1, bob, carol, 330_000),
			}, nil)

			sales, err := rec.SalesOf(ctx, bob)
			Expect(err).NotTo(HaveOccurred())
			Expect(sales.Sales).To(HaveLen(2))
			Expect(sales.Sales[0].Buyer).To(Equal(alice))
			Expect(sales.Sales[1].Buyer).To(Equal(carol))
			Expect(sales.Sales[1].BlockNumber).To(Equal(uint64(330_000)))
		})
	})

	Describe("History", func() {
		var events []ledger.PurchaseEvent

		BeforeEach(func() {
			events = []ledger.PurchaseEvent{
				{ProductID: 1, Buyer: alice, Seller: bob, Amount: big.NewInt(10), BlockNumber: 495_000, BlockTimestamp: time.Unix(100, 0)},
				{ProductID: 2, Buyer: carol, Seller: bob, Amount: big.NewInt(20), BlockNumber: 496_000, BlockTimestamp: time.Unix(200, 0)},
				{ProductID: 3, Buyer: bob, Seller: alice, Amount: big.NewInt(30), BlockNumber: 497_000, BlockTimestamp: time.Unix(300, 0)},
			}
			chain.PurchaseEventsReturns(events, nil)
		})

		It("returns events involving the account, newest first", func() {
			history, err := rec.History(ctx, alice, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
			Expect(history[0].ProductID).To(Equal(uint64(3)))
			Expect(history[1].ProductID).To(Equal(uint64(1)))

			_, from, to := chain.PurchaseEventsArgsForCall(0)
			Expect(from).To(Equal(uint64(490_000)))
			Expect(to).To(Equal(uint64(500_000)))
		})

		It("honours an explicit lookback", func() {
			_, err := rec.History(ctx, alice, 50)
			Expect(err).NotTo(HaveOccurred())
			_, from, _ := chain.PurchaseEventsArgsForCall(0)
			Expect(from).To(Equal(uint64(499_950)))
		})

		It("keeps what it could load when enrichment partly fails", func() {
			chain.PurchaseEventsReturns(events[:1], testErr)
			history, err := rec.History(ctx, alice, 0)
			Expect(err).To(MatchError(errs.ErrQueryFailed))
			Expect(history).To(HaveLen(1))
		})

		It("returns nothing when the query fails outright", func() {
			chain.PurchaseEventsReturns(nil, testErr)
			history, err := rec.History(ctx, alice, 0)
			Expect(err).To(MatchError(errs.ErrQueryFailed))
			Expect(history).To(BeEmpty())
		})
	})
})
