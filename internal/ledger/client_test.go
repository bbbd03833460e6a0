package ledger_test

import (
	"context"
	"errors"
	"math/big"

	"marketsync/internal/errs"
	"marketsync/internal/ledger"
	"marketsync/internal/ledger/fake"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// productOut has the shape go-ethereum unpacks the Product tuple into.
type productOut struct {
	Id           *big.Int
	Name         string
	Description  string
	Category     string
	Price        *big.Int
	Seller       common.Address
	Uri          string
	ThumbnailUri string
	SalesCount   *big.Int
}

func oneEther() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
}

func createdLog(contract common.Address, id int64, name string, price *big.Int, seller common.Address) *types.Log {
	data, err := ledger.MarketplaceABI.Events[ledger.EventProductCreated].Inputs.NonIndexed().Pack(name, price)
	Expect(err).NotTo(HaveOccurred())
	return &types.Log{
		Address: contract,
		Topics: []common.Hash{
			ledger.TopicProductCreated,
			common.BigToHash(big.NewInt(id)),
			common.BytesToHash(seller.Bytes()),
		},
		Data: data,
	}
}

var _ = Describe("Client", func() {
	var (
		fakeContract *fake.Contract
		fakeBackend  *fake.Backend
		fakeSigner   *fake.Signer
		client       *ledger.Client
		ctx          context.Context

		contractAddr common.Address
		seller       common.Address
		buyer        common.Address
		tx           *types.Transaction
		receipt      *types.Receipt

		listed      productOut
		owned       bool
		callErr     error
		allProducts []productOut
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeContract = new(fake.Contract)
		fakeBackend = new(fake.Backend)
		fakeSigner = new(fake.Signer)

		contractAddr = common.HexToAddress("0x52e244B0aAcB70DD7F1eD68DF7D965BE8f62193A")
		seller = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000b2")

		tx = types.NewTx(&types.LegacyTx{Nonce: 7, Gas: 21000, GasPrice: big.NewInt(1), To: &contractAddr})
		receipt = &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(4242), TxHash: tx.Hash()}

		listed = productOut{
			Id:          big.NewInt(3),
			Name:        "Field recordings",
			Description: "Rain on tin [FILENAME:rain.wav]",
			Category:    "audio",
			Price:       oneEther(),
			Seller:      seller,
			Uri:         "ipfs://bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy",
			SalesCount:  big.NewInt(2),
		}
		owned = false
		callErr = nil
		allProducts = []productOut{listed}

		fakeSigner.AddressReturns(buyer)
		fakeSigner.TransactOptsStub = func(_ context.Context, value *big.Int) (*bind.TransactOpts, error) {
			return &bind.TransactOpts{From: buyer, Value: value}, nil
		}
		fakeContract.TransactReturns(tx, nil)
		fakeBackend.TransactionReceiptStub = func(context.Context, common.Hash) (*types.Receipt, error) {
			return receipt, nil
		}
		fakeBackend.CodeAtReturns([]byte{0x60, 0x80}, nil)

		fakeContract.CallStub = func(_ *bind.CallOpts, results *[]interface{}, method string, _ ...interface{}) error {
			if callErr != nil {
				return callErr
			}
			switch method {
			case "getProduct":
				*results = []interface{}{listed}
			case "hasUserPurchased":
				*results = []interface{}{owned}
			case "getAllProducts", "getProductsByCategory", "getSellerProducts":
				*results = []interface{}{allProducts}
			case "getMarketplaceStats":
				*results = []interface{}{big.NewInt(12), big.NewInt(30), big.NewInt(750), big.NewInt(250)}
			case "marketplaceFeePercent", "productCount":
				*results = []interface{}{big.NewInt(250)}
			case "owner":
				*results = []interface{}{seller}
			case "paused":
				*results = []interface{}{true}
			}
			return nil
		}
	})

	JustBeforeEach(func() {
		client = ledger.NewClient(zap.NewNop().Sugar(), contractAddr, fakeContract, fakeBackend, fakeSigner, 0)
	})

	Describe("CreateListing", func() {
		var (
			listing ledger.Listing
			result  ledger.TxResult
			err     error
		)

		BeforeEach(func() {
			listing = ledger.Listing{
				Name:        "Field recordings",
				Description: "Rain on tin",
				Category:    "audio",
				Price:       oneEther(),
				URI:         "ipfs://bafy",
			}
			receipt.Logs = []*types.Log{createdLog(contractAddr, 9, listing.Name, listing.Price, seller)}
		})

		JustBeforeEach(func() {
			result, err = client.CreateListing(ctx, listing)
		})

		It("submits and reports the created product", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Hash).To(Equal(tx.Hash()))
			Expect(result.BlockNumber).To(Equal(uint64(4242)))
			Expect(result.ProductID).To(Equal(uint64(9)))

			Expect(fakeContract.TransactCallCount()).To(Equal(1))
			_, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("createProduct"))
			Expect(params).To(HaveLen(6))
			Expect(params[3]).To(Equal(oneEther()))
		})

		DescribeTable("rejects bad input before any network call",
			func(mutate func(*ledger.Listing)) {
				mutate(&listing)
				_, err := client.CreateListing(ctx, listing)
				Expect(err).To(MatchError(errs.ErrValidation))
				Expect(fakeSigner.TransactOptsCallCount()).To(Equal(0))
				Expect(fakeContract.TransactCallCount()).To(Equal(0))
			},
			Entry("blank name", func(l *ledger.Listing) { l.Name = "  " }),
			Entry("empty description", func(l *ledger.Listing) { l.Description = "" }),
			Entry("zero price", func(l *ledger.Listing) { l.Price = big.NewInt(0) }),
			Entry("negative price", func(l *ledger.Listing) { l.Price = big.NewInt(-1) }),
			Entry("missing price", func(l *ledger.Listing) { l.Price = nil }),
			Entry("price of 2^256", func(l *ledger.Listing) { l.Price = new(big.Int).Lsh(big.NewInt(1), 256) }),
			Entry("price of 2^256+1", func(l *ledger.Listing) {
				l.Price = new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
			}),
		)

		When("the receipt reports failure", func() {
			BeforeEach(func() {
				receipt.Status = types.ReceiptStatusFailed
			})

			It("returns a revert", func() {
				Expect(err).To(MatchError(errs.ErrTransactionReverted))
				Expect(result.Hash).To(Equal(tx.Hash()))
			})
		})
	})

	Describe("UpdateListing", func() {
		It("translates a non-seller revert", func() {
			fakeContract.TransactReturns(nil, errors.New("execution reverted: Only seller can update"))
			_, err := client.UpdateListing(ctx, 3, ledger.ListingUpdate{
				Name:        "New",
				Description: "Desc",
				Price:       big.NewInt(5),
			})
			Expect(err).To(MatchError(errs.ErrNotOwner))
			Expect(errs.Message(err)).To(Equal("Only the owner can perform this action."))
		})

		It("requires an id", func() {
			_, err := client.UpdateListing(ctx, 0, ledger.ListingUpdate{Name: "a", Description: "b", Price: big.NewInt(1)})
			Expect(err).To(MatchError(errs.ErrValidation))
		})

		It("rejects a price the ledger cannot store without signing", func() {
			_, err := client.UpdateListing(ctx, 3, ledger.ListingUpdate{
				Name:        "New",
				Description: "Desc",
				Price:       new(big.Int).Lsh(big.NewInt(1), 256),
			})
			Expect(err).To(MatchError(errs.ErrValidation))
			Expect(fakeSigner.TransactOptsCallCount()).To(Equal(0))
			Expect(fakeContract.TransactCallCount()).To(Equal(0))
		})
	})

	Describe("UpdateListingMedia", func() {
		It("requires both locators", func() {
			_, err := client.UpdateListingMedia(ctx, 3, "ipfs://x", "")
			Expect(err).To(MatchError(errs.ErrValidation))
			Expect(fakeContract.TransactCallCount()).To(Equal(0))
		})

		It("submits both locators", func() {
			_, err := client.UpdateListingMedia(ctx, 3, "ipfs://x", "ipfs://y")
			Expect(err).NotTo(HaveOccurred())
			_, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("updateProductMedia"))
			Expect(params[1:]).To(Equal([]interface{}{"ipfs://x", "ipfs://y"}))
		})
	})

	Describe("Purchase", func() {
		var (
			price  *big.Int
			result ledger.TxResult
			err    error
		)

		BeforeEach(func() {
			price = oneEther()
		})

		JustBeforeEach(func() {
			result, err = client.Purchase(ctx, 3, price)
		})

		It("pays exactly the listed price", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Hash).To(Equal(tx.Hash()))

			Expect(fakeSigner.TransactOptsCallCount()).To(Equal(1))
			_, value := fakeSigner.TransactOptsArgsForCall(0)
			Expect(value).To(Equal(oneEther()))

			opts, method, params := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("purchaseProduct"))
			Expect(opts.Value).To(Equal(oneEther()))
			Expect(params).To(Equal([]interface{}{big.NewInt(3)}))
		})

		When("the offered price cannot be stored by the ledger", func() {
			BeforeEach(func() {
				price = new(big.Int).Lsh(big.NewInt(1), 256)
			})

			It("fails validation without touching the node", func() {
				Expect(err).To(MatchError(errs.ErrValidation))
				Expect(fakeContract.CallCallCount()).To(Equal(0))
				Expect(fakeContract.TransactCallCount()).To(Equal(0))
			})
		})

		It("re-reads the price before submitting", func() {
			Expect(fakeContract.CallCallCount()).To(BeNumerically(">=", 1))
			_, _, method, _ := fakeContract.CallArgsForCall(0)
			Expect(method).To(Equal("getProduct"))
		})

		When("the listing price moved", func() {
			BeforeEach(func() {
				listed.Price = big.NewInt(100)
				price = big.NewInt(99)
			})

			It("fails without submitting", func() {
				Expect(err).To(MatchError(errs.ErrPriceMismatch))
				Expect(fakeSigner.TransactOptsCallCount()).To(Equal(0))
				Expect(fakeContract.TransactCallCount()).To(Equal(0))
			})
		})

		When("the buyer already owns the product", func() {
			BeforeEach(func() {
				owned = true
			})

			It("refuses a second purchase", func() {
				Expect(err).To(MatchError(errs.ErrAlreadyPurchased))
				Expect(fakeContract.TransactCallCount()).To(Equal(0))
			})
		})

		When("the price cannot be read", func() {
			BeforeEach(func() {
				callErr = errors.New("502 bad gateway")
			})

			It("reports a query failure", func() {
				Expect(err).To(MatchError(errs.ErrQueryFailed))
				Expect(fakeContract.TransactCallCount()).To(Equal(0))
			})
		})

		When("the balance is too low", func() {
			BeforeEach(func() {
				fakeContract.TransactReturns(nil, errors.New("insufficient funds for gas * price + value: have 1 want 2"))
			})

			It("reports insufficient funds", func() {
				Expect(err).To(MatchError(errs.ErrInsufficientFunds))
			})
		})

		When("the holder declines to sign", func() {
			BeforeEach(func() {
				fakeContract.TransactReturns(nil, errs.ErrUserRejected)
			})

			It("reports a rejection", func() {
				Expect(err).To(MatchError(errs.ErrUserRejected))
			})
		})

		When("the marketplace is paused", func() {
			BeforeEach(func() {
				fakeContract.TransactReturns(nil, errors.New("execution reverted: EnforcedPause()"))
			})

			It("is a temporary revert", func() {
				Expect(err).To(MatchError(errs.ErrTransactionReverted))
				Expect(err).To(MatchError(errs.ErrMarketplacePaused))
				Expect(errs.Temporary(err)).To(BeTrue())
			})
		})

		When("the receipt is not successful", func() {
			BeforeEach(func() {
				receipt.Status = types.ReceiptStatusFailed
			})

			It("never reports success", func() {
				Expect(err).To(MatchError(errs.ErrTransactionReverted))
			})
		})
	})

	Describe("reads", func() {
		It("lists every product", func() {
			products, err := client.ListAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].ID).To(Equal(uint64(3)))
			Expect(products[0].Seller).To(Equal(seller))
			Expect(products[0].Price).To(Equal(oneEther()))
			Expect(products[0].URI).To(Equal(listed.Uri))
		})

		It("treats an empty list as a result", func() {
			allProducts = []productOut{}
			products, err := client.ListByCategory(ctx, "audio")
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(BeEmpty())
		})

		It("validates the seller address", func() {
			_, err := client.ListBySeller(ctx, "0x123")
			Expect(err).To(MatchError(errs.ErrValidation))
			Expect(fakeContract.CallCallCount()).To(Equal(0))
		})

		It("requires a category", func() {
			_, err := client.ListByCategory(ctx, "")
			Expect(err).To(MatchError(errs.ErrValidation))
		})

		It("marks provider failures as query failures", func() {
			callErr = errors.New("dial tcp: i/o timeout")
			_, err := client.ListAll(ctx)
			Expect(err).To(MatchError(errs.ErrQueryFailed))
		})

		It("reads stats, pause state and owner", func() {
			stats, err := client.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.FeeBasisPoints).To(Equal(big.NewInt(250)))
			Expect(stats.TotalSales).To(Equal(big.NewInt(30)))

			paused, err := client.IsPaused(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(paused).To(BeTrue())

			owner, err := client.Owner(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(owner).To(Equal(seller))

			fee, err := client.FeeBasisPoints(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fee).To(Equal(uint64(250)))
		})
	})

	Describe("Verify", func() {
		It("accepts a deployed marketplace", func() {
			Expect(client.Verify(ctx)).To(Succeed())
			Expect(fakeContract.CallCallCount()).To(Equal(3))
		})

		It("rejects an address without code", func() {
			fakeBackend.CodeAtReturns(nil, nil)
			Expect(client.Verify(ctx)).To(MatchError(ledger.ErrContractNotDeployed))
		})
	})

	Describe("admin", func() {
		It("bounds the fee", func() {
			_, err := client.SetFeeBasisPoints(ctx, 10_001)
			Expect(err).To(MatchError(errs.ErrValidation))
		})

		It("surfaces owner gating from the ledger", func() {
			fakeContract.TransactReturns(nil, errors.New("execution reverted: OwnableUnauthorizedAccount(0x00000000000000000000000000000000000000b2)"))
			_, err := client.Pause(ctx)
			Expect(err).To(MatchError(errs.ErrNotOwner))
		})

		It("withdraws fees", func() {
			_, err := client.WithdrawFees(ctx)
			Expect(err).NotTo(HaveOccurred())
			_, method, _ := fakeContract.TransactArgsForCall(0)
			Expect(method).To(Equal("withdrawFees"))
		})
	})
})
