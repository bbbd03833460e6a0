package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"time"

	"marketsync/internal/core"
	"marketsync/internal/core/fake"
	"marketsync/internal/download"
	"marketsync/internal/errs"
	"marketsync/internal/events"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/reconcile"
	"marketsync/internal/repository"
	tokenIssuer "marketsync/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Marketplace", func() {
	var (
		fakeLedger     *fake.Ledger
		fakeReconciler *fake.Reconciler
		fakeDownloader *fake.Downloader
		fakePinner     *fake.Pinner
		fakeHistory    *fake.PaymentHistory
		fakeInbox      *fake.Notifications
		fakeJWT        *fake.JWTIssuer
		fakeLogger     *zap.SugaredLogger
		ctx            context.Context
		cfg            core.Config

		market *core.Marketplace

		fakeErr error
		seller  common.Address
		buyer   common.Address
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeReconciler = new(fake.Reconciler)
		fakeDownloader = new(fake.Downloader)
		fakePinner = new(fake.Pinner)
		fakeHistory = new(fake.PaymentHistory)
		fakeInbox = new(fake.Notifications)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		hash, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		cfg = core.Config{
			Operator:    core.Operator{Username: "operator", PasswordHash: string(hash), TokenTTL: time.Hour},
			DownloadDir: "/var/lib/marketsync",
		}

		fakeErr = errors.New("fake error")
		seller = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		buyer = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	})

	JustBeforeEach(func() {
		market = core.NewMarketplace(fakeLogger, fakeLedger, fakeReconciler, fakeDownloader,
			fakePinner, fakeHistory, fakeInbox, fakeJWT, cfg)
	})

	Describe("Authenticate", func() {
		var (
			authMsg  core.AuthMessage
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)
			authMsg = core.AuthMessage{Username: "operator", Password: "testpass"}
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			token, err = market.Authenticate(ctx, authMsg)
		})

		When("the credentials match the operator", func() {
			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
			})

			It("should issue the token for the operator", func() {
				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					UserName:   "operator",
					Subject:    "operator",
					Expiration: time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the username is unknown", func() {
			BeforeEach(func() {
				authMsg.Username = "someone"
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeJWT.GenerateCallCount()).To(BeZero())
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				authMsg.Password = "nope"
			})

			It("should return ErrIncorrectPassword", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("no operator is configured", func() {
			BeforeEach(func() {
				cfg.Operator = core.Operator{}
				authMsg.Username = ""
			})

			It("should reject everyone", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
			})
		})
	})

	Describe("VerifyToken", func() {
		It("returns the subject of a valid token", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "operator"}, nil)
			sub, err := market.VerifyToken("t")
			Expect(err).NotTo(HaveOccurred())
			Expect(sub).To(Equal("operator"))
		})

		It("rejects tokens without a subject", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)
			_, err := market.VerifyToken("t")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("passes validation errors on", func() {
			fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			_, err := market.VerifyToken("t")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})
	})

	Describe("Products", func() {
		BeforeEach(func() {
			fakeLedger.ListAllReturns([]ledger.Product{{ID: 1}}, nil)
			fakeLedger.ListByCategoryReturns([]ledger.Product{{ID: 2}}, nil)
			fakeLedger.ListBySellerReturns(nil, nil)
		})

		It("lists everything without a filter", func() {
			products, err := market.Products(ctx, core.ProductFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(ConsistOf(ledger.Product{ID: 1}))
		})

		It("filters by category", func() {
			products, err := market.Products(ctx, core.ProductFilter{Category: "audio"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(ConsistOf(ledger.Product{ID: 2}))
			_, category := fakeLedger.ListByCategoryArgsForCall(0)
			Expect(category).To(Equal("audio"))
		})

		It("prefers the seller filter and never returns nil", func() {
			products, err := market.Products(ctx, core.ProductFilter{Category: "audio", Seller: seller.Hex()})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).NotTo(BeNil())
			Expect(products).To(BeEmpty())
			Expect(fakeLedger.ListByCategoryCallCount()).To(BeZero())
		})

		It("wraps ledger failures", func() {
			fakeLedger.ListAllReturns(nil, errs.QueryFailed("getAllProducts", fakeErr))
			products, err := market.Products(ctx, core.ProductFilter{})
			Expect(err).To(MatchError(errs.ErrQueryFailed))
			Expect(products).To(BeEmpty())
		})
	})

	Describe("CreateListing", func() {
		var (
			in  core.NewListing
			res ledger.TxResult
			err error
		)

		BeforeEach(func() {
			in = core.NewListing{
				Name:         " Field recordings ",
				Description:  "Rain on a tin roof",
				Category:     "audio",
				Price:        "0.05",
				URI:          "ipfs://bafkreid7qoywk77r7rj3slobqfekdvs57qwuwh5d2z3sqsw52iabe3mqne",
				ThumbnailURI: "ipfs://bafkreid7qoywk77r7rj3slobqfekdvs57qwuwh5d2z3sqsw52iabe3mqne",
				Filename:     "rain.wav",
			}
			fakeLedger.CreateListingReturns(ledger.TxResult{ProductID: 9}, nil)
		})

		JustBeforeEach(func() {
			res, err = market.CreateListing(ctx, in)
		})

		It("submits the price in the smallest unit with the filename marker", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(res.ProductID).To(Equal(uint64(9)))

			_, listing := fakeLedger.CreateListingArgsForCall(0)
			Expect(listing.Name).To(Equal("Field recordings"))
			Expect(listing.Price).To(Equal(big.NewInt(50_000_000_000_000_000)))
			Expect(listing.Description).To(Equal("Rain on a tin roof\n\n[FILENAME:rain.wav]"))
			Expect(download.ExtractOriginalFilename(listing.Description)).To(Equal("rain.wav"))
		})

		When("the price is not a decimal", func() {
			BeforeEach(func() {
				in.Price = "-1"
			})

			It("should fail before reaching the ledger", func() {
				Expect(err).To(MatchError(errs.ErrInvalidAmount))
				Expect(errors.Is(err, errs.ErrValidation)).To(BeTrue())
				Expect(fakeLedger.CreateListingCallCount()).To(BeZero())
			})
		})

		When("the ledger rejects it", func() {
			BeforeEach(func() {
				fakeLedger.CreateListingReturns(ledger.TxResult{}, errs.ErrUserRejected)
			})

			It("should keep the category of the failure", func() {
				Expect(err).To(MatchError(errs.ErrUserRejected))
			})
		})
	})

	Describe("UpdateListing", func() {
		BeforeEach(func() {
			fakeLedger.GetOneReturns(ledger.Product{
				ID:          4,
				Description: "Old text\n\n[FILENAME:song.mp3]",
			}, nil)
			fakeLedger.UpdateListingReturns(ledger.TxResult{BlockNumber: 10}, nil)
		})

		It("keeps the recorded filename when the edit drops it", func() {
			_, err := market.UpdateListing(ctx, 4, core.ListingEdit{Name: "Song", Description: "New text", Price: "1"})
			Expect(err).NotTo(HaveOccurred())

			_, id, update := fakeLedger.UpdateListingArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			Expect(update.Description).To(Equal("New text\n\n[FILENAME:song.mp3]"))
			Expect(update.Price.String()).To(Equal("1000000000000000000"))
		})

		It("does not submit when the product cannot be read", func() {
			fakeLedger.GetOneReturns(ledger.Product{}, fakeErr)
			_, err := market.UpdateListing(ctx, 4, core.ListingEdit{Name: "Song", Description: "x", Price: "1"})
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeLedger.UpdateListingCallCount()).To(BeZero())
		})
	})

	Describe("UpdateListingMedia", func() {
		var current ledger.Product

		BeforeEach(func() {
			current = ledger.Product{
				ID:          4,
				Name:        "Song",
				Description: "About\n\n[FILENAME:song.mp3]",
				Category:    "audio",
				Price:       big.NewInt(7),
			}
			fakeLedger.GetOneReturns(current, nil)
			fakeLedger.UpdateListingMediaReturns(ledger.TxResult{BlockNumber: 1}, nil)
			fakeLedger.UpdateListingReturns(ledger.TxResult{BlockNumber: 2}, nil)
		})

		It("records a new filename in the description", func() {
			out, err := market.UpdateListingMedia(ctx, 4, core.MediaEdit{URI: "ipfs://a", ThumbnailURI: "ipfs://b", Filename: "song-v2.flac"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Media.BlockNumber).To(Equal(uint64(1)))
			Expect(out.Details).NotTo(BeNil())
			Expect(out.Details.BlockNumber).To(Equal(uint64(2)))

			_, _, update := fakeLedger.UpdateListingArgsForCall(0)
			Expect(update.Description).To(Equal("About\n\n[FILENAME:song-v2.flac]"))
			Expect(update.Name).To(Equal("Song"))
			Expect(update.Price).To(Equal(big.NewInt(7)))
		})

		It("skips the second transaction when the filename is unchanged", func() {
			out, err := market.UpdateListingMedia(ctx, 4, core.MediaEdit{URI: "ipfs://a", ThumbnailURI: "ipfs://b", Filename: "song.mp3"})
			Expect(err).NotTo(HaveOccurred())
			Expect(out.Details).To(BeNil())
			Expect(fakeLedger.UpdateListingCallCount()).To(BeZero())
		})

		It("does not touch the description when the media update fails", func() {
			fakeLedger.UpdateListingMediaReturns(ledger.TxResult{}, errs.ErrNotOwner)
			_, err := market.UpdateListingMedia(ctx, 4, core.MediaEdit{URI: "ipfs://a", ThumbnailURI: "ipfs://b", Filename: "new.bin"})
			Expect(err).To(MatchError(errs.ErrNotOwner))
			Expect(fakeLedger.UpdateListingCallCount()).To(BeZero())
		})
	})

	Describe("Purchase", func() {
		It("passes the exact price in the smallest unit", func() {
			fakeLedger.PurchaseReturns(ledger.TxResult{BlockNumber: 5}, nil)
			res, err := market.Purchase(ctx, 3, "1.5")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.BlockNumber).To(Equal(uint64(5)))

			_, id, price := fakeLedger.PurchaseArgsForCall(0)
			Expect(id).To(Equal(uint64(3)))
			Expect(price.String()).To(Equal("1500000000000000000"))
		})

		It("surfaces a price mismatch", func() {
			fakeLedger.PurchaseReturns(ledger.TxResult{}, errs.ErrPriceMismatch)
			_, err := market.Purchase(ctx, 3, "1.5")
			Expect(err).To(MatchError(errs.ErrPriceMismatch))
		})

		It("rejects a malformed price", func() {
			_, err := market.Purchase(ctx, 3, "1.2.3")
			Expect(err).To(MatchError(errs.ErrInvalidAmount))
			Expect(fakeLedger.PurchaseCallCount()).To(BeZero())
		})
	})

	Describe("ownership", func() {
		It("reconciles purchases of a checksummed or lower case address", func() {
			fakeReconciler.PurchasedProductsOfReturns(reconcile.Purchases{Products: []ledger.Product{{ID: 3}}}, nil)

			purchases, err := market.PurchasedProducts(ctx, strings.ToLower(buyer.Hex()))
			Expect(err).NotTo(HaveOccurred())
			Expect(purchases.Products).To(HaveLen(1))
			_, addr := fakeReconciler.PurchasedProductsOfArgsForCall(0)
			Expect(addr).To(Equal(buyer))
		})

		It("rejects malformed addresses", func() {
			purchases, err := market.PurchasedProducts(ctx, "0x123")
			Expect(err).To(MatchError(errs.ErrValidation))
			Expect(purchases.Products).To(BeEmpty())

			_, err = market.HasPurchased(ctx, 1, "bob")
			Expect(err).To(MatchError(errs.ErrValidation))

			_, err = market.Sales(ctx, "")
			Expect(err).To(MatchError(errs.ErrValidation))
			Expect(fakeReconciler.Invocations()).To(BeEmpty())
		})

		It("asks the reconciler about a single product", func() {
			fakeReconciler.HasPurchasedReturns(true, nil)
			owned, err := market.HasPurchased(ctx, 3, buyer.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(owned).To(BeTrue())
		})

		It("passes the history lookback through", func() {
			fakeReconciler.HistoryReturns([]ledger.PurchaseEvent{{ProductID: 1}}, nil)
			history, err := market.History(ctx, seller.Hex(), 500)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(1))
			_, addr, lookback := fakeReconciler.HistoryArgsForCall(0)
			Expect(addr).To(Equal(seller))
			Expect(lookback).To(Equal(uint64(500)))
		})
	})

	Describe("PaymentStats", func() {
		BeforeEach(func() {
			fakeLedger.FeeBasisPointsReturns(500, nil)
			fakeHistory.PaymentEventsOfReturns([]repository.PaymentEvent{
				{TxHash: "0x1", Seller: seller.Hex(), Buyer: buyer.Hex(), Amount: "1000"},
				{TxHash: "0x2", Seller: seller.Hex(), Buyer: buyer.Hex(), Amount: "3000"},
				{TxHash: "0x3", Seller: buyer.Hex(), Buyer: seller.Hex(), Amount: "200"},
				{TxHash: "0x4", Seller: seller.Hex(), Buyer: buyer.Hex(), Amount: "garbage"},
			}, nil)
		})

		It("totals the seller side net of the fee", func() {
			stats, err := market.PaymentStats(ctx, seller.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Sales).To(Equal(2))
			Expect(stats.Revenue).To(Equal(big.NewInt(4000)))
			Expect(stats.Fees).To(Equal(big.NewInt(200)))
			Expect(stats.Net).To(Equal(big.NewInt(3800)))
			Expect(stats.Purchases).To(Equal(1))
			Expect(stats.Spent).To(Equal(big.NewInt(200)))
			Expect(stats.FeeBasisPoints).To(Equal(uint64(500)))
		})

		It("falls back to the default fee", func() {
			fakeLedger.FeeBasisPointsReturns(0, fakeErr)
			stats, err := market.PaymentStats(ctx, seller.Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.FeeBasisPoints).To(Equal(events.FallbackFeeBasisPoints))
			Expect(stats.Fees).To(Equal(big.NewInt(100)))
		})

		It("encodes amounts as exact strings", func() {
			revenue, _ := new(big.Int).SetString("1234567890123456789", 10)
			raw, err := json.Marshal(core.PaymentStats{Sales: 1, Revenue: revenue, FeeBasisPoints: 250})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(ContainSubstring(`"revenue":"1234567890123456789"`))
			Expect(string(raw)).To(ContainSubstring(`"revenueDecimal":"1.234567890123456789"`))
			Expect(string(raw)).To(ContainSubstring(`"spent":"0"`))
			Expect(string(raw)).To(ContainSubstring(`"feeBasisPoints":250`))
		})

		It("reports a failed history read as a query failure", func() {
			fakeHistory.PaymentEventsOfReturns(nil, fakeErr)
			_, err := market.PaymentStats(ctx, seller.Hex())
			Expect(err).To(MatchError(errs.ErrQueryFailed))
		})
	})

	Describe("Download", func() {
		BeforeEach(func() {
			fakeLedger.GetOneReturns(ledger.Product{ID: 2, URI: "ipfs://x"}, nil)
			fakeDownloader.DownloadReturns(download.Result{Filename: "a.pdf"}, nil)
		})

		It("uses the configured directory by default", func() {
			res, err := market.Download(ctx, 2, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Filename).To(Equal("a.pdf"))
			_, p, dir := fakeDownloader.DownloadArgsForCall(0)
			Expect(p.ID).To(Equal(uint64(2)))
			Expect(dir).To(Equal("/var/lib/marketsync"))
		})

		It("honours an explicit directory", func() {
			_, err := market.Download(ctx, 2, "/tmp/out")
			Expect(err).NotTo(HaveOccurred())
			_, _, dir := fakeDownloader.DownloadArgsForCall(0)
			Expect(dir).To(Equal("/tmp/out"))
		})

		It("keeps the downloader's failure category", func() {
			fakeDownloader.DownloadReturns(download.Result{}, errs.ErrAllGatewaysExhausted)
			_, err := market.Download(ctx, 2, "")
			Expect(err).To(MatchError(errs.ErrAllGatewaysExhausted))
		})
	})

	Describe("PinAsset", func() {
		It("uploads through the pinning service", func() {
			fakePinner.PinFileReturns(pinning.PinResult{CID: "bafy", URI: "ipfs://bafy", OriginalName: "a.zip"}, nil)
			res, err := market.PinAsset(ctx, "a.zip", strings.NewReader("data"))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.URI).To(Equal("ipfs://bafy"))
		})

		When("no pinning service is configured", func() {
			It("should say so", func() {
				market = core.NewMarketplace(fakeLogger, fakeLedger, fakeReconciler, fakeDownloader,
					nil, fakeHistory, fakeInbox, fakeJWT, cfg)
				_, err := market.PinAsset(ctx, "a.zip", strings.NewReader("data"))
				Expect(err).To(MatchError(core.ErrPinningDisabled))
			})
		})
	})

	Describe("notifications", func() {
		It("reports the inbox with its unread count", func() {
			fakeInbox.ListReturns([]events.Notification{{ID: "1"}, {ID: "2", Read: true}})
			fakeInbox.UnreadReturns(1)

			inbox := market.Notifications()
			Expect(inbox.Notifications).To(HaveLen(2))
			Expect(inbox.Unread).To(Equal(1))
		})

		It("marks and dismisses through the inbox", func() {
			fakeInbox.MarkReadReturns(true)
			fakeInbox.DismissReturns(false)

			Expect(market.MarkNotificationRead("1")).To(BeTrue())
			Expect(market.DismissNotification("9")).To(BeFalse())
			market.MarkAllNotificationsRead()
			Expect(fakeInbox.MarkAllReadCallCount()).To(Equal(1))
		})

		It("subscribes live consumers to the inbox feed", func() {
			sub := event.NewSubscription(func(quit <-chan struct{}) error {
				<-quit
				return nil
			})
			fakeInbox.SubscribeReturns(sub)
			var ch chan<- events.Notification = make(chan events.Notification)

			Expect(market.SubscribeNotifications(ch)).To(BeIdenticalTo(sub))
			Expect(fakeInbox.SubscribeArgsForCall(0)).To(Equal(ch))
			sub.Unsubscribe()
		})
	})
})
