package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"marketsync/internal/core"
	"marketsync/internal/errs"
	"marketsync/internal/events"
	"marketsync/internal/http/handler"
	"marketsync/internal/http/handler/fake"
	"marketsync/internal/http/handler/middleware"
	mwfake "marketsync/internal/http/handler/middleware/fake"
	"marketsync/internal/http/payload"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/reconcile"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// hangUpAfterEvent plays a client that disconnects once it has seen one
// event.
type hangUpAfterEvent struct {
	*httptest.ResponseRecorder
	hangUp context.CancelFunc
}

func (h *hangUpAfterEvent) Write(b []byte) (int, error) {
	n, err := h.ResponseRecorder.Write(b)
	if strings.Contains(string(b), "event: notification") {
		h.hangUp()
	}
	return n, err
}

var _ = Describe("MarketHandler", func() {
	var (
		mh            *handler.MarketHandler
		fakeService   *fake.MarketService
		fakeValidator *fake.RequestValidator
		fakeVerifier  *mwfake.TokenVerifier
		fakeLogger    *zap.SugaredLogger
		mux           *http.ServeMux
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.MarketService)
		fakeValidator = new(fake.RequestValidator)
		fakeVerifier = new(mwfake.TokenVerifier)
		fakeVerifier.VerifyTokenReturns("operator", nil)

		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		mh = handler.NewMarketHandler(fakeLogger, fakeValidator, fakeService)
		mux = http.NewServeMux()
		mh.Register(mux, middleware.NewAuthMiddleware(fakeLogger, fakeVerifier))
	})

	serve := func() envelope {
		mux.ServeHTTP(w, req)
		var env envelope
		if w.Body.Len() > 0 {
			Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
		}
		return env
	}

	authorized := func(method, target string, body io.Reader) *http.Request {
		r := httptest.NewRequest(method, target, body)
		r.Header.Set("Authorization", "Bearer good")
		return r
	}

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/market/authenticate", strings.NewReader(`{"username":"operator","password":"pass"}`))
			fakeService.AuthenticateReturns("test-token", nil)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				mux.ServeHTTP(w, req)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal("test-token"))

				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "operator", Password: "pass"}))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				env := serve()
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(env.Error).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		DescribeTable("credential failures return 401",
			func(err error) {
				fakeService.AuthenticateReturns("", err)
				env := serve()
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(env.Message).To(Equal("Login failed"))
			},
			Entry("unknown user", core.ErrUserNotFound),
			Entry("wrong password", core.ErrIncorrectPassword),
		)

		When("an unexpected error occurs", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should hide the detail", func() {
				env := serve()
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(env.Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetProducts", func() {
		It("passes the filter and returns the products", func() {
			fakeService.ProductsReturns([]ledger.Product{{ID: 1, Name: "Loops", Price: big.NewInt(10)}}, nil)
			req = httptest.NewRequest("GET", "/market/products?category=audio", nil)

			env := serve()
			Expect(w.Code).To(Equal(http.StatusOK))

			var products []ledger.Product
			Expect(json.Unmarshal(env.Data, &products)).To(Succeed())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Name).To(Equal("Loops"))
			Expect(products[0].Price).To(Equal(big.NewInt(10)))
			Expect(w.Body.String()).To(ContainSubstring(`"price":"10"`))

			_, filter := fakeService.ProductsArgsForCall(0)
			Expect(filter).To(Equal(core.ProductFilter{Category: "audio"}))
		})

		It("needs no token", func() {
			req = httptest.NewRequest("GET", "/market/products", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(fakeVerifier.VerifyTokenCallCount()).To(BeZero())
		})
	})

	Describe("HandleGetProduct", func() {
		It("rejects a non numeric id", func() {
			req = httptest.NewRequest("GET", "/market/products/abc", nil)
			env := serve()
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(env.Error).To(ContainSubstring("positive integer"))
			Expect(fakeService.ProductCallCount()).To(BeZero())
		})

		It("rejects id zero", func() {
			req = httptest.NewRequest("GET", "/market/products/0", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("looks the product up", func() {
			fakeService.ProductReturns(ledger.Product{ID: 12, Name: "Stems"}, nil)
			req = httptest.NewRequest("GET", "/market/products/12", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id := fakeService.ProductArgsForCall(0)
			Expect(id).To(Equal(uint64(12)))
		})
	})

	Describe("writes", func() {
		It("require a bearer token", func() {
			req = httptest.NewRequest("POST", "/market/products", strings.NewReader(`{}`))
			serve()
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeService.CreateListingCallCount()).To(BeZero())
		})

		It("create a listing", func() {
			fakeService.CreateListingReturns(ledger.TxResult{Hash: common.HexToHash("0x01"), ProductID: 4}, nil)
			req = authorized("POST", "/market/products",
				strings.NewReader(`{"name":"Loops","description":"Drums","price":"0.1","uri":"ipfs://bafy","filename":"loops.zip"}`))

			env := serve()
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(env.Message).To(Equal("Product listed"))

			_, listing := fakeService.CreateListingArgsForCall(0)
			Expect(listing.Filename).To(Equal("loops.zip"))
			Expect(listing.Price).To(Equal("0.1"))
		})

		It("update a listing", func() {
			req = authorized("PUT", "/market/products/4",
				strings.NewReader(`{"name":"Loops","description":"More drums","price":"0.2"}`))
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id, edit := fakeService.UpdateListingArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			Expect(edit.Description).To(Equal("More drums"))
		})

		It("update listing media", func() {
			req = authorized("PUT", "/market/products/4/media",
				strings.NewReader(`{"uri":"ipfs://a","thumbnailUri":"ipfs://b","filename":"v2.zip"}`))
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			_, _, edit := fakeService.UpdateListingMediaArgsForCall(0)
			Expect(edit.Filename).To(Equal("v2.zip"))
		})

		It("reject unknown fields", func() {
			req = authorized("POST", "/market/products/4/purchase", strings.NewReader(`{"price":"1","tip":"2"}`))
			serve()
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.PurchaseCallCount()).To(BeZero())
		})
	})

	Describe("HandlePurchase", func() {
		BeforeEach(func() {
			req = authorized("POST", "/market/products/4/purchase", strings.NewReader(`{"price":"1.5"}`))
		})

		It("passes the confirmed price", func() {
			fakeService.PurchaseReturns(ledger.TxResult{BlockNumber: 9}, nil)
			env := serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(env.Message).To(Equal("Purchase successful"))
			_, id, price := fakeService.PurchaseArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			Expect(price).To(Equal("1.5"))
		})

		DescribeTable("maps every failure category to its own status",
			func(err error, code int) {
				fakeService.PurchaseReturns(ledger.TxResult{}, fmt.Errorf("purchasing 4: %w", err))
				env := serve()
				Expect(w.Code).To(Equal(code))
				Expect(env.Message).To(Equal(errs.Message(err)))
				Expect(env.Error).To(ContainSubstring("purchasing 4"))
			},
			Entry("validation", errs.Validation(errors.New("id: bad")), http.StatusBadRequest),
			Entry("invalid amount", errs.ErrInvalidAmount, http.StatusUnprocessableEntity),
			Entry("already purchased", errs.ErrAlreadyPurchased, http.StatusConflict),
			Entry("user rejected", errs.ErrUserRejected, http.StatusNotAcceptable),
			Entry("insufficient funds", errs.ErrInsufficientFunds, http.StatusPaymentRequired),
			Entry("price mismatch", errs.ErrPriceMismatch, http.StatusPreconditionFailed),
			Entry("paused", &errs.RevertError{Reason: "EnforcedPause()"}, http.StatusServiceUnavailable),
			Entry("not owner", &errs.RevertError{Reason: "Not the seller"}, http.StatusForbidden),
			Entry("reverted", errs.ErrTransactionReverted, http.StatusFailedDependency),
			Entry("no uri", errs.ErrNoURIProvided, http.StatusNotFound),
			Entry("empty asset", errs.ErrEmptyAsset, http.StatusGone),
			Entry("gateways exhausted", errs.ErrAllGatewaysExhausted, http.StatusGatewayTimeout),
			Entry("query failed", errs.QueryFailed("getProduct", errors.New("eof")), http.StatusBadGateway),
		)
	})

	Describe("HandleDownload", func() {
		It("downloads into the configured directory", func() {
			req = authorized("GET", "/market/products/4/asset", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			_, id, dir := fakeService.DownloadArgsForCall(0)
			Expect(id).To(Equal(uint64(4)))
			Expect(dir).To(BeEmpty())
		})
	})

	Describe("HandlePinAsset", func() {
		It("forwards the uploaded file", func() {
			var (
				got     string
				gotName string
			)
			fakeService.PinAssetStub = func(_ context.Context, name string, r io.Reader) (pinning.PinResult, error) {
				b, err := io.ReadAll(r)
				Expect(err).NotTo(HaveOccurred())
				got, gotName = string(b), name
				return pinning.PinResult{CID: "bafy", URI: "ipfs://bafy", OriginalName: name}, nil
			}

			body := &bytes.Buffer{}
			mw := multipart.NewWriter(body)
			part, err := mw.CreateFormFile("file", "beat.wav")
			Expect(err).NotTo(HaveOccurred())
			_, _ = part.Write([]byte("RIFF"))
			Expect(mw.Close()).To(Succeed())

			req = authorized("POST", "/market/assets", body)
			req.Header.Set("Content-Type", mw.FormDataContentType())

			serve()
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(got).To(Equal("RIFF"))
			Expect(gotName).To(Equal("beat.wav"))
		})

		It("reports a disabled pinning service", func() {
			fakeService.PinAssetReturns(pinning.PinResult{}, core.ErrPinningDisabled)

			body := &bytes.Buffer{}
			mw := multipart.NewWriter(body)
			_, _ = mw.CreateFormFile("file", "a.bin")
			Expect(mw.Close()).To(Succeed())

			req = authorized("POST", "/market/assets", body)
			req.Header.Set("Content-Type", mw.FormDataContentType())

			serve()
			Expect(w.Code).To(Equal(http.StatusNotImplemented))
		})
	})

	Describe("reads by address", func() {
		It("asks about a single purchase", func() {
			fakeService.HasPurchasedReturns(true, nil)
			req = httptest.NewRequest("GET", "/market/purchases/0x00000000000000000000000000000000000000b2/7", nil)

			env := serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(env.Data)).To(MatchJSON(`{"purchased":true}`))

			_, id, buyer := fakeService.HasPurchasedArgsForCall(0)
			Expect(id).To(Equal(uint64(7)))
			Expect(buyer).To(Equal("0x00000000000000000000000000000000000000b2"))
		})

		It("maps a malformed address to 400", func() {
			fakeService.SalesReturns(reconcile.Sales{}, errs.Validation(errors.New("address")))
			req = httptest.NewRequest("GET", "/market/sales/bob", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("HandleGetHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/market/history/0xabc?lookback=500", nil)
		})

		It("passes the lookback", func() {
			serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			_, account, lookback := fakeService.HistoryArgsForCall(0)
			Expect(account).To(Equal("0xabc"))
			Expect(lookback).To(Equal(uint64(500)))
		})

		It("rejects a bad lookback", func() {
			req = httptest.NewRequest("GET", "/market/history/0xabc?lookback=many", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.HistoryCallCount()).To(BeZero())
		})

		It("returns partial history with 206", func() {
			fakeService.HistoryReturns([]ledger.PurchaseEvent{{ProductID: 1}}, errs.QueryFailed("loading purchase history", fakeErr))
			env := serve()
			Expect(w.Code).To(Equal(http.StatusPartialContent))
			Expect(env.Error).To(ContainSubstring(fakeErr.Error()))

			var events []ledger.PurchaseEvent
			Expect(json.Unmarshal(env.Data, &events)).To(Succeed())
			Expect(events).To(HaveLen(1))
		})

		It("fails when nothing could be loaded", func() {
			fakeService.HistoryReturns([]ledger.PurchaseEvent{}, errs.QueryFailed("reading latest block", fakeErr))
			serve()
			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("notifications", func() {
		It("require a token to read", func() {
			req = httptest.NewRequest("GET", "/market/notifications", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("list the inbox", func() {
			fakeService.NotificationsReturns(core.Inbox{Unread: 2})
			req = authorized("GET", "/market/notifications", nil)
			env := serve()
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(env.Data)).To(ContainSubstring(`"unread":2`))
		})

		It("mark one read", func() {
			fakeService.MarkNotificationReadReturns(true)
			req = authorized("POST", "/market/notifications/n-1/read", nil)
			mux.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(fakeService.MarkNotificationReadArgsForCall(0)).To(Equal("n-1"))
		})

		It("mark all read", func() {
			req = authorized("POST", "/market/notifications/read", nil)
			mux.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(fakeService.MarkAllNotificationsReadCallCount()).To(Equal(1))
		})

		It("report unknown ids on dismiss", func() {
			fakeService.DismissNotificationReturns(false)
			req = authorized("DELETE", "/market/notifications/missing", nil)
			serve()
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("require a token to stream", func() {
			req = httptest.NewRequest("GET", "/market/notifications/stream", nil)
			mux.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeService.SubscribeNotificationsCallCount()).To(BeZero())
		})

		It("stream new notifications as server-sent events", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			unsubscribed := make(chan struct{})
			fakeService.SubscribeNotificationsStub = func(ch chan<- events.Notification) event.Subscription {
				return event.NewSubscription(func(quit <-chan struct{}) error {
					ch <- events.Notification{ID: "n-7", Kind: events.KindSuccess, Title: "Sale", ProductID: 7}
					<-quit
					close(unsubscribed)
					return nil
				})
			}

			req = authorized("GET", "/market/notifications/stream", nil).WithContext(ctx)
			mux.ServeHTTP(&hangUpAfterEvent{ResponseRecorder: w, hangUp: cancel}, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("text/event-stream"))
			Expect(w.Flushed).To(BeTrue())
			Expect(w.Body.String()).To(ContainSubstring("id: n-7\nevent: notification\ndata: {"))
			Expect(w.Body.String()).To(ContainSubstring(`"productId":7`))
			Eventually(unsubscribed).Should(BeClosed())
		})

		It("end the stream when the feed closes", func() {
			fakeService.SubscribeNotificationsStub = func(ch chan<- events.Notification) event.Subscription {
				return event.NewSubscription(func(quit <-chan struct{}) error {
					return errors.New("feed gone")
				})
			}

			req = authorized("GET", "/market/notifications/stream", nil)
			mux.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).NotTo(ContainSubstring("event: notification"))
		})
	})
})
