package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketsync/internal/core"
	"marketsync/internal/events"
	"marketsync/internal/http/handler/middleware"
	"marketsync/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Authenticate        = "POST /market/authenticate"
	GetProducts         = "GET /market/products"
	GetProduct          = "GET /market/products/{id}"
	CreateProduct       = "POST /market/products"
	UpdateProduct       = "PUT /market/products/{id}"
	UpdateProductMedia  = "PUT /market/products/{id}/media"
	PurchaseProduct     = "POST /market/products/{id}/purchase"
	DownloadAsset       = "GET /market/products/{id}/asset"
	PinAsset            = "POST /market/assets"
	GetPurchases        = "GET /market/purchases/{address}"
	GetPurchase         = "GET /market/purchases/{address}/{id}"
	GetSales            = "GET /market/sales/{address}"
	GetHistory          = "GET /market/history/{address}"
	GetPaymentStats     = "GET /market/payments/{address}"
	GetStats            = "GET /market/stats"
	GetNotifications    = "GET /market/notifications"
	StreamNotifications = "GET /market/notifications/stream"
	ReadNotification    = "POST /market/notifications/{id}/read"
	ReadAllNotification = "POST /market/notifications/read"
	DismissNotification = "DELETE /market/notifications/{id}"
)

const (
	maxUploadMemory   = 32 << 20
	streamKeepAlive   = 30 * time.Second
	streamBufferDepth = 16
)

type MarketHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	market           MarketService
}

func NewMarketHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, market MarketService) *MarketHandler {
	return &MarketHandler{
		logs:             logger,
		requestValidator: requestValidator,
		market:           market,
	}
}

// Register adds every route to mux. Routes that sign transactions, write
// files or touch the inbox go through auth.
func (h *MarketHandler) Register(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetProducts, h.HandleGetProducts)
	mux.HandleFunc(GetProduct, h.HandleGetProduct)
	mux.HandleFunc(GetPurchases, h.HandleGetPurchases)
	mux.HandleFunc(GetPurchase, h.HandleGetPurchase)
	mux.HandleFunc(GetSales, h.HandleGetSales)
	mux.HandleFunc(GetHistory, h.HandleGetHistory)
	mux.HandleFunc(GetPaymentStats, h.HandleGetPaymentStats)
	mux.HandleFunc(GetStats, h.HandleGetStats)

	mux.HandleFunc(CreateProduct, auth.Require(h.HandleCreateProduct))
	mux.HandleFunc(UpdateProduct, auth.Require(h.HandleUpdateProduct))
	mux.HandleFunc(UpdateProductMedia, auth.Require(h.HandleUpdateProductMedia))
	mux.HandleFunc(PurchaseProduct, auth.Require(h.HandlePurchase))
	mux.HandleFunc(DownloadAsset, auth.Require(h.HandleDownload))
	mux.HandleFunc(PinAsset, auth.Require(h.HandlePinAsset))
	mux.HandleFunc(GetNotifications, auth.Require(h.HandleGetNotifications))
	mux.HandleFunc(StreamNotifications, auth.Require(h.HandleStreamNotifications))
	mux.HandleFunc(ReadNotification, auth.Require(h.HandleReadNotification))
	mux.HandleFunc(ReadAllNotification, auth.Require(h.HandleReadAllNotifications))
	mux.HandleFunc(DismissNotification, auth.Require(h.HandleDismissNotification))
}

func (h *MarketHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.market.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		h.fail(w, err, Authenticate, requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	query := r.URL.Query()
	filter := core.ProductFilter{
		Category: query.Get("category"),
		Seller:   query.Get("seller"),
	}

	products, err := h.market.Products(r.Context(), filter)
	if err != nil {
		h.fail(w, err, GetProducts, requestId)
		return
	}

	h.logs.Infow("products listed",
		"count", len(products),
		"category", filter.Category,
		"seller", filter.Seller,
		"request_id", requestId)

	h.respond(w, Response{Data: products}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, GetProduct, requestId)
	if !ok {
		return
	}

	product, err := h.market.Product(r.Context(), id)
	if err != nil {
		h.fail(w, err, GetProduct, requestId)
		return
	}

	h.respond(w, Response{Data: product}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CreateProductRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, CreateProduct, requestId)
		return
	}

	res, err := h.market.CreateListing(r.Context(), req.ToListing())
	if err != nil {
		h.fail(w, err, CreateProduct, requestId)
		return
	}

	h.respond(w, Response{Message: "Product listed", Data: res}, http.StatusCreated, requestId)
}

func (h *MarketHandler) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, UpdateProduct, requestId)
	if !ok {
		return
	}

	var req payload.UpdateProductRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, UpdateProduct, requestId)
		return
	}

	res, err := h.market.UpdateListing(r.Context(), id, req.ToEdit())
	if err != nil {
		h.fail(w, err, UpdateProduct, requestId)
		return
	}

	h.respond(w, Response{Message: "Product updated", Data: res}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleUpdateProductMedia(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, UpdateProductMedia, requestId)
	if !ok {
		return
	}

	var req payload.UpdateMediaRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, UpdateProductMedia, requestId)
		return
	}

	res, err := h.market.UpdateListingMedia(r.Context(), id, req.ToEdit())
	if err != nil {
		h.fail(w, err, UpdateProductMedia, requestId)
		return
	}

	h.respond(w, Response{Message: "Product media updated", Data: res}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, PurchaseProduct, requestId)
	if !ok {
		return
	}

	var req payload.PurchaseRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.badRequest(w, err, PurchaseProduct, requestId)
		return
	}

	res, err := h.market.Purchase(r.Context(), id, req.Price)
	if err != nil {
		h.fail(w, err, PurchaseProduct, requestId)
		return
	}

	h.logs.Infow("purchase confirmed",
		"product_id", id,
		"tx_hash", res.Hash.Hex(),
		"request_id", requestId)

	h.respond(w, Response{Message: "Purchase successful", Data: res}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, DownloadAsset, requestId)
	if !ok {
		return
	}

	res, err := h.market.Download(r.Context(), id, "")
	if err != nil {
		h.fail(w, err, DownloadAsset, requestId)
		return
	}

	h.respond(w, Response{Message: "Download complete", Data: res}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandlePinAsset(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.badRequest(w, fmt.Errorf("parse multipart form: %w", err), PinAsset, requestId)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.badRequest(w, fmt.Errorf("form file: %w", err), PinAsset, requestId)
		return
	}
	defer file.Close()

	res, err := h.market.PinAsset(r.Context(), header.Filename, file)
	if err != nil {
		h.fail(w, err, PinAsset, requestId)
		return
	}

	h.respond(w, Response{Message: "File pinned", Data: res}, http.StatusCreated, requestId)
}

func (h *MarketHandler) HandleGetPurchases(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	purchases, err := h.market.PurchasedProducts(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, err, GetPurchases, requestId)
		return
	}

	h.respond(w, Response{Data: purchases}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetPurchase(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	id, ok := h.productID(w, r, GetPurchase, requestId)
	if !ok {
		return
	}

	owned, err := h.market.HasPurchased(r.Context(), id, r.PathValue("address"))
	if err != nil {
		h.fail(w, err, GetPurchase, requestId)
		return
	}

	h.respond(w, Response{Data: map[string]bool{"purchased": owned}}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetSales(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	sales, err := h.market.Sales(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, err, GetSales, requestId)
		return
	}

	h.respond(w, Response{Data: sales}, http.StatusOK, requestId)
}

// HandleGetHistory answers with 206 and whatever could be loaded when only
// part of the history was readable.
func (h *MarketHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var lookback uint64
	if raw := r.URL.Query().Get("lookback"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.badRequest(w, fmt.Errorf("lookback: %w", err), GetHistory, requestId)
			return
		}
		lookback = v
	}

	history, err := h.market.History(r.Context(), r.PathValue("address"), lookback)
	if err != nil && len(history) == 0 {
		h.fail(w, err, GetHistory, requestId)
		return
	}
	if err != nil {
		h.logs.Warnw("partial history",
			"error", err,
			"events", len(history),
			"handler", GetHistory,
			"request_id", requestId)
		resp := errorResponse(err)
		resp.Data = history
		h.respond(w, resp, http.StatusPartialContent, requestId)
		return
	}

	h.respond(w, Response{Data: history}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetPaymentStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	stats, err := h.market.PaymentStats(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, err, GetPaymentStats, requestId)
		return
	}

	h.respond(w, Response{Data: stats}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	stats, err := h.market.Stats(r.Context())
	if err != nil {
		h.fail(w, err, GetStats, requestId)
		return
	}

	h.respond(w, Response{Data: stats}, http.StatusOK, requestId)
}

func (h *MarketHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	h.respond(w, Response{Data: h.market.Notifications()}, http.StatusOK, requestId)
}

// HandleStreamNotifications sends every new notification as a server-sent
// event until the client goes away.
func (h *MarketHandler) HandleStreamNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	rc := http.NewResponseController(w)

	// The server read timeout would otherwise end the stream.
	_ = rc.SetReadDeadline(time.Time{})

	ch := make(chan events.Notification, streamBufferDepth)
	sub := h.market.SubscribeNotifications(ch)
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.logs.Errorw("notification stream cannot flush",
			"error", err,
			"request_id", requestId)
		return
	}

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case err := <-sub.Err():
			if err != nil {
				h.logs.Warnw("notification feed closed",
					"error", err,
					"request_id", requestId)
			}
			return
		case <-keepAlive.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return
			}
		case n := <-ch:
			data, err := json.Marshal(n)
			if err != nil {
				h.logs.Errorw("failed to encode notification",
					"error", err,
					"request_id", requestId)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: notification\ndata: %s\n\n", n.ID, data); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func (h *MarketHandler) HandleReadNotification(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	if !h.market.MarkNotificationRead(r.PathValue("id")) {
		h.respond(w, Response{Message: "Notification not found"}, http.StatusNotFound, requestId)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MarketHandler) HandleReadAllNotifications(w http.ResponseWriter, r *http.Request) {
	h.market.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}

func (h *MarketHandler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())
	if !h.market.DismissNotification(r.PathValue("id")) {
		h.respond(w, Response{Message: "Notification not found"}, http.StatusNotFound, requestId)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MarketHandler) productID(w http.ResponseWriter, r *http.Request, route, requestId string) (uint64, bool) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Sprintf("product id %q must be a positive integer", raw),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid product id", "id", raw, "handler", route, "request_id", requestId)
		return 0, false
	}
	return id, true
}

func (h *MarketHandler) badRequest(w http.ResponseWriter, err error, route, requestId string) {
	h.respond(w, Response{
		Message: "Request failed",
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *MarketHandler) fail(w http.ResponseWriter, err error, route, requestId string) {
	code := status(err)
	h.respond(w, errorResponse(err), code, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", code,
		"handler", route,
		"request_id", requestId)
}

func (h *MarketHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
