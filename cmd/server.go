package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marketsync/internal/config"
	"marketsync/internal/core"
	"marketsync/internal/db"
	"marketsync/internal/events"
	"marketsync/internal/http/handler"
	"marketsync/internal/http/handler/middleware"
	"marketsync/internal/http/payload"
	"marketsync/internal/http/server"
	"marketsync/internal/reconcile"
	"marketsync/internal/repository"
	"marketsync/pkg/jwt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

func serve(c *cli.Context) error {
	logger := newLogger(c)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// chain
	chain, err := dialChain(ctx, logger, config.Chain, nil)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer chain.Close()

	if err := chain.ledger.Verify(ctx); err != nil {
		logger.Errorw("marketplace contract check failed", "address", config.MarketplaceAddress, "error", err)
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// storage
	resolver, err := newResolver(logger, config.Storage, reg)
	if err != nil {
		logger.Errorw("failed to create gateway resolver", "error", err)
		return err
	}

	pinner, err := newPinner(logger, config.Storage)
	if err != nil {
		logger.Errorw("failed to create pinning client", "error", err)
		return err
	}
	var pin core.Pinner
	if pinner != nil {
		pin = pinner
	} else {
		logger.Infow("PINATA_JWT not set; pinning disabled")
	}

	downloader := newDownloader(logger, resolver, pinner)

	reconciler := reconcile.NewReconciler(logger, chain.node, chain.ledger, reconcile.Config{
		PurchaseLookback: config.PurchaseLookback,
		HistoryLookback:  config.HistoryLookback,
	})

	// repository
	dbConn, err := db.NewGormDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewPaymentRepository(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// events
	inbox := events.NewInbox(config.InboxSize)
	bridge := events.NewBridge(logger, chain.node, chain.ledger, repo, inbox, events.Config{
		TokenSymbol: config.TokenSymbol,
	})
	go func() {
		if err := bridge.Run(ctx, chain.session); err != nil {
			logger.Errorw("event bridge stopped", "error", err)
		}
	}()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	market := core.NewMarketplace(
		logger,
		chain.ledger,
		reconciler,
		downloader,
		pin,
		repo,
		inbox,
		jwtService,
		core.Config{
			Operator: core.Operator{
				Username:     config.OperatorUsername,
				PasswordHash: config.OperatorPasswordHash,
				TokenTTL:     config.TokenTTL,
			},
			DownloadDir: config.DownloadDir,
		})

	// handler
	marketHdlr := handler.NewMarketHandler(
		logger,
		payload.Decoder{},
		market)

	// register routes
	mux := http.NewServeMux()
	marketHdlr.Register(mux, middleware.NewAuthMiddleware(logger, market))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger, reg).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
