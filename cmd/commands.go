package cmd

import (
	"fmt"
	"strconv"
	"time"

	"marketsync/internal/config"
	"marketsync/internal/gateway"
	"marketsync/internal/ledger"
	"marketsync/internal/reconcile"
	"marketsync/internal/units"
	"marketsync/internal/wallet"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v2"
)

var DownloadCmd = &cli.Command{
	Name:      "download",
	Usage:     "Save the asset of a listing under its original filename",
	ArgsUsage: "<product id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      "dir",
			Usage:     "target directory (default: DOWNLOAD_DIR)",
			TakesFile: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		id, err := productArg(cctx)
		if err != nil {
			return err
		}

		cfg, err := config.NewChain()
		if err != nil {
			return err
		}
		logger := newLogger(cctx)

		chain, err := dialChain(cctx.Context, logger, cfg, nil)
		if err != nil {
			return err
		}
		defer chain.Close()

		resolver, err := newResolver(logger, cfg.Storage, nil)
		if err != nil {
			return err
		}
		pinner, err := newPinner(logger, cfg.Storage)
		if err != nil {
			return err
		}

		product, err := chain.ledger.GetOne(cctx.Context, id)
		if err != nil {
			return err
		}

		dir := cctx.String("dir")
		if dir == "" {
			dir = cfg.DownloadDir
		}
		res, err := newDownloader(logger, resolver, pinner).Download(cctx.Context, product, dir)
		if err != nil {
			return err
		}

		fmt.Fprintf(cctx.App.Writer, "%s (%s) from %s\n", res.Path, humanize.Bytes(uint64(res.Size)), res.Gateway)
		return nil
	},
}

var PurchasesCmd = &cli.Command{
	Name:      "purchases",
	Usage:     "List the products an address bought inside the lookback window",
	ArgsUsage: "<address>",
	Action: func(cctx *cli.Context) error {
		buyer, err := addressArg(cctx)
		if err != nil {
			return err
		}

		cfg, err := config.NewChain()
		if err != nil {
			return err
		}
		logger := newLogger(cctx)

		chain, err := dialChain(cctx.Context, logger, cfg, nil)
		if err != nil {
			return err
		}
		defer chain.Close()

		reconciler := reconcile.NewReconciler(logger, chain.node, chain.ledger, reconcile.Config{
			PurchaseLookback: cfg.PurchaseLookback,
			HistoryLookback:  cfg.HistoryLookback,
		})
		purchases, err := reconciler.PurchasedProductsOf(cctx.Context, buyer)
		if err != nil {
			return err
		}

		w := cctx.App.Writer
		fmt.Fprintf(w, "blocks %d..%d: %d product(s)\n", purchases.FromBlock, purchases.ToBlock, len(purchases.Products))
		for _, p := range purchases.Products {
			fmt.Fprintf(w, "%6d  %-32s  %s %s\n", p.ID, p.Name, units.FormatDecimal(p.Price), cfg.TokenSymbol)
		}
		return nil
	},
}

var ProbeCmd = &cli.Command{
	Name:      "probe",
	Usage:     "Try every gateway for an asset uri and report each outcome",
	ArgsUsage: "<uri>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return fmt.Errorf("expected exactly one uri")
		}

		cfg, err := config.NewStorage()
		if err != nil {
			return err
		}

		resolver, err := newResolver(newLogger(cctx), cfg, nil)
		if err != nil {
			return err
		}
		attempts, err := resolver.Probe(cctx.Context, cctx.Args().First())
		if err != nil {
			return err
		}

		for _, a := range attempts {
			printAttempt(cctx, a)
		}
		return nil
	},
}

var ConvertCmd = &cli.Command{
	Name:  "convert",
	Usage: "Convert amounts between decimal and smallest-unit form",
	Subcommands: []*cli.Command{
		{
			Name:      "to-smallest",
			ArgsUsage: "<decimal>",
			Action: func(cctx *cli.Context) error {
				out, err := units.ToSmallestUnit(cctx.Args().First())
				if err != nil {
					return err
				}
				fmt.Fprintln(cctx.App.Writer, out)
				return nil
			},
		},
		{
			Name:      "to-decimal",
			ArgsUsage: "<integer>",
			Action: func(cctx *cli.Context) error {
				out, err := units.ToDecimalString(cctx.Args().First())
				if err != nil {
					return err
				}
				fmt.Fprintln(cctx.App.Writer, out)
				return nil
			},
		},
	},
}

var PurchaseCmd = &cli.Command{
	Name:      "purchase",
	Usage:     "Buy a listing, confirming the signature interactively",
	ArgsUsage: "<product id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "price",
			Usage:    "decimal price shown on the listing",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		id, err := productArg(cctx)
		if err != nil {
			return err
		}
		price, err := units.ParseDecimal(cctx.String("price"))
		if err != nil {
			return err
		}

		return withSigner(cctx, func(chain *chain) (ledger.TxResult, error) {
			return chain.ledger.Purchase(cctx.Context, id, price)
		})
	},
}

var AdminCmd = &cli.Command{
	Name:  "admin",
	Usage: "Owner-only marketplace operations",
	Subcommands: []*cli.Command{
		{
			Name:  "pause",
			Usage: "Stop new listings and purchases",
			Action: func(cctx *cli.Context) error {
				return withSigner(cctx, func(chain *chain) (ledger.TxResult, error) {
					return chain.ledger.Pause(cctx.Context)
				})
			},
		},
		{
			Name:  "unpause",
			Usage: "Resume trading",
			Action: func(cctx *cli.Context) error {
				return withSigner(cctx, func(chain *chain) (ledger.TxResult, error) {
					return chain.ledger.Unpause(cctx.Context)
				})
			},
		},
		{
			Name:      "set-fee",
			Usage:     "Set the marketplace fee",
			ArgsUsage: "<percent>",
			Action: func(cctx *cli.Context) error {
				bps, err := units.PercentToBasisPoints(cctx.Args().First())
				if err != nil {
					return err
				}
				return withSigner(cctx, func(chain *chain) (ledger.TxResult, error) {
					return chain.ledger.SetFeeBasisPoints(cctx.Context, bps)
				})
			},
		},
		{
			Name:  "withdraw",
			Usage: "Withdraw accumulated fees to the owner",
			Action: func(cctx *cli.Context) error {
				return withSigner(cctx, func(chain *chain) (ledger.TxResult, error) {
					return chain.ledger.WithdrawFees(cctx.Context)
				})
			},
		},
		{
			Name:  "status",
			Usage: "Show owner, fee and pause state",
			Action: func(cctx *cli.Context) error {
				cfg, err := config.NewChain()
				if err != nil {
					return err
				}
				chain, err := dialChain(cctx.Context, newLogger(cctx), cfg, nil)
				if err != nil {
					return err
				}
				defer chain.Close()

				if err := chain.ledger.Verify(cctx.Context); err != nil {
					return err
				}
				owner, err := chain.ledger.Owner(cctx.Context)
				if err != nil {
					return err
				}
				paused, err := chain.ledger.IsPaused(cctx.Context)
				if err != nil {
					return err
				}
				stats, err := chain.ledger.Stats(cctx.Context)
				if err != nil {
					return err
				}

				w := cctx.App.Writer
				fmt.Fprintf(w, "owner:    %s\n", owner.Hex())
				fmt.Fprintf(w, "paused:   %t\n", paused)
				fmt.Fprintf(w, "fee:      %s bps\n", stats.FeeBasisPoints)
				fmt.Fprintf(w, "fees:     %s %s\n", units.FormatDecimal(stats.TotalFeesCollected), cfg.TokenSymbol)
				fmt.Fprintf(w, "products: %s\n", stats.TotalProducts)
				return nil
			},
		},
	},
}

// withSigner dials with an interactive approver and prints the outcome of
// the transaction send returns.
func withSigner(cctx *cli.Context, send func(*chain) (ledger.TxResult, error)) error {
	cfg, err := config.NewChain()
	if err != nil {
		return err
	}
	if err := cfg.RequireSigner(); err != nil {
		return err
	}

	chain, err := dialChain(cctx.Context, newLogger(cctx), cfg, confirmSignature(cfg.TokenSymbol))
	if err != nil {
		return err
	}
	defer chain.Close()

	res, err := send(chain)
	if err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "confirmed in block %d: %s\n", res.BlockNumber, res.Hash.Hex())
	return nil
}

func confirmSignature(symbol string) wallet.Approver {
	return func(tx *types.Transaction) bool {
		to := "contract creation"
		if tx.To() != nil {
			to = tx.To().Hex()
		}
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Sign transaction to %s sending %s %s", to, units.FormatDecimal(tx.Value()), symbol),
			IsConfirm: true,
		}
		_, err := prompt.Run()
		return err == nil
	}
}

func printAttempt(cctx *cli.Context, a gateway.Attempt) {
	status := "-"
	if a.Status != 0 {
		status = strconv.Itoa(a.Status)
	}
	line := fmt.Sprintf("%-10s %3s %8s  %s", a.Outcome, status, a.Duration.Round(time.Millisecond), a.URL)
	if a.Err != nil {
		line += "  " + a.Err.Error()
	}
	fmt.Fprintln(cctx.App.Writer, line)
}

func productArg(cctx *cli.Context) (uint64, error) {
	if cctx.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one product id")
	}
	id, err := strconv.ParseUint(cctx.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("product id %q: %w", cctx.Args().First(), err)
	}
	return id, nil
}

func addressArg(cctx *cli.Context) (common.Address, error) {
	if cctx.NArg() != 1 || !common.IsHexAddress(cctx.Args().First()) {
		return common.Address{}, fmt.Errorf("expected exactly one address")
	}
	return common.HexToAddress(cctx.Args().First()), nil
}
