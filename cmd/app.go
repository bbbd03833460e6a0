package cmd

import (
	"marketsync/pkg/log"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const service = "marketsync"

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	EnvVars: []string{"LOG_LEVEL"},
	Value:   "info",
	Usage:   "debug, info, warn or error",
}

// NewApp builds the marketsync command line. Every command reads its
// settings from the environment.
func NewApp() *cli.App {
	return &cli.App{
		Name:  service,
		Usage: "keep a marketplace UI in sync with its ledger and asset gateways",
		Flags: []cli.Flag{logLevelFlag},
		Commands: []*cli.Command{
			ServeCmd,
			DownloadCmd,
			PurchasesCmd,
			ProbeCmd,
			ConvertCmd,
			PurchaseCmd,
			AdminCmd,
		},
	}
}

var ServeCmd = &cli.Command{
	Name:   "serve",
	Usage:  "Run the JSON API and the event bridge",
	Action: serve,
}

func newLogger(cctx *cli.Context) *zap.SugaredLogger {
	level, err := zapcore.ParseLevel(cctx.String(logLevelFlag.Name))
	if err != nil {
		level = zapcore.InfoLevel
	}
	return log.NewZapLogger(service, level)
}
