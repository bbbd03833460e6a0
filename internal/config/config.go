package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

var ErrNoSigner error = errors.New("SIGNER_PRIVATE_KEY or SIGNER_KEYSTORE must be set")

// Chain is what every command talking to the marketplace needs.
type Chain struct {
	NodeURL            string        `envconfig:"ETH_NODE_URL" required:"true"`
	WSURL              string        `envconfig:"ETH_WS_URL"`
	MarketplaceAddress string        `envconfig:"MARKETPLACE_ADDRESS" required:"true"`
	SignerPrivateKey   string        `envconfig:"SIGNER_PRIVATE_KEY"`
	SignerKeystore     string        `envconfig:"SIGNER_KEYSTORE"`
	SignerPassphrase   string        `envconfig:"SIGNER_PASSPHRASE"`
	TxConfirmTimeout   time.Duration `envconfig:"TX_CONFIRM_TIMEOUT" default:"2m"`
	PurchaseLookback   uint64        `envconfig:"PURCHASE_LOOKBACK_BLOCKS" default:"200000"`
	HistoryLookback    uint64        `envconfig:"HISTORY_LOOKBACK_BLOCKS" default:"10000"`
	TokenSymbol        string        `envconfig:"TOKEN_SYMBOL" default:"ETH"`
	Storage
}

// Storage configures asset resolution and the pinning side channel.
type Storage struct {
	IPFSGateways      []string      `envconfig:"IPFS_GATEWAYS"`
	GatewayTimeout    time.Duration `envconfig:"IPFS_GATEWAY_TIMEOUT" default:"15s"`
	ResolverCacheSize int           `envconfig:"RESOLVER_CACHE_SIZE" default:"256"`
	PinataJWT         string        `envconfig:"PINATA_JWT"`
	PinataAPIURL      string        `envconfig:"PINATA_API_URL" default:"https://api.pinata.cloud"`
	DownloadDir       string        `envconfig:"DOWNLOAD_DIR" default:"downloads"`
}

// App is the configuration of the API server.
type App struct {
	Port                 string        `envconfig:"API_PORT" default:"8080"`
	DBConnectionURL      string        `envconfig:"DB_CONNECTION_URL" required:"true"`
	JWTSecret            string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL             time.Duration `envconfig:"JWT_TTL" default:"24h"`
	OperatorUsername     string        `envconfig:"OPERATOR_USERNAME" required:"true"`
	OperatorPasswordHash string        `envconfig:"OPERATOR_PASSWORD_HASH" required:"true"`
	InboxSize            int           `envconfig:"INBOX_SIZE" default:"100"`
	Chain
}

// NewApp loads App from the environment. Missing required keys fail fast.
func NewApp() (App, error) {
	var app App
	if err := envconfig.Process("", &app); err != nil {
		return App{}, fmt.Errorf("loading config: %w", err)
	}
	if err := app.RequireSigner(); err != nil {
		return App{}, err
	}
	return app, nil
}

// NewChain loads the chain settings only, for commands that do not serve
// the API.
func NewChain() (Chain, error) {
	var chain Chain
	if err := envconfig.Process("", &chain); err != nil {
		return Chain{}, fmt.Errorf("loading config: %w", err)
	}
	return chain, nil
}

// NewStorage loads the asset settings only.
func NewStorage() (Storage, error) {
	var storage Storage
	if err := envconfig.Process("", &storage); err != nil {
		return Storage{}, fmt.Errorf("loading config: %w", err)
	}
	return storage, nil
}

func (c Chain) RequireSigner() error {
	if c.SignerPrivateKey == "" && c.SignerKeystore == "" {
		return ErrNoSigner
	}
	return nil
}
