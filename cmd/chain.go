package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"marketsync/internal/config"
	"marketsync/internal/download"
	"marketsync/internal/ethereum"
	"marketsync/internal/gateway"
	"marketsync/internal/ledger"
	"marketsync/internal/pinning"
	"marketsync/internal/wallet"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// chain bundles everything that talks to the node.
type chain struct {
	rpc     *ethclient.Client
	ws      *ethclient.Client
	session *wallet.Session
	ledger  *ledger.Client
	node    *ethereum.NodeService
}

// dialChain connects to the node and, when a signer is configured, unlocks
// the wallet. Log subscriptions go over ETH_WS_URL when it is set.
func dialChain(ctx context.Context, logger *zap.SugaredLogger, cfg config.Chain, approver wallet.Approver) (*chain, error) {
	if !common.IsHexAddress(cfg.MarketplaceAddress) {
		return nil, fmt.Errorf("MARKETPLACE_ADDRESS %q is not an address", cfg.MarketplaceAddress)
	}
	address := common.HexToAddress(cfg.MarketplaceAddress)

	rpc, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		return nil, fmt.Errorf("dialing node: %w", err)
	}
	c := &chain{rpc: rpc}

	watch := rpc
	if cfg.WSURL != "" {
		c.ws, err = ethclient.DialContext(ctx, cfg.WSURL)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("dialing websocket node: %w", err)
		}
		watch = c.ws
	}

	source, err := keySource(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.session = wallet.NewSession(logger, rpc, source, approver)
	if cfg.RequireSigner() == nil {
		if err := c.session.Connect(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("connecting wallet: %w", err)
		}
	}

	contract := bind.NewBoundContract(address, ledger.MarketplaceABI, rpc, rpc, rpc)
	c.ledger = ledger.NewClient(logger, address, contract, rpc, c.session, cfg.TxConfirmTimeout)
	c.node = ethereum.NewNodeService(logger, watch, address)

	return c, nil
}

func (c *chain) Close() {
	if c.session != nil {
		c.session.Disconnect()
	}
	if c.ws != nil {
		c.ws.Close()
	}
	c.rpc.Close()
}

func keySource(cfg config.Chain) (wallet.KeySource, error) {
	source := wallet.KeySource{
		PrivateKeyHex: cfg.SignerPrivateKey,
		Passphrase:    cfg.SignerPassphrase,
	}
	if cfg.SignerPrivateKey == "" && cfg.SignerKeystore != "" {
		raw, err := os.ReadFile(cfg.SignerKeystore)
		if err != nil {
			return wallet.KeySource{}, fmt.Errorf("reading keystore: %w", err)
		}
		source.KeystoreJSON = raw
	}
	return source, nil
}

func newResolver(logger *zap.SugaredLogger, cfg config.Storage, reg prometheus.Registerer) (*gateway.Resolver, error) {
	return gateway.NewResolver(logger, &http.Client{}, gateway.Config{
		Gateways:       cfg.IPFSGateways,
		AttemptTimeout: cfg.GatewayTimeout,
		CacheSize:      cfg.ResolverCacheSize,
	}, gateway.NewMetrics(reg))
}

// newPinner returns nil when no pinning token is configured.
func newPinner(logger *zap.SugaredLogger, cfg config.Storage) (*pinning.Client, error) {
	if cfg.PinataJWT == "" {
		return nil, nil
	}
	return pinning.NewClient(logger, nil, cfg.PinataAPIURL, cfg.PinataJWT)
}

func newDownloader(logger *zap.SugaredLogger, resolver *gateway.Resolver, pinner *pinning.Client) *download.Downloader {
	if pinner == nil {
		return download.NewDownloader(logger, resolver, nil)
	}
	return download.NewDownloader(logger, resolver, pinner)
}
