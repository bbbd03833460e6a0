package config_test

import (
	"os"
	"time"

	"marketsync/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	keys := []string{
		"API_PORT", "ETH_NODE_URL", "ETH_WS_URL", "MARKETPLACE_ADDRESS",
		"SIGNER_PRIVATE_KEY", "SIGNER_KEYSTORE", "SIGNER_PASSPHRASE",
		"DB_CONNECTION_URL", "JWT_SECRET", "JWT_TTL", "OPERATOR_USERNAME", "OPERATOR_PASSWORD_HASH",
		"PINATA_JWT", "PINATA_API_URL", "IPFS_GATEWAYS", "IPFS_GATEWAY_TIMEOUT",
		"RESOLVER_CACHE_SIZE", "PURCHASE_LOOKBACK_BLOCKS", "HISTORY_LOOKBACK_BLOCKS",
		"DOWNLOAD_DIR", "TOKEN_SYMBOL", "TX_CONFIRM_TIMEOUT", "INBOX_SIZE",
	}

	BeforeEach(func() {
		saved := map[string]string{}
		for _, k := range keys {
			if v, ok := os.LookupEnv(k); ok {
				saved[k] = v
			}
			Expect(os.Unsetenv(k)).To(Succeed())
		}
		DeferCleanup(func() {
			for _, k := range keys {
				_ = os.Unsetenv(k)
			}
			for k, v := range saved {
				_ = os.Setenv(k, v)
			}
		})
	})

	setRequired := func() {
		GinkgoT().Setenv("ETH_NODE_URL", "https://sepolia.example")
		GinkgoT().Setenv("MARKETPLACE_ADDRESS", "0x52e244B0aAcB70DD7F1eD68DF7D965BE8f62193A")
		GinkgoT().Setenv("SIGNER_PRIVATE_KEY", "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
		GinkgoT().Setenv("DB_CONNECTION_URL", "postgres://localhost/marketsync")
		GinkgoT().Setenv("JWT_SECRET", "secret")
		GinkgoT().Setenv("OPERATOR_USERNAME", "operator")
		GinkgoT().Setenv("OPERATOR_PASSWORD_HASH", "$2a$10$hash")
	}

	Describe("NewApp", func() {
		It("applies defaults", func() {
			setRequired()

			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Port).To(Equal("8080"))
			Expect(app.TokenTTL).To(Equal(24 * time.Hour))
			Expect(app.PurchaseLookback).To(Equal(uint64(200_000)))
			Expect(app.HistoryLookback).To(Equal(uint64(10_000)))
			Expect(app.GatewayTimeout).To(Equal(15 * time.Second))
			Expect(app.TokenSymbol).To(Equal("ETH"))
			Expect(app.PinataAPIURL).To(Equal("https://api.pinata.cloud"))
			Expect(app.IPFSGateways).To(BeEmpty())
		})

		It("reads lists and durations", func() {
			setRequired()
			GinkgoT().Setenv("IPFS_GATEWAYS", "https://a.example,https://b.example")
			GinkgoT().Setenv("TX_CONFIRM_TIMEOUT", "45s")
			GinkgoT().Setenv("PURCHASE_LOOKBACK_BLOCKS", "5000")

			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(app.IPFSGateways).To(Equal([]string{"https://a.example", "https://b.example"}))
			Expect(app.TxConfirmTimeout).To(Equal(45 * time.Second))
			Expect(app.PurchaseLookback).To(Equal(uint64(5000)))
		})

		It("fails fast on a missing required key", func() {
			setRequired()
			Expect(os.Unsetenv("JWT_SECRET")).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
		})

		It("requires a signer", func() {
			setRequired()
			Expect(os.Unsetenv("SIGNER_PRIVATE_KEY")).To(Succeed())

			_, err := config.NewApp()
			Expect(err).To(MatchError(config.ErrNoSigner))
		})

		It("accepts a keystore instead of a raw key", func() {
			setRequired()
			Expect(os.Unsetenv("SIGNER_PRIVATE_KEY")).To(Succeed())
			GinkgoT().Setenv("SIGNER_KEYSTORE", "/etc/marketsync/key.json")

			app, err := config.NewApp()
			Expect(err).NotTo(HaveOccurred())
			Expect(app.SignerKeystore).To(Equal("/etc/marketsync/key.json"))
		})
	})

	Describe("NewChain", func() {
		It("does not need the API settings", func() {
			GinkgoT().Setenv("ETH_NODE_URL", "https://sepolia.example")
			GinkgoT().Setenv("MARKETPLACE_ADDRESS", "0x52e244B0aAcB70DD7F1eD68DF7D965BE8f62193A")

			chain, err := config.NewChain()
			Expect(err).NotTo(HaveOccurred())
			Expect(chain.NodeURL).To(Equal("https://sepolia.example"))
			Expect(chain.RequireSigner()).To(MatchError(config.ErrNoSigner))
		})
	})

	Describe("NewStorage", func() {
		It("needs nothing at all", func() {
			storage, err := config.NewStorage()
			Expect(err).NotTo(HaveOccurred())
			Expect(storage.DownloadDir).To(Equal("downloads"))
			Expect(storage.ResolverCacheSize).To(Equal(256))
		})
	})
})
