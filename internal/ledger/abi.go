package ledger

import (
	_ "embed"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed marketplace.abi.json
var marketplaceABI string

// MarketplaceABI is the parsed interface of the marketplace contract.
var MarketplaceABI = mustParseABI(marketplaceABI)

const (
	EventProductCreated   = "ProductCreated"
	EventProductUpdated   = "ProductUpdated"
	EventProductPurchased = "ProductPurchased"
)

var (
	TopicProductCreated   = MarketplaceABI.Events[EventProductCreated].ID
	TopicProductUpdated   = MarketplaceABI.Events[EventProductUpdated].ID
	TopicProductPurchased = MarketplaceABI.Events[EventProductPurchased].ID
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic("parsing marketplace abi: " + err.Error())
	}
	return parsed
}
