package reconcile

import (
	"marketsync/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// Purchases is what an account bought inside the scanned block window.
type Purchases struct {
	Products  []ledger.Product `json:"products"`
	FromBlock uint64           `json:"fromBlock"`
	ToBlock   uint64           `json:"toBlock"`
}

type Sale struct {
	ProductID   uint64         `json:"productId"`
	Buyer       common.Address `json:"buyer"`
	TxHash      common.Hash    `json:"txHash"`
	BlockNumber uint64         `json:"blockNumber"`
}

// Sales lists an account's sales inside the scanned block window, oldest
// first.
type Sales struct {
	Sales     []Sale `json:"sales"`
	FromBlock uint64 `json:"fromBlock"`
	ToBlock   uint64 `json:"toBlock"`
}

type Config struct {
	PurchaseLookback uint64
	HistoryLookback  uint64
}
