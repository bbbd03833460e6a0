package ethereum

import "marketsync/internal/ledger"

type PurchaseResult struct {
	Index int
	Event *ledger.PurchaseEvent
	Error error
}
