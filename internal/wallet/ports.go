package wallet

import (
	"context"
	"math/big"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainIDReader . ChainIDReader
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}
