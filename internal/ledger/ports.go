package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Contract is the subset of *bind.BoundContract the client drives.
//
//counterfeiter:generate -o fake -fake-name Contract . Contract
type Contract interface {
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
}

// Backend is what bind.WaitMined needs to observe a receipt.
//
//counterfeiter:generate -o fake -fake-name Backend . Backend
type Backend interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	Address() common.Address
	TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error)
}
