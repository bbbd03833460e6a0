package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"marketsync/internal/errs"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

var (
	ErrNotConnected = errors.New("wallet not connected")
	ErrNoKey        = errors.New("no signing key configured")
)

// KeySource describes where the signing key comes from. A hex private key
// takes precedence over an encrypted keystore.
type KeySource struct {
	PrivateKeyHex string
	KeystoreJSON  []byte
	Passphrase    string
}

// Approver is asked before every signature. Returning false declines it.
type Approver func(tx *types.Transaction) bool

// State is published on every connect and disconnect.
type State struct {
	Connected bool
	Account   common.Address
	ChainID   *big.Int
}

// Session is an explicitly constructed signing identity with a
// connect/disconnect lifecycle.
type Session struct {
	logs     *zap.SugaredLogger
	client   ChainIDReader
	source   KeySource
	approver Approver

	mu      sync.RWMutex
	key     *ecdsa.PrivateKey
	account common.Address
	chainID *big.Int

	feed event.Feed
}

func NewSession(logger *zap.SugaredLogger, client ChainIDReader, source KeySource, approver Approver) *Session {
	return &Session{
		logs:     logger,
		client:   client,
		source:   source,
		approver: approver,
	}
}

// Connect unlocks the key and binds the session to the chain the client
// reports. Connecting an already connected session is a no-op.
func (s *Session) Connect(ctx context.Context) error {
	if s.Connected() {
		return nil
	}

	key, err := s.source.load()
	if err != nil {
		return fmt.Errorf("loading signing key: %w", err)
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("reading chain id: %w", err)
	}

	account := crypto.PubkeyToAddress(key.PublicKey)

	s.mu.Lock()
	s.key = key
	s.account = account
	s.chainID = chainID
	s.mu.Unlock()

	s.logs.Infow("wallet connected", "account", account.Hex(), "chain_id", chainID.String())
	s.feed.Send(State{Connected: true, Account: account, ChainID: chainID})
	return nil
}

// Disconnect drops the key. Subscribers see a disconnected state.
func (s *Session) Disconnect() {
	s.mu.Lock()
	if s.key == nil {
		s.mu.Unlock()
		return
	}
	account := s.account
	s.key = nil
	s.account = common.Address{}
	s.chainID = nil
	s.mu.Unlock()

	s.logs.Infow("wallet disconnected", "account", account.Hex())
	s.feed.Send(State{Connected: false, Account: account})
}

func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// Address returns the zero address while disconnected.
func (s *Session) Address() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *Session) ChainID() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chainID == nil {
		return nil
	}
	return new(big.Int).Set(s.chainID)
}

// State is a snapshot of the current connection.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Connected: s.key != nil, Account: s.account, ChainID: s.chainID}
}

// SubscribeState delivers every subsequent State change to ch. Sends block
// until ch accepts, so consumers should buffer.
func (s *Session) SubscribeState(ch chan<- State) event.Subscription {
	return s.feed.Subscribe(ch)
}

// TransactOpts builds signing options carrying value. The approver, if any,
// is consulted when the transaction is signed.
func (s *Session) TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	s.mu.RLock()
	key, chainID := s.key, s.chainID
	s.mu.RUnlock()

	if key == nil {
		return nil, ErrNotConnected
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("creating transactor: %w", err)
	}
	opts.Context = ctx
	if value != nil {
		opts.Value = new(big.Int).Set(value)
	}

	if s.approver != nil {
		sign := opts.Signer
		opts.Signer = func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if !s.approver(tx) {
				s.logs.Infow("signature declined", "account", from.Hex(), "to", tx.To(), "value", tx.Value().String())
				return nil, errs.ErrUserRejected
			}
			return sign(from, tx)
		}
	}

	return opts, nil
}

func (k KeySource) load() (*ecdsa.PrivateKey, error) {
	if k.PrivateKeyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(k.PrivateKeyHex), "0x"))
		if err != nil {
			return nil, fmt.Errorf("parsing private key: %w", err)
		}
		return key, nil
	}

	if len(k.KeystoreJSON) > 0 {
		key, err := keystore.DecryptKey(k.KeystoreJSON, k.Passphrase)
		if err != nil {
			return nil, fmt.Errorf("decrypting keystore: %w", err)
		}
		return key.PrivateKey, nil
	}

	return nil, ErrNoKey
}
