// Package memchain is an in-process stand-in for the registrar, resolver and
// wrapper contracts. It keeps the contracts' access rules so the facade can be
// exercised end to end without a node.
package memchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"lnr.org/internal/names"
	"lnr.org/internal/ownership"
)

var ErrReverted = errors.New("memchain: execution reverted")

func revert(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReverted, fmt.Sprintf(format, args...))
}

// Addresses are the contract identities of a chain.
type Addresses struct {
	Registrar common.Address
	Resolver  common.Address
	Wrapper   common.Address
}

// Chain holds contract state. Use As to act on it as a given account.
type Chain struct {
	addrs Addresses

	mu          sync.RWMutex
	nonce       uint64
	owners      map[names.Identifier]common.Address
	controllers map[names.Identifier]common.Address
	primaries   map[common.Address]names.Identifier
	pending     map[names.Identifier]common.Address
	tokenOf     map[names.Identifier]*big.Int
	holders     map[string]common.Address // token id (decimal) -> holder
	nameOf      map[string]names.Identifier
	nextToken   int64
}

// New creates an empty chain.
func New(addrs Addresses) *Chain {
	return &Chain{
		addrs:       addrs,
		owners:      make(map[names.Identifier]common.Address),
		controllers: make(map[names.Identifier]common.Address),
		primaries:   make(map[common.Address]names.Identifier),
		pending:     make(map[names.Identifier]common.Address),
		tokenOf:     make(map[names.Identifier]*big.Int),
		holders:     make(map[string]common.Address),
		nameOf:      make(map[string]names.Identifier),
		nextToken:   1,
	}
}

func (c *Chain) Addresses() Addresses { return c.addrs }

// As returns a session whose mutations are sent from sender.
func (c *Chain) As(sender common.Address) *Session {
	return &Session{chain: c, sender: sender}
}

// tx must be called with mu held.
func (c *Chain) tx(to common.Address, method string) *types.Transaction {
	c.nonce++
	return types.NewTx(&types.LegacyTx{
		Nonce: c.nonce,
		To:    &to,
		Gas:   21000,
		Data:  []byte(method),
	})
}

// effectiveOwner must be called with mu held.
func (c *Chain) effectiveOwner(id names.Identifier) common.Address {
	owner := c.owners[id]
	if owner != c.addrs.Wrapper {
		return owner
	}
	if tok, ok := c.tokenOf[id]; ok {
		return c.holders[tok.String()]
	}
	return common.Address{}
}

// Session is one account's view of the chain. It implements the registrar,
// resolver and wrapper ports.
type Session struct {
	chain  *Chain
	sender common.Address
}

var (
	_ ownership.Registrar    = (*Session)(nil)
	_ ownership.NameResolver = (*Session)(nil)
	_ ownership.Wrapper      = (*Session)(nil)
)

func (s *Session) Sender() common.Address { return s.sender }

// --- registrar ---

func (s *Session) OwnerOf(ctx context.Context, id names.Identifier) (common.Address, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, err
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.owners[id], nil
}

func (s *Session) Transfer(ctx context.Context, id names.Identifier, to common.Address) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owners[id] != s.sender {
		return nil, revert("transfer: sender is not owner")
	}
	c.owners[id] = to
	delete(c.controllers, id)
	return c.tx(c.addrs.Registrar, "transfer"), nil
}

func (s *Session) Reserve(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if id.IsZero() {
		return nil, revert("reserve: empty name")
	}
	if c.owners[id] != (common.Address{}) {
		return nil, revert("reserve: already owned")
	}
	c.owners[id] = s.sender
	return c.tx(c.addrs.Registrar, "reserve"), nil
}

// --- resolver ---

func (s *Session) Resolve(ctx context.Context, domain names.Domain) (common.Address, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, err
	}
	id, err := names.Encode(domain)
	if err != nil {
		return common.Address{}, revert("resolve: %v", err)
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, addr := range []common.Address{c.effectiveOwner(id), c.controllers[id]} {
		if addr != (common.Address{}) && c.primaries[addr] == id {
			return addr, nil
		}
	}
	return common.Address{}, nil
}

func (s *Session) PrimaryOf(ctx context.Context, addr common.Address) (names.Identifier, error) {
	if err := ctx.Err(); err != nil {
		return names.Identifier{}, err
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	id := c.primaries[addr]
	if !c.verify(id, addr) {
		return names.Identifier{}, nil
	}
	return id, nil
}

func (s *Session) SetPrimary(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.verify(id, s.sender) {
		return nil, revert("setPrimary: not owner or controller")
	}
	c.primaries[s.sender] = id
	return c.tx(c.addrs.Resolver, "setPrimary"), nil
}

func (s *Session) UnsetPrimary(ctx context.Context) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.primaries, s.sender)
	return c.tx(c.addrs.Resolver, "unsetPrimary"), nil
}

func (s *Session) SetController(ctx context.Context, id names.Identifier, controller common.Address) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.effectiveOwner(id) != s.sender {
		return nil, revert("setController: not owner")
	}
	c.controllers[id] = controller
	return c.tx(c.addrs.Resolver, "setController"), nil
}

func (s *Session) UnsetController(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.effectiveOwner(id) != s.sender {
		return nil, revert("unsetController: not owner")
	}
	delete(c.controllers, id)
	return c.tx(c.addrs.Resolver, "unsetController"), nil
}

func (s *Session) VerifyIsNameOwner(ctx context.Context, id names.Identifier, addr common.Address) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verify(id, addr), nil
}

// verify must be called with mu held.
func (c *Chain) verify(id names.Identifier, addr common.Address) bool {
	if id.IsZero() || addr == (common.Address{}) {
		return false
	}
	return c.effectiveOwner(id) == addr || c.controllers[id] == addr
}

// --- wrapper ---

func (s *Session) TokenIDOf(ctx context.Context, id names.Identifier) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	tok, ok := c.tokenOf[id]
	if !ok {
		return nil, revert("nameToId: not wrapped")
	}
	return new(big.Int).Set(tok), nil
}

func (s *Session) HolderOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, err
	}
	c := s.chain
	c.mu.RLock()
	defer c.mu.RUnlock()
	holder, ok := c.holders[tokenID.String()]
	if !ok {
		return common.Address{}, revert("ownerOf: invalid token id")
	}
	return holder, nil
}

func (s *Session) CreateWrapper(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owners[id] != s.sender {
		return nil, revert("createWrapper: not owner")
	}
	c.pending[id] = s.sender
	return c.tx(c.addrs.Wrapper, "createWrapper"), nil
}

func (s *Session) Wrap(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[id] != s.sender || c.owners[id] != s.sender {
		return nil, revert("wrap: no wrapper created by owner")
	}
	tok := big.NewInt(c.nextToken)
	c.nextToken++
	delete(c.pending, id)
	c.owners[id] = c.addrs.Wrapper
	c.tokenOf[id] = tok
	c.holders[tok.String()] = s.sender
	c.nameOf[tok.String()] = id
	return c.tx(c.addrs.Wrapper, "wrap"), nil
}

func (s *Session) Unwrap(ctx context.Context, tokenID *big.Int) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tokenID.String()
	if holder, ok := c.holders[key]; !ok || holder != s.sender {
		return nil, revert("unwrap: not token holder")
	}
	id := c.nameOf[key]
	c.owners[id] = s.sender
	delete(c.tokenOf, id)
	delete(c.holders, key)
	delete(c.nameOf, key)
	return c.tx(c.addrs.Wrapper, "unwrap"), nil
}

func (s *Session) TransferToken(ctx context.Context, from, to common.Address, tokenID *big.Int) (*types.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.chain
	c.mu.Lock()
	defer c.mu.Unlock()
	key := tokenID.String()
	if holder, ok := c.holders[key]; !ok || holder != from || from != s.sender {
		return nil, revert("safeTransferFrom: caller is not token owner")
	}
	c.holders[key] = to
	return c.tx(c.addrs.Wrapper, "safeTransferFrom"), nil
}
