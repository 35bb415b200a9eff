// Package eth talks to the registrar, resolver and wrapper contracts over
// JSON-RPC. A Client implements the ownership ports; it signs mutations with
// the TransactOpts it was given and is read-only otherwise.
package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"lnr.org/internal/config"
	"lnr.org/internal/names"
	"lnr.org/internal/obs"
	"lnr.org/internal/ownership"
)

var (
	ErrNoSigner = errors.New("eth: no signer configured")
	ErrReverted = errors.New("eth: execution reverted")
)

const defaultCallTimeout = 10 * time.Second

const (
	serviceRegistrar = "registrar"
	serviceResolver  = "resolver"
	serviceWrapper   = "wrapper"
)

type Option func(*Client)

// WithSigner enables mutations signed by opts.From.
func WithSigner(opts *bind.TransactOpts) Option {
	return func(c *Client) {
		c.signer = opts
	}
}

// WithCallTimeout bounds every contract call.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Client binds the three contracts on one backend.
type Client struct {
	backend   bind.ContractBackend
	closer    func()
	contracts config.Contracts
	registrar *bind.BoundContract
	resolver  *bind.BoundContract
	wrapper   *bind.BoundContract
	signer    *bind.TransactOpts
	timeout   time.Duration
}

var (
	_ ownership.Registrar    = (*Client)(nil)
	_ ownership.NameResolver = (*Client)(nil)
	_ ownership.Wrapper      = (*Client)(nil)
)

// Dial connects to a JSON-RPC endpoint.
func Dial(ctx context.Context, rawURL string, contracts config.Contracts, opts ...Option) (*Client, error) {
	conn, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("eth: dial: %w", err)
	}
	c := NewClient(conn, contracts, opts...)
	c.closer = conn.Close
	return c, nil
}

// NewClient binds the contracts on an existing backend.
func NewClient(backend bind.ContractBackend, contracts config.Contracts, opts ...Option) *Client {
	c := &Client{
		backend:   backend,
		contracts: contracts,
		registrar: bind.NewBoundContract(contracts.Registrar, parsedRegistrarABI, backend, backend, backend),
		resolver:  bind.NewBoundContract(contracts.Resolver, parsedResolverABI, backend, backend, backend),
		wrapper:   bind.NewBoundContract(contracts.Wrapper, parsedWrapperABI, backend, backend, backend),
		timeout:   defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the RPC connection.
func (c *Client) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	c.closer()
	return nil
}

func (c *Client) Contracts() config.Contracts { return c.contracts }

// Sender is the signing address, zero for a read-only client.
func (c *Client) Sender() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.From
}

// Ping fetches the latest header; it backs readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	start := time.Now()
	_, err := c.backend.HeaderByNumber(ctx, nil)
	obs.ObserveRemoteCall("node", "header", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("eth: ping: %w", err)
	}
	return nil
}

// --- registrar ---

func (c *Client) OwnerOf(ctx context.Context, id names.Identifier) (common.Address, error) {
	out, err := c.call(ctx, serviceRegistrar, c.registrar, "owner", [32]byte(id))
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *Client) Transfer(ctx context.Context, id names.Identifier, to common.Address) (*types.Transaction, error) {
	return c.transact(ctx, serviceRegistrar, c.registrar, "transfer", [32]byte(id), to)
}

func (c *Client) Reserve(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	return c.transact(ctx, serviceRegistrar, c.registrar, "reserve", [32]byte(id))
}

// --- resolver ---

func (c *Client) Resolve(ctx context.Context, domain names.Domain) (common.Address, error) {
	out, err := c.call(ctx, serviceResolver, c.resolver, "resolve", domain.String())
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *Client) PrimaryOf(ctx context.Context, addr common.Address) (names.Identifier, error) {
	out, err := c.call(ctx, serviceResolver, c.resolver, "primary", addr)
	if err != nil {
		return names.Identifier{}, err
	}
	return names.Identifier(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

func (c *Client) VerifyIsNameOwner(ctx context.Context, id names.Identifier, addr common.Address) (bool, error) {
	out, err := c.call(ctx, serviceResolver, c.resolver, "verifyIsNameOwner", [32]byte(id), addr)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *Client) SetPrimary(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	return c.transact(ctx, serviceResolver, c.resolver, "setPrimary", [32]byte(id))
}

func (c *Client) UnsetPrimary(ctx context.Context) (*types.Transaction, error) {
	return c.transact(ctx, serviceResolver, c.resolver, "unsetPrimary")
}

func (c *Client) SetController(ctx context.Context, id names.Identifier, controller common.Address) (*types.Transaction, error) {
	return c.transact(ctx, serviceResolver, c.resolver, "setController", [32]byte(id), controller)
}

func (c *Client) UnsetController(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	return c.transact(ctx, serviceResolver, c.resolver, "unsetController", [32]byte(id))
}

// --- wrapper ---

func (c *Client) TokenIDOf(ctx context.Context, id names.Identifier) (*big.Int, error) {
	out, err := c.call(ctx, serviceWrapper, c.wrapper, "nameToId", [32]byte(id))
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Client) HolderOf(ctx context.Context, tokenID *big.Int) (common.Address, error) {
	out, err := c.call(ctx, serviceWrapper, c.wrapper, "ownerOf", tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *Client) CreateWrapper(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	return c.transact(ctx, serviceWrapper, c.wrapper, "createWrapper", [32]byte(id))
}

func (c *Client) Wrap(ctx context.Context, id names.Identifier) (*types.Transaction, error) {
	return c.transact(ctx, serviceWrapper, c.wrapper, "wrap", [32]byte(id))
}

func (c *Client) Unwrap(ctx context.Context, tokenID *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, serviceWrapper, c.wrapper, "unwrap", tokenID)
}

func (c *Client) TransferToken(ctx context.Context, from, to common.Address, tokenID *big.Int) (*types.Transaction, error) {
	return c.transact(ctx, serviceWrapper, c.wrapper, "safeTransferFrom", from, to, tokenID)
}

// Helpers -----------------------------------------------------------------

func (c *Client) call(ctx context.Context, service string, contract *bind.BoundContract, method string, args ...any) ([]any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	var out []any
	err := mapError(contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...))
	if err == nil && len(out) == 0 {
		err = fmt.Errorf("eth: empty result")
	}
	obs.ObserveRemoteCall(service, method, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", service, method, err)
	}
	return out, nil
}

func (c *Client) transact(ctx context.Context, service string, contract *bind.BoundContract, method string, args ...any) (*types.Transaction, error) {
	if c.signer == nil {
		return nil, ErrNoSigner
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	opts := *c.signer
	opts.Context = ctx
	start := time.Now()
	tx, err := contract.Transact(&opts, method, args...)
	err = mapError(err)
	obs.ObserveRemoteCall(service, method, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", service, method, err)
	}
	return tx, nil
}

// mapError tags contract reverts with ErrReverted and keeps the decoded
// revert reason when the node returned one.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := revertReason(dataErr.ErrorData()); ok {
			return fmt.Errorf("%w: %s", ErrReverted, reason)
		}
	}
	if strings.Contains(err.Error(), "execution reverted") {
		return fmt.Errorf("%w: %v", ErrReverted, err)
	}
	return err
}

func revertReason(data any) (string, bool) {
	s, ok := data.(string)
	if !ok {
		return "", false
	}
	raw, err := hexutil.Decode(s)
	if err != nil {
		return "", false
	}
	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}
	return reason, true
}
