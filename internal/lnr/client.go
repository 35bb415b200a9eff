// Package lnr is the entry point for reading and changing .og names. Every
// operation validates its input, checks authorization where needed and then
// issues a single contract call.
package lnr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"lnr.org/internal/audit"
	"lnr.org/internal/names"
	"lnr.org/internal/obs"
	"lnr.org/internal/ownership"
)

// Names is the read surface shared by the HTTP API and the CLI.
type Names interface {
	ResolveName(ctx context.Context, name string) (common.Address, bool, error)
	LookupAddress(ctx context.Context, addr common.Address) (names.Domain, bool, error)
	Owner(ctx context.Context, name string) (ownership.Record, error)
	VerifyIsNameOwner(ctx context.Context, name string, addr common.Address) (bool, error)
}

// Client implements Names plus the mutating operations for one caller.
type Client struct {
	registrar ownership.Registrar
	resolver  ownership.NameResolver
	wrapper   ownership.Wrapper
	owners    *ownership.Resolver
	guard     *ownership.Guard
	caller    common.Address
	logger    *slog.Logger
}

var _ Names = (*Client)(nil)

type Option func(*Client)

// WithCaller sets the address authorization is checked against. When the
// ports sign as a known sender it must match that sender.
func WithCaller(addr common.Address) Option {
	return func(c *Client) {
		c.caller = addr
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New wires a client. wrapperAddr is the wrapper contract's own address.
func New(registrar ownership.Registrar, resolver ownership.NameResolver, wrapper ownership.Wrapper, wrapperAddr common.Address, opts ...Option) (*Client, error) {
	if registrar == nil || resolver == nil || wrapper == nil {
		return nil, fmt.Errorf("lnr: registrar, resolver and wrapper are required")
	}
	if wrapperAddr == (common.Address{}) {
		return nil, fmt.Errorf("lnr: wrapper address is required")
	}
	owners := ownership.NewResolver(registrar, wrapper, wrapperAddr)
	c := &Client{
		registrar: registrar,
		resolver:  resolver,
		wrapper:   wrapper,
		owners:    owners,
		guard:     ownership.NewGuard(owners),
	}
	for _, opt := range opts {
		opt(c)
	}
	signer, err := signingAddress(registrar, resolver, wrapper)
	if err != nil {
		return nil, err
	}
	switch {
	case c.caller == (common.Address{}):
		c.caller = signer
	case signer != (common.Address{}) && signer != c.caller:
		return nil, fmt.Errorf("%w: caller %s, signer %s", ErrCallerMismatch, c.caller.Hex(), signer.Hex())
	}
	if c.logger == nil {
		c.logger = obs.Logger()
	}
	return c, nil
}

// sender is implemented by ports that sign their own transactions.
type sender interface {
	Sender() common.Address
}

// signingAddress returns the address the ports send mutations from, zero when
// none of them sign.
func signingAddress(ports ...any) (common.Address, error) {
	var signer common.Address
	for _, p := range ports {
		s, ok := p.(sender)
		if !ok {
			continue
		}
		addr := s.Sender()
		if addr == (common.Address{}) {
			continue
		}
		if signer != (common.Address{}) && signer != addr {
			return common.Address{}, fmt.Errorf("%w: ports sign as %s and %s", ErrCallerMismatch, signer.Hex(), addr.Hex())
		}
		signer = addr
	}
	return signer, nil
}

// Caller returns the configured signing address.
func (c *Client) Caller() common.Address { return c.caller }

// --- reads -----------------------------------------------------------------

// ResolveName returns the address a name points to; false when unset.
func (c *Client) ResolveName(ctx context.Context, name string) (common.Address, bool, error) {
	domain, err := names.Validate(name)
	if err != nil {
		return common.Address{}, false, err
	}
	addr, err := c.resolver.Resolve(ctx, domain)
	if err != nil {
		return common.Address{}, false, &ownership.RemoteQueryError{Step: ownership.StepNameResolve, Domain: domain, Err: err}
	}
	if addr == (common.Address{}) {
		return common.Address{}, false, nil
	}
	return addr, true, nil
}

// LookupAddress returns the primary name of addr; false when none is set.
func (c *Client) LookupAddress(ctx context.Context, addr common.Address) (names.Domain, bool, error) {
	id, err := c.resolver.PrimaryOf(ctx, addr)
	if err != nil {
		return "", false, &ownership.RemoteQueryError{Step: ownership.StepPrimaryLookup, Err: err}
	}
	if id.IsZero() {
		return "", false, nil
	}
	domain, err := names.IdentifierToDomain(id)
	if err != nil {
		return "", false, err
	}
	return domain, true, nil
}

// Owner resolves who controls name and how.
func (c *Client) Owner(ctx context.Context, name string) (ownership.Record, error) {
	domain, err := names.Validate(name)
	if err != nil {
		return ownership.Record{}, err
	}
	return c.owners.Resolve(ctx, domain)
}

// VerifyIsNameOwner asks the resolver whether addr owns or controls name.
func (c *Client) VerifyIsNameOwner(ctx context.Context, name string, addr common.Address) (bool, error) {
	domain, id, err := prepare(name)
	if err != nil {
		return false, err
	}
	ok, err := c.resolver.VerifyIsNameOwner(ctx, id, addr)
	if err != nil {
		return false, &ownership.RemoteQueryError{Step: ownership.StepOwnerVerify, Domain: domain, Err: err}
	}
	return ok, nil
}

// --- resolver mutations ----------------------------------------------------

// SetPrimary makes name the caller's primary name. The caller must own or
// control it according to the resolver.
func (c *Client) SetPrimary(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "set_primary"
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	ok, err := c.resolver.VerifyIsNameOwner(ctx, id, c.caller)
	if err != nil {
		return nil, &ownership.RemoteQueryError{Step: ownership.StepOwnerVerify, Domain: domain, Err: err}
	}
	if !ok {
		c.denied(ctx, op, domain, ownership.ReasonNotOwner)
		return nil, &ownership.DenialError{Reason: ownership.ReasonNotOwner, Domain: domain}
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.resolver.SetPrimary(ctx, id)
	})
}

// UnsetPrimary clears the caller's primary name.
func (c *Client) UnsetPrimary(ctx context.Context) (*types.Transaction, error) {
	const op = "unset_primary"
	if c.caller == (common.Address{}) {
		return nil, ErrNoCaller
	}
	return c.submit(ctx, op, "", func() (*types.Transaction, error) {
		return c.resolver.UnsetPrimary(ctx)
	})
}

// SetController delegates resolver control of name to controller.
func (c *Client) SetController(ctx context.Context, name string, controller common.Address) (*types.Transaction, error) {
	const op = "set_controller"
	if controller == (common.Address{}) {
		return nil, fmt.Errorf("%w: controller must be non-zero", ErrInvalidAddress)
	}
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	if _, err := c.requireUnwrapped(ctx, op, domain); err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.resolver.SetController(ctx, id, controller)
	})
}

// UnsetController removes the delegated controller of name.
func (c *Client) UnsetController(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "unset_controller"
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	if _, err := c.requireUnwrapped(ctx, op, domain); err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.resolver.UnsetController(ctx, id)
	})
}

// --- registrar mutations ---------------------------------------------------

// Transfer hands registrar ownership of an unwrapped name to another address.
func (c *Client) Transfer(ctx context.Context, name string, to common.Address) (*types.Transaction, error) {
	const op = "transfer"
	if to == (common.Address{}) {
		return nil, fmt.Errorf("%w: recipient must be non-zero", ErrInvalidAddress)
	}
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	if _, err := c.requireUnwrapped(ctx, op, domain); err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.registrar.Transfer(ctx, id, to)
	})
}

// Reserve claims an unregistered name for the caller.
func (c *Client) Reserve(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "reserve"
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	rec, err := c.owners.Resolve(ctx, domain)
	if err != nil {
		return nil, err
	}
	if !rec.Absent() {
		c.logger.DebugContext(ctx, "lnr reserve refused", "domain", domain.String(), "mode", rec.Mode.String())
		return nil, fmt.Errorf("%w: %s", ownership.ErrAlreadyRegistered, domain)
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.registrar.Reserve(ctx, id)
	})
}

// --- wrapper mutations -----------------------------------------------------

// CreateWrapper prepares the wrapper to receive name from the caller.
func (c *Client) CreateWrapper(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "create_wrapper"
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	if _, err := c.requireUnwrapped(ctx, op, domain); err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.wrapper.CreateWrapper(ctx, id)
	})
}

// Wrap moves name into the wrapper and mints its token to the caller.
func (c *Client) Wrap(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "wrap"
	domain, id, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	if _, err := c.requireUnwrapped(ctx, op, domain); err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.wrapper.Wrap(ctx, id)
	})
}

// Unwrap burns the caller's token and returns registrar ownership to them.
func (c *Client) Unwrap(ctx context.Context, name string) (*types.Transaction, error) {
	const op = "unwrap"
	domain, _, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	v, err := c.requireHolder(ctx, op, domain)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.wrapper.Unwrap(ctx, v.Record.TokenID)
	})
}

// TransferWrapped moves the caller's token for name to another address.
func (c *Client) TransferWrapped(ctx context.Context, name string, to common.Address) (*types.Transaction, error) {
	const op = "transfer_wrapped"
	if to == (common.Address{}) {
		return nil, fmt.Errorf("%w: recipient must be non-zero", ErrInvalidAddress)
	}
	domain, _, err := c.prepareMutation(name)
	if err != nil {
		return nil, err
	}
	v, err := c.requireHolder(ctx, op, domain)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, op, domain, func() (*types.Transaction, error) {
		return c.wrapper.TransferToken(ctx, c.caller, to, v.Record.TokenID)
	})
}

// --- helpers ---------------------------------------------------------------

func prepare(name string) (names.Domain, names.Identifier, error) {
	domain, err := names.Validate(name)
	if err != nil {
		return "", names.Identifier{}, err
	}
	id, err := names.Encode(domain)
	if err != nil {
		return "", names.Identifier{}, err
	}
	return domain, id, nil
}

func (c *Client) prepareMutation(name string) (names.Domain, names.Identifier, error) {
	if c.caller == (common.Address{}) {
		return "", names.Identifier{}, ErrNoCaller
	}
	return prepare(name)
}

func (c *Client) requireUnwrapped(ctx context.Context, op string, domain names.Domain) (ownership.Verdict, error) {
	v, err := c.guard.RequireUnwrappedOwnership(ctx, domain, c.caller)
	if err != nil {
		return v, err
	}
	if err := v.Err(); err != nil {
		c.denied(ctx, op, domain, v.Reason)
		return v, err
	}
	return v, nil
}

func (c *Client) requireHolder(ctx context.Context, op string, domain names.Domain) (ownership.Verdict, error) {
	v, err := c.guard.RequireHolderForWrappedOps(ctx, domain, c.caller)
	if err != nil {
		return v, err
	}
	if err := v.Err(); err != nil {
		c.denied(ctx, op, domain, v.Reason)
		return v, err
	}
	return v, nil
}

// submit issues the one mutating call of an operation and records the outcome.
func (c *Client) submit(ctx context.Context, op string, domain names.Domain, call func() (*types.Transaction, error)) (*types.Transaction, error) {
	tx, err := call()
	if err != nil {
		c.logger.WarnContext(ctx, "lnr mutation failed", "op", op, "domain", domain.String(), "error", err)
		c.record(ctx, op, domain, map[string]any{"outcome": "failed", "error": err.Error()})
		return nil, &RemoteMutationError{Op: op, Domain: domain, Err: err}
	}
	fields := map[string]any{"outcome": "submitted"}
	if tx != nil {
		fields["tx"] = tx.Hash().Hex()
	}
	c.logger.DebugContext(ctx, "lnr mutation submitted", "op", op, "domain", domain.String())
	c.record(ctx, op, domain, fields)
	return tx, nil
}

func (c *Client) denied(ctx context.Context, op string, domain names.Domain, reason ownership.Reason) {
	c.logger.DebugContext(ctx, "lnr mutation denied", "op", op, "domain", domain.String(), "reason", string(reason))
	c.record(ctx, op, domain, map[string]any{"outcome": "denied", "reason": string(reason)})
}

func (c *Client) record(ctx context.Context, op string, domain names.Domain, fields map[string]any) {
	fields["caller"] = c.caller.Hex()
	if domain != "" {
		fields["domain"] = domain.String()
	}
	if err := audit.LogEvent(ctx, "lnr."+op, fields); err != nil {
		c.logger.ErrorContext(ctx, "audit log failed", "op", op, "error", err)
	}
}
