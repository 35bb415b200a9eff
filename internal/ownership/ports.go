// Package ownership determines who controls a .og name and whether a caller
// may mutate it.
package ownership

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"lnr.org/internal/names"
)

// Registrar is the legacy name registrar. A zero owner means unregistered.
type Registrar interface {
	OwnerOf(ctx context.Context, id names.Identifier) (common.Address, error)
	Transfer(ctx context.Context, id names.Identifier, to common.Address) (*types.Transaction, error)
	Reserve(ctx context.Context, id names.Identifier) (*types.Transaction, error)
}

// NameResolver is the resolver service: forward/reverse records and controllers.
type NameResolver interface {
	Resolve(ctx context.Context, domain names.Domain) (common.Address, error)
	PrimaryOf(ctx context.Context, addr common.Address) (names.Identifier, error)
	SetPrimary(ctx context.Context, id names.Identifier) (*types.Transaction, error)
	UnsetPrimary(ctx context.Context) (*types.Transaction, error)
	SetController(ctx context.Context, id names.Identifier, controller common.Address) (*types.Transaction, error)
	UnsetController(ctx context.Context, id names.Identifier) (*types.Transaction, error)
	VerifyIsNameOwner(ctx context.Context, id names.Identifier, addr common.Address) (bool, error)
}

// Wrapper holds registrar ownership on behalf of ERC-721 token holders.
type Wrapper interface {
	TokenIDOf(ctx context.Context, id names.Identifier) (*big.Int, error)
	HolderOf(ctx context.Context, tokenID *big.Int) (common.Address, error)
	CreateWrapper(ctx context.Context, id names.Identifier) (*types.Transaction, error)
	Wrap(ctx context.Context, id names.Identifier) (*types.Transaction, error)
	Unwrap(ctx context.Context, tokenID *big.Int) (*types.Transaction, error)
	TransferToken(ctx context.Context, from, to common.Address, tokenID *big.Int) (*types.Transaction, error)
}
