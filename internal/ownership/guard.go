package ownership

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"lnr.org/internal/names"
)

// Reason explains a denied verdict.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonNotOwner         Reason = "not_owner"
	ReasonDomainIsWrapped  Reason = "domain_is_wrapped"
	ReasonDomainNotWrapped Reason = "domain_not_wrapped"
)

func (r Reason) sentinel() error {
	switch r {
	case ReasonNotOwner:
		return ErrNotOwner
	case ReasonDomainIsWrapped:
		return ErrDomainIsWrapped
	case ReasonDomainNotWrapped:
		return ErrDomainNotWrapped
	default:
		return nil
	}
}

// Verdict is the outcome of an authorization check. UnderlyingOwner is only
// set for ReasonDomainIsWrapped. Record is the resolution the verdict used.
type Verdict struct {
	Domain          names.Domain
	Permitted       bool
	Reason          Reason
	Owner           common.Address
	UnderlyingOwner *common.Address
	Record          Record
}

// Err returns nil for a permitted verdict and a *DenialError otherwise.
func (v Verdict) Err() error {
	if v.Permitted {
		return nil
	}
	return &DenialError{Reason: v.Reason, Domain: v.Domain, UnderlyingOwner: v.UnderlyingOwner}
}

// RecordSource resolves ownership records; *Resolver satisfies it.
type RecordSource interface {
	Resolve(ctx context.Context, domain names.Domain) (Record, error)
}

// Guard decides whether a caller may mutate a name. It never mutates state.
type Guard struct {
	records RecordSource
}

func NewGuard(records RecordSource) *Guard {
	return &Guard{records: records}
}

// RequireUnwrappedOwnership permits only the direct registrar owner. A caller
// holding the name through the wrapper is denied with ReasonDomainIsWrapped
// and reported as the underlying owner.
func (g *Guard) RequireUnwrappedOwnership(ctx context.Context, domain names.Domain, caller common.Address) (Verdict, error) {
	rec, err := g.records.Resolve(ctx, domain)
	if err != nil {
		return Verdict{}, err
	}
	v := Verdict{Domain: domain, Record: rec}
	switch {
	case rec.Absent() || rec.Controller != caller:
		v.Reason = ReasonNotOwner
	case rec.Indirected():
		holder := caller
		v.Reason = ReasonDomainIsWrapped
		v.UnderlyingOwner = &holder
	default:
		v.Permitted = true
		v.Owner = caller
	}
	return v, nil
}

// RequireHolderForWrappedOps permits only the token holder of a wrapped name.
func (g *Guard) RequireHolderForWrappedOps(ctx context.Context, domain names.Domain, caller common.Address) (Verdict, error) {
	rec, err := g.records.Resolve(ctx, domain)
	if err != nil {
		return Verdict{}, err
	}
	v := Verdict{Domain: domain, Record: rec}
	switch {
	case rec.Mode == ModeDirect:
		v.Reason = ReasonDomainNotWrapped
	case rec.Indirected() && rec.Controller == caller:
		v.Permitted = true
		v.Owner = caller
	default:
		v.Reason = ReasonNotOwner
	}
	return v, nil
}
