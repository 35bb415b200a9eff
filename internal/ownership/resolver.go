package ownership

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lnr.org/internal/names"
)

const tracerName = "lnr.org/internal/ownership"

// Resolver finds the controlling address of a name. It follows at most one
// hop through the wrapper and keeps no state between calls.
type Resolver struct {
	registrar   Registrar
	wrapper     Wrapper
	wrapperAddr common.Address
	tracer      trace.Tracer
}

// NewResolver wires the resolver. wrapperAddr is the wrapper contract's own
// address as recorded by the registrar for wrapped names.
func NewResolver(registrar Registrar, wrapper Wrapper, wrapperAddr common.Address) *Resolver {
	return &Resolver{
		registrar:   registrar,
		wrapper:     wrapper,
		wrapperAddr: wrapperAddr,
		tracer:      otel.Tracer(tracerName),
	}
}

// WrapperAddress returns the configured wrapper identity.
func (r *Resolver) WrapperAddress() common.Address { return r.wrapperAddr }

// Resolve returns the ownership record of domain. An unregistered name is an
// absent record, not an error.
func (r *Resolver) Resolve(ctx context.Context, domain names.Domain) (Record, error) {
	id, err := names.Encode(domain)
	if err != nil {
		return Record{}, err
	}

	ctx, span := r.tracer.Start(ctx, "ownership.Resolve", trace.WithAttributes(
		attribute.String("lnr.domain", domain.String()),
	))
	defer span.End()

	owner, err := r.ownerOf(ctx, domain, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Record{}, err
	}
	switch owner {
	case (common.Address{}):
		span.SetAttributes(attribute.String("lnr.mode", ModeAbsent.String()))
		return absent(), nil
	case r.wrapperAddr:
		rec, err := r.throughWrapper(ctx, domain, id)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Record{}, err
		}
		span.SetAttributes(attribute.String("lnr.mode", rec.Mode.String()))
		return rec, nil
	default:
		span.SetAttributes(attribute.String("lnr.mode", ModeDirect.String()))
		return direct(owner), nil
	}
}

func (r *Resolver) ownerOf(ctx context.Context, domain names.Domain, id names.Identifier) (common.Address, error) {
	owner, err := r.registrar.OwnerOf(ctx, id)
	if err != nil {
		return common.Address{}, &RemoteQueryError{Step: StepOwnerLookup, Domain: domain, Err: err}
	}
	return owner, nil
}

// throughWrapper runs the second stage: token id first, then its holder.
func (r *Resolver) throughWrapper(ctx context.Context, domain names.Domain, id names.Identifier) (Record, error) {
	tokenID, err := r.wrapper.TokenIDOf(ctx, id)
	if err != nil {
		return Record{}, &RemoteQueryError{Step: StepTokenIDLookup, Domain: domain, Err: err}
	}
	if tokenID == nil {
		return Record{}, &RemoteQueryError{Step: StepTokenIDLookup, Domain: domain, Err: errMissingTokenID}
	}
	holder, err := r.wrapper.HolderOf(ctx, tokenID)
	if err != nil {
		return Record{}, &RemoteQueryError{Step: StepHolderLookup, Domain: domain, Err: err}
	}
	return indirected(holder, tokenID), nil
}
