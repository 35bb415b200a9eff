package ownership

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"lnr.org/internal/names"
)

var (
	ErrNotOwner          = errors.New("ownership: caller is not the owner")
	ErrDomainIsWrapped   = errors.New("ownership: domain is wrapped")
	ErrDomainNotWrapped  = errors.New("ownership: domain is not wrapped")
	ErrAlreadyRegistered = errors.New("ownership: domain already registered")
	ErrRemoteQuery       = errors.New("ownership: remote query failed")

	errMissingTokenID = errors.New("wrapper returned no token id")
)

// Step names the remote query that failed during resolution.
type Step string

const (
	StepOwnerLookup   Step = "owner-lookup"
	StepTokenIDLookup Step = "token-id-lookup"
	StepHolderLookup  Step = "holder-lookup"

	// Read paths outside resolution report through the same error type.
	StepNameResolve   Step = "name-resolve"
	StepPrimaryLookup Step = "primary-lookup"
	StepOwnerVerify   Step = "owner-verify"
)

func (s Step) String() string { return string(s) }

// RemoteQueryError tags a collaborator failure with the step that produced it.
type RemoteQueryError struct {
	Step   Step
	Domain names.Domain
	Err    error
}

func (e *RemoteQueryError) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("ownership: %s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("ownership: %s for %s: %v", e.Step, e.Domain, e.Err)
}

func (e *RemoteQueryError) Unwrap() error { return e.Err }

func (e *RemoteQueryError) Is(target error) bool { return target == ErrRemoteQuery }

// DenialError is a guard verdict turned into an error.
type DenialError struct {
	Reason          Reason
	Domain          names.Domain
	UnderlyingOwner *common.Address
}

func (e *DenialError) Error() string {
	if e.UnderlyingOwner != nil {
		return fmt.Sprintf("ownership: %s denied: %s (held by %s through the wrapper)", e.Domain, e.Reason, e.UnderlyingOwner.Hex())
	}
	return fmt.Sprintf("ownership: %s denied: %s", e.Domain, e.Reason)
}

func (e *DenialError) Is(target error) bool {
	return target == e.Reason.sentinel()
}
