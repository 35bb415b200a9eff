package ownership

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Mode tags how a name is held.
type Mode int

const (
	ModeAbsent Mode = iota
	ModeDirect
	ModeIndirected
)

// String reports the mode in the registry's wrapped/unwrapped vocabulary.
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "unwrapped"
	case ModeIndirected:
		return "wrapped"
	default:
		return "absent"
	}
}

// Record is the outcome of a single resolution. Controller is set unless the
// name is absent; TokenID is set only for ModeIndirected.
type Record struct {
	Mode       Mode
	Controller common.Address
	TokenID    *big.Int
}

func (r Record) Absent() bool     { return r.Mode == ModeAbsent }
func (r Record) Indirected() bool { return r.Mode == ModeIndirected }

func absent() Record { return Record{Mode: ModeAbsent} }

func direct(owner common.Address) Record {
	return Record{Mode: ModeDirect, Controller: owner}
}

func indirected(holder common.Address, tokenID *big.Int) Record {
	return Record{Mode: ModeIndirected, Controller: holder, TokenID: new(big.Int).Set(tokenID)}
}
