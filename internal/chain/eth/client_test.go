package eth

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lnr.org/internal/config"
	"lnr.org/internal/names"
)

var (
	contracts = config.Contracts{
		Registrar: common.HexToAddress(config.DefaultRegistrarAddress),
		Resolver:  common.HexToAddress(config.DefaultResolverAddress),
		Wrapper:   common.HexToAddress(config.DefaultWrapperAddress),
	}
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
)

type handler func(method string, args []any) ([]any, error)

// fakeBackend answers eth_call by decoding the calldata against the bound
// ABI. Methods outside CallContract, CodeAt and HeaderByNumber panic.
type fakeBackend struct {
	bind.ContractBackend
	handlers  map[common.Address]handler
	headerErr error
	seen      []string
}

func (f *fakeBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	parsed := map[common.Address]abi.ABI{
		contracts.Registrar: parsedRegistrarABI,
		contracts.Resolver:  parsedResolverABI,
		contracts.Wrapper:   parsedWrapperABI,
	}[*msg.To]
	method, err := parsed.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	f.seen = append(f.seen, method.Name)
	out, err := f.handlers[*msg.To](method.Name, args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	if f.headerErr != nil {
		return nil, f.headerErr
	}
	return &types.Header{Number: big.NewInt(1)}, nil
}

type revertError struct{ data string }

func (e revertError) Error() string  { return "execution reverted" }
func (e revertError) ErrorData() any { return e.data }

func encodeRevert(t *testing.T, reason string) string {
	t.Helper()
	strType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: strType}}.Pack(reason)
	require.NoError(t, err)
	selector := crypto.Keccak256([]byte("Error(string)"))[:4]
	return hexutil.Encode(append(selector, packed...))
}

func TestABIsExposeContractMethods(t *testing.T) {
	cases := map[string]struct {
		parsed  abi.ABI
		methods []string
	}{
		"registrar": {parsedRegistrarABI, []string{"owner", "transfer", "reserve"}},
		"resolver":  {parsedResolverABI, []string{"resolve", "primary", "verifyIsNameOwner", "setPrimary", "unsetPrimary", "setController", "unsetController"}},
		"wrapper":   {parsedWrapperABI, []string{"nameToId", "ownerOf", "createWrapper", "wrap", "unwrap", "safeTransferFrom"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, m := range tc.methods {
				_, ok := tc.parsed.Methods[m]
				assert.True(t, ok, m)
			}
		})
	}
}

func TestReadsDecodeContractResults(t *testing.T) {
	ctx := context.Background()
	id, err := names.DomainToIdentifier("test.og")
	require.NoError(t, err)

	backend := &fakeBackend{handlers: map[common.Address]handler{
		contracts.Registrar: func(method string, args []any) ([]any, error) {
			assert.Equal(t, [32]byte(id), args[0])
			return []any{contracts.Wrapper}, nil
		},
		contracts.Wrapper: func(method string, args []any) ([]any, error) {
			switch method {
			case "nameToId":
				return []any{big.NewInt(7)}, nil
			default:
				assert.Equal(t, 0, big.NewInt(7).Cmp(args[0].(*big.Int)))
				return []any{alice}, nil
			}
		},
		contracts.Resolver: func(method string, args []any) ([]any, error) {
			switch method {
			case "resolve":
				assert.Equal(t, "test.og", args[0])
				return []any{alice}, nil
			case "primary":
				return []any{[32]byte(id)}, nil
			default:
				return []any{true}, nil
			}
		},
	}}
	c := NewClient(backend, contracts)

	owner, err := c.OwnerOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, contracts.Wrapper, owner)

	tok, err := c.TokenIDOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), tok.Int64())

	holder, err := c.HolderOf(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, alice, holder)

	addr, err := c.Resolve(ctx, "test.og")
	require.NoError(t, err)
	assert.Equal(t, alice, addr)

	primary, err := c.PrimaryOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, id, primary)

	ok, err := c.VerifyIsNameOwner(ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{"owner", "nameToId", "ownerOf", "resolve", "primary", "verifyIsNameOwner"}, backend.seen)
}

func TestRevertIsTagged(t *testing.T) {
	backend := &fakeBackend{handlers: map[common.Address]handler{
		contracts.Wrapper: func(string, []any) ([]any, error) {
			return nil, revertError{data: encodeRevert(t, "token does not exist")}
		},
	}}
	c := NewClient(backend, contracts)

	_, err := c.HolderOf(context.Background(), big.NewInt(1))
	require.ErrorIs(t, err, ErrReverted)
	assert.Contains(t, err.Error(), "token does not exist")
	assert.Contains(t, err.Error(), "wrapper.ownerOf")
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))

	plain := errors.New("connection refused")
	assert.Same(t, plain, mapError(plain))

	assert.ErrorIs(t, mapError(errors.New("execution reverted")), ErrReverted)
	assert.ErrorIs(t, mapError(revertError{data: "0xzz"}), ErrReverted)
	assert.ErrorIs(t, mapError(context.DeadlineExceeded), context.DeadlineExceeded)
}

func TestMutationsRequireSigner(t *testing.T) {
	c := NewClient(&fakeBackend{}, contracts)
	assert.Equal(t, common.Address{}, c.Sender())

	_, err := c.Reserve(context.Background(), names.Identifier{1})
	assert.ErrorIs(t, err, ErrNoSigner)
	_, err = c.UnsetPrimary(context.Background())
	assert.ErrorIs(t, err, ErrNoSigner)
	_, err = c.TransferToken(context.Background(), alice, alice, big.NewInt(1))
	assert.ErrorIs(t, err, ErrNoSigner)

	signed := NewClient(&fakeBackend{}, contracts, WithSigner(&bind.TransactOpts{From: alice}))
	assert.Equal(t, alice, signed.Sender())
}

func TestPing(t *testing.T) {
	c := NewClient(&fakeBackend{}, contracts)
	require.NoError(t, c.Ping(context.Background()))

	down := NewClient(&fakeBackend{headerErr: errors.New("dial tcp: refused")}, contracts)
	assert.Error(t, down.Ping(context.Background()))
}
