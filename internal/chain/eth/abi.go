package eth

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Only the fragments the client calls are kept.

const registrarABI = `[
 {"type":"function","name":"owner","stateMutability":"view","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"},{"name":"_newOwner","type":"address"}],"outputs":[]},
 {"type":"function","name":"reserve","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[]}
]`

const resolverABI = `[
 {"type":"function","name":"resolve","stateMutability":"view","inputs":[{"name":"_domain","type":"string"}],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"primary","stateMutability":"view","inputs":[{"name":"_address","type":"address"}],"outputs":[{"name":"","type":"bytes32"}]},
 {"type":"function","name":"verifyIsNameOwner","stateMutability":"view","inputs":[{"name":"_name","type":"bytes32"},{"name":"_addr","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
 {"type":"function","name":"setPrimary","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[]},
 {"type":"function","name":"unsetPrimary","stateMutability":"nonpayable","inputs":[],"outputs":[]},
 {"type":"function","name":"setController","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"},{"name":"_controller","type":"address"}],"outputs":[]},
 {"type":"function","name":"unsetController","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[]}
]`

const wrapperABI = `[
 {"type":"function","name":"nameToId","stateMutability":"view","inputs":[{"name":"","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
 {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
 {"type":"function","name":"createWrapper","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[]},
 {"type":"function","name":"wrap","stateMutability":"nonpayable","inputs":[{"name":"_name","type":"bytes32"}],"outputs":[]},
 {"type":"function","name":"unwrap","stateMutability":"nonpayable","inputs":[{"name":"_tokenId","type":"uint256"}],"outputs":[]},
 {"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]}
]`

var (
	parsedRegistrarABI = mustParse(registrarABI)
	parsedResolverABI  = mustParse(resolverABI)
	parsedWrapperABI   = mustParse(wrapperABI)
)

func mustParse(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
