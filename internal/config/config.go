// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"
)

// Mainnet contract addresses.
const (
	DefaultRegistrarAddress = "0x5564886ca2C518d1964E5FCea4f423b41Db9F561"
	DefaultResolverAddress  = "0x6023E55814DC00F094386d4eb7e17Ce49ab1A190"
	DefaultWrapperAddress   = "0x2Cc8342d7c8BFf5A213eb2cdE39DE9a59b3461A7"
)

// Contracts holds the well-known service identities. They are fixed after load.
type Contracts struct {
	Registrar common.Address `env:"REGISTRAR_ADDRESS" envDefault:"0x5564886ca2C518d1964E5FCea4f423b41Db9F561"`
	Resolver  common.Address `env:"RESOLVER_ADDRESS" envDefault:"0x6023E55814DC00F094386d4eb7e17Ce49ab1A190"`
	Wrapper   common.Address `env:"WRAPPER_ADDRESS" envDefault:"0x2Cc8342d7c8BFf5A213eb2cdE39DE9a59b3461A7"`
}

// Config is the full process configuration; every variable is prefixed LNR_.
type Config struct {
	RPCURL       string        `env:"RPC_URL"`
	HTTPAddr     string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr     string        `env:"GRPC_ADDR" envDefault:":9090"`
	CallTimeout  time.Duration `env:"CALL_TIMEOUT" envDefault:"10s"`
	RateBurst    int           `env:"RATE_BURST" envDefault:"20"`
	RatePerSec   int           `env:"RATE_PER_SEC" envDefault:"10"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string        `env:"OTEL_ENDPOINT"`
	Contracts    Contracts
}

// FromEnv parses LNR_* variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LNR_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the process cannot run with.
func (c Config) Validate() error {
	if c.CallTimeout <= 0 {
		return fmt.Errorf("config: LNR_CALL_TIMEOUT must be positive")
	}
	if c.RateBurst <= 0 || c.RatePerSec <= 0 {
		return fmt.Errorf("config: rate limits must be positive")
	}
	zero := common.Address{}
	if c.Contracts.Registrar == zero || c.Contracts.Resolver == zero || c.Contracts.Wrapper == zero {
		return fmt.Errorf("config: contract addresses must be non-zero")
	}
	return nil
}
