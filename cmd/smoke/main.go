package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"lnr.org/internal/chain/memchain"
	"lnr.org/internal/config"
	"lnr.org/internal/ids"
	"lnr.org/internal/lnr"
	"lnr.org/internal/obs"
	"lnr.org/internal/ownership"
)

var (
	ownerAddr = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	buyerAddr = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	name := strings.ToLower(ids.New()) + ".og"
	if err := run(ctx, name); err != nil {
		obs.Logger().Error("smoke failed", "name", name, "error", err)
		os.Exit(1)
	}
	fmt.Printf("lnr smoke test passed: name=%s\n", name)
}

// run walks a name through reserve, primary, wrap, token transfer and unwrap
// and checks ownership after every step.
func run(ctx context.Context, name string) error {
	wrapper := common.HexToAddress(config.DefaultWrapperAddress)
	chain := memchain.New(memchain.Addresses{
		Registrar: common.HexToAddress(config.DefaultRegistrarAddress),
		Resolver:  common.HexToAddress(config.DefaultResolverAddress),
		Wrapper:   wrapper,
	})
	clientFor := func(addr common.Address) (*lnr.Client, error) {
		s := chain.As(addr)
		return lnr.New(s, s, s, wrapper, lnr.WithCaller(addr))
	}
	owner, err := clientFor(ownerAddr)
	if err != nil {
		return err
	}
	buyer, err := clientFor(buyerAddr)
	if err != nil {
		return err
	}

	expect := func(step string, mode ownership.Mode, who common.Address) error {
		rec, err := owner.Owner(ctx, name)
		if err != nil {
			return fmt.Errorf("%s: owner: %w", step, err)
		}
		if rec.Mode != mode || rec.Controller != who {
			return fmt.Errorf("%s: got %s/%s, want %s/%s", step, rec.Mode, rec.Controller.Hex(), mode, who.Hex())
		}
		return nil
	}

	if _, err := owner.Reserve(ctx, name); err != nil {
		return fmt.Errorf("reserve: %w", err)
	}
	if err := expect("reserve", ownership.ModeDirect, ownerAddr); err != nil {
		return err
	}

	if _, err := owner.SetPrimary(ctx, name); err != nil {
		return fmt.Errorf("set primary: %w", err)
	}
	if got, found, err := buyer.LookupAddress(ctx, ownerAddr); err != nil || !found || got.String() != name {
		return fmt.Errorf("lookup after set primary: %q found=%v err=%v", got, found, err)
	}

	if _, err := owner.CreateWrapper(ctx, name); err != nil {
		return fmt.Errorf("create wrapper: %w", err)
	}
	if _, err := owner.Wrap(ctx, name); err != nil {
		return fmt.Errorf("wrap: %w", err)
	}
	if err := expect("wrap", ownership.ModeIndirected, ownerAddr); err != nil {
		return err
	}

	if _, err := owner.TransferWrapped(ctx, name, buyerAddr); err != nil {
		return fmt.Errorf("transfer wrapped: %w", err)
	}
	if err := expect("transfer wrapped", ownership.ModeIndirected, buyerAddr); err != nil {
		return err
	}

	if _, err := buyer.Unwrap(ctx, name); err != nil {
		return fmt.Errorf("unwrap: %w", err)
	}
	return expect("unwrap", ownership.ModeDirect, buyerAddr)
}
