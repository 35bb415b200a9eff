package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"lnr.org/internal/chain/eth"
	"lnr.org/internal/config"
	"lnr.org/internal/lnr"
	"lnr.org/internal/names"
)

// maxInFlight caps concurrent RPC lookups per invocation.
const maxInFlight = 8

type connectFunc func(ctx context.Context) (lnr.Names, func(), error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, connect))
}

func connect(ctx context.Context) (lnr.Names, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	if cfg.RPCURL == "" {
		return nil, nil, fmt.Errorf("LNR_RPC_URL is required")
	}
	client, err := eth.Dial(ctx, cfg.RPCURL, cfg.Contracts, eth.WithCallTimeout(cfg.CallTimeout))
	if err != nil {
		return nil, nil, err
	}
	svc, err := lnr.New(client, client, client, cfg.Contracts.Wrapper)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return svc, func() { _ = client.Close() }, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, dial connectFunc) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}
	cmd, operands := args[0], args[1:]

	var lookup func(context.Context, lnr.Names, string) (string, error)
	switch cmd {
	case "normalize":
		return runLocal(operands, stdout, stderr, func(s string) (string, error) {
			d, err := names.Validate(s)
			return d.String(), err
		})
	case "encode":
		return runLocal(operands, stdout, stderr, func(s string) (string, error) {
			id, err := names.DomainToIdentifier(s)
			return id.Hex(), err
		})
	case "decode":
		return runLocal(operands, stdout, stderr, func(s string) (string, error) {
			id, err := names.ParseIdentifier(s)
			if err != nil {
				return "", err
			}
			d, err := names.IdentifierToDomain(id)
			return d.String(), err
		})
	case "resolve":
		lookup = resolveName
	case "lookup":
		lookup = lookupAddress
	case "owner":
		lookup = ownerOf
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return 2
	}

	svc, closeFn, err := dial(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "connect: %v\n", err)
		return 1
	}
	defer closeFn()

	results := make([]string, len(operands))
	failures := make([]error, len(operands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for i, operand := range operands {
		g.Go(func() error {
			results[i], failures[i] = lookup(gctx, svc, operand)
			return nil
		})
	}
	_ = g.Wait()
	return report(operands, results, failures, stdout, stderr)
}

func runLocal(operands []string, stdout, stderr io.Writer, fn func(string) (string, error)) int {
	results := make([]string, len(operands))
	failures := make([]error, len(operands))
	for i, operand := range operands {
		results[i], failures[i] = fn(operand)
	}
	return report(operands, results, failures, stdout, stderr)
}

func report(operands, results []string, failures []error, stdout, stderr io.Writer) int {
	code := 0
	for i, operand := range operands {
		if failures[i] != nil {
			fmt.Fprintf(stderr, "%s\terror: %v\n", operand, failures[i])
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", operand, results[i])
	}
	return code
}

func resolveName(ctx context.Context, svc lnr.Names, name string) (string, error) {
	addr, found, err := svc.ResolveName(ctx, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "-", nil
	}
	return addr.Hex(), nil
}

func lookupAddress(ctx context.Context, svc lnr.Names, raw string) (string, error) {
	if !common.IsHexAddress(raw) {
		return "", fmt.Errorf("%w: %q", lnr.ErrInvalidAddress, raw)
	}
	domain, found, err := svc.LookupAddress(ctx, common.HexToAddress(raw))
	if err != nil {
		return "", err
	}
	if !found {
		return "-", nil
	}
	return domain.String(), nil
}

func ownerOf(ctx context.Context, svc lnr.Names, name string) (string, error) {
	rec, err := svc.Owner(ctx, name)
	if err != nil {
		return "", err
	}
	if rec.Absent() {
		return "-", nil
	}
	parts := []string{rec.Controller.Hex(), rec.Mode.String()}
	if rec.TokenID != nil {
		parts = append(parts, "token="+rec.TokenID.String())
	}
	return strings.Join(parts, "\t"), nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage: lnr <normalize|encode|decode|resolve|lookup|owner> <arg>...\n")
}
