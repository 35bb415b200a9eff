package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"lnr.org/internal/chain/eth"
	"lnr.org/internal/chain/memchain"
	"lnr.org/internal/config"
	"lnr.org/internal/httpapi"
	"lnr.org/internal/lnr"
	"lnr.org/internal/obs"
	"lnr.org/internal/ownership"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// ports bundles whatever backend serves the three contracts.
type ports interface {
	ownership.Registrar
	ownership.NameResolver
	ownership.Wrapper
}

func main() {
	if err := run(); err != nil {
		obs.Logger().Error("lnr-api exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	obs.SetLogger(obs.NewJSONLogger(os.Stdout, obs.ParseLevel(cfg.LogLevel)))
	obs.Init()
	obs.InitBuildInfo(version, commit)
	logger := obs.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := obs.SetupTracing(ctx, "lnr-api", cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	var (
		backend ports
		probe   httpapi.ReadyProbe
	)
	if cfg.RPCURL == "" {
		logger.Warn("LNR_RPC_URL not set; serving an empty in-memory registry")
		backend = memchain.New(memchain.Addresses{
			Registrar: cfg.Contracts.Registrar,
			Resolver:  cfg.Contracts.Resolver,
			Wrapper:   cfg.Contracts.Wrapper,
		}).As(cfg.Contracts.Wrapper)
	} else {
		dctx, cancel := context.WithTimeout(ctx, cfg.CallTimeout)
		client, err := eth.Dial(dctx, cfg.RPCURL, cfg.Contracts, eth.WithCallTimeout(cfg.CallTimeout))
		cancel()
		if err != nil {
			return err
		}
		defer client.Close()
		backend = client
		probe.Chain = client
	}

	svc, err := lnr.New(backend, backend, backend, cfg.Contracts.Wrapper)
	if err != nil {
		return err
	}

	api := httpapi.New(probe, version, svc)
	api.SetRateLimit(cfg.RateBurst, cfg.RatePerSec)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	health := httpapi.NewGRPCServer(probe)
	health.Register(grpcSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	logger.Info("starting lnr-api", "version", version, "http_addr", cfg.HTTPAddr, "grpc_addr", cfg.GRPCAddr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return grpcSrv.Serve(lis)
	})
	g.Go(func() error {
		health.Watch(gctx, 15*time.Second)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		grpcSrv.GracefulStop()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	logger.Info("stopped")
	return nil
}
