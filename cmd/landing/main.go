package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-landing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("landing: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("landing", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML, JSON or TOML config file")
	addr := fs.String("addr", "", "Listen address (overrides http.addr)")
	seedOnly := fs.Bool("seed-only", false, "Create tables, seed the catalog and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := landing.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	module, err := landing.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}
	defer module.Close()

	if err := module.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if *seedOnly {
		fmt.Fprintln(os.Stdout, "landing: catalog seeded")
		return nil
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Printf("landing: listening on %s", cfg.HTTP.Addr)
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
