package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/eafshoop/storefront/internal/checkout"
	"github.com/eafshoop/storefront/internal/config"
	"github.com/eafshoop/storefront/internal/storage"
	"github.com/eafshoop/storefront/internal/web"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "EAF Shoop storefront server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront pages and the cart API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	root.AddCommand(serveCmd, versionCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg := config.Load()

	slots, err := newSlots(cfg)
	if err != nil {
		return err
	}

	contact := checkout.ContactNumber()
	if cfg.ContactEncoded != "" {
		contact, err = checkout.DecodeContact(cfg.ContactEncoded)
		if err != nil {
			return fmt.Errorf("CONTACT_ENCODED: %w", err)
		}
	}

	srv := web.New(slots, contact)
	log.Printf("storefront %s listening on %s", version, cfg.HTTPAddr)
	return srv.Router().Run(cfg.HTTPAddr)
}

func newSlots(cfg config.Config) (storage.Slot, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil
	case config.BackendRedis:
		return storage.NewRedis(cfg.RedisURL, cfg.SessionTTL)
	case config.BackendPostgres:
		return storage.NewPostgres(context.Background(), cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}
