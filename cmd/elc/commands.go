package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/elc/internal/export"
	"github.com/JonMunkholm/elc/internal/web"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildDate=...".
var (
	version   = "dev"
	buildDate = "unknown"
)

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Fetch or load from cache every configured election",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := a.load(cmd.Context())
			return err
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load every configured election, then serve them over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			results, _, err := a.load(ctx)
			if err != nil {
				return err
			}

			server := web.NewServer(web.NewStore(results), a.cfg)

			// Graceful shutdown
			go func() {
				<-ctx.Done()
				slog.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("shutdown error", "error", err)
				}
			}()

			if err := server.Start(a.cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			slog.Info("server stopped")
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load every configured election, then write an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, _, err := a.load(cmd.Context())
			if err != nil {
				return err
			}
			if err := export.WriteFile(out, results); err != nil {
				return err
			}
			slog.Info("workbook written", "path", out, "years", len(results))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "elc.xlsx", "workbook path")
	return cmd
}

func newPurgeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Clear the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			years, err := a.cache.Years(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.cache.Purge(cmd.Context()); err != nil {
				return err
			}
			slog.Info("cache cleared", "years", years)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "elc %s\nbuilt %s\n%s\n", version, buildDate, runtime.Version())
		},
	}
}
