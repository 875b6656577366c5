package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RiskyOsDev/ariesrobot/internal/api"
	"github.com/RiskyOsDev/ariesrobot/internal/database"
)

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server accepting invocations from the gateway relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			if migrate {
				if err := db.Migrate(ctx); err != nil {
					return err
				}
			}

			commandRouter, err := newCommandRouter(cfg, db.Users())
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterDeps{
				Logger:       log.Logger,
				Store:        db,
				Commands:     commandRouter,
				Prefix:       cfg.CommandPrefix,
				RelayKeyHash: cfg.RelayKeyHash,
				Version:      cfg.Version,
			})

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Info().Int("port", cfg.Port).Str("version", cfg.Version).Str("store", cfg.StoreDriver).Msg("starting ariesrobot server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-quit:
				log.Info().Str("signal", sig.String()).Msg("shutting down server")
			case err := <-serverErr:
				return fmt.Errorf("server error: %w", err)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Info().Msg("server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}
