package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RiskyOsDev/ariesrobot/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the users table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cmd.Context(), cfg.StoreDriver, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			log.Info().Str("store", cfg.StoreDriver).Msg("running migrations")
			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			log.Info().Msg("migrations complete")
			return nil
		},
	}
}
