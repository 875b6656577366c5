package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RiskyOsDev/ariesrobot/internal/auth"
	"github.com/RiskyOsDev/ariesrobot/internal/config"
)

func newRelayKeyCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "relay-key",
		Short: "Generate a relay API key and the hash to put in RELAY_KEY_HASH",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cost") {
				cfg, err := config.LoadKeyConfig()
				if err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
				cost = cfg.BcryptCost
			}

			rawKey, hash, err := auth.GenerateKey(cost)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "key:  %s\nhash: %s\n", rawKey, hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", 0, "bcrypt cost (default BCRYPT_COST)")
	return cmd
}
