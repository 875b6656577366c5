package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/RiskyOsDev/ariesrobot/internal/commands"
	"github.com/RiskyOsDev/ariesrobot/internal/config"
)

func newCommandsCommand() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Print the command manifest as YAML",
		Long: `Prints every registered command with its parameters and free-text usage.
The manifest is what the platform integration registers as slash commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{CommandPrefix: prefix, AdminRole: commands.DefaultAdminRole, ReplyDiagnostics: true}
			router, err := newCommandRouter(cfg, nil)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(router.Manifest(cfg.CommandPrefix))
			if err != nil {
				return fmt.Errorf("encoding manifest: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "!", "free-text command prefix")
	return cmd
}
