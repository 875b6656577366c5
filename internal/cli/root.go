// Package cli wires configuration, storage and the command core into the
// ariesrobot executable.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RiskyOsDev/ariesrobot/internal/command"
	"github.com/RiskyOsDev/ariesrobot/internal/commands"
	"github.com/RiskyOsDev/ariesrobot/internal/config"
	"github.com/RiskyOsDev/ariesrobot/internal/render"
	"github.com/RiskyOsDev/ariesrobot/internal/user"
)

// NewRootCommand builds the ariesrobot command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ariesrobot",
		Short:         "Chat command processor with a persistent user registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newCommandsCommand(),
		newRelayKeyCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and configures logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	setLogging(os.Stdout, cfg.LogLevel)
	return cfg, nil
}

func setLogging(w io.Writer, level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// newCommandRouter registers the command set on a fresh router.
func newCommandRouter(cfg *config.Config, users user.Repository) (*command.Router, error) {
	router := command.NewRouter(render.New(cfg.ReplyDiagnostics))
	if err := router.Register(commands.New(users, cfg.AdminRole).Descriptors()...); err != nil {
		return nil, fmt.Errorf("registering commands: %w", err)
	}
	return router, nil
}
