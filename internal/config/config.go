package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	StoreDriver string `envconfig:"STORE_DRIVER" default:"postgres"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	Version     string `envconfig:"VERSION" default:"dev"`

	// CommandPrefix marks free-text commands, e.g. "!ping".
	CommandPrefix string `envconfig:"COMMAND_PREFIX" default:"!"`
	// AdminRole is the role name required to remove other users.
	AdminRole string `envconfig:"ADMIN_ROLE" default:"bot_admin"`
	// ReplyDiagnostics includes store fault details in replies.
	ReplyDiagnostics bool `envconfig:"REPLY_DIAGNOSTICS" default:"true"`

	// RelayKeyHash is the bcrypt hash of the relay API key. Empty disables
	// relay authentication.
	RelayKeyHash string `envconfig:"RELAY_KEY_HASH" default:""`
}

// KeyConfig holds the settings of the relay-key command, which runs without
// a database.
type KeyConfig struct {
	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadKeyConfig reads the relay key settings from environment variables.
func LoadKeyConfig() (*KeyConfig, error) {
	var cfg KeyConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
