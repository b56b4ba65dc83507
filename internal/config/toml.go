package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields stay nil
// when the key is absent so callers can tell "unset" from a zero value.
type FileConfig struct {
	Rate     *int     `toml:"rate"`
	Image    *string  `toml:"image"`
	Adapter  *int     `toml:"adapter"`
	Icon     *string  `toml:"icon"`
	Font     *string  `toml:"font"`
	FontSize *float64 `toml:"font-size"`
	LogLevel *string  `toml:"log-level"`
	Watch    *bool    `toml:"watch"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Template is written by the config subcommand when no file exists yet.
const Template = `# fps-viewer configuration
# Command line flags override these values.

# rate = 60
# image = "/path/to/picture.png"
# adapter = 0
# icon = ""
# font = ""
# font-size = 26
# log-level = "info"
# watch = true
`

// DefaultConfigPath returns the per-user config file path: under
// $XDG_CONFIG_HOME on Unix, the platform config directory elsewhere, or the
// working directory when neither can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = "."
	}
	return filepath.Join(dir, AppName, "config.toml")
}
