package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig reads the .trek config file (current directory, then $HOME) and
// the TREK_* environment. `path` locates the on-disk database.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.trek.db")
	viper.SetConfigName(".trek") // .yaml is implicit
	viper.SetEnvPrefix("TREK")
	viper.AutomaticEnv()

	if override := os.Getenv("TREK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &fileConfig{Path: path}, nil
}

// Owner returns the configured owner identifier, or "" when none is set.
// The `owner` key comes from the config file or TREK_OWNER.
func Owner() string {
	return viper.GetString("owner")
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
