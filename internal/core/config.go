package core

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// DefaultStorePath is used when neither the config file nor the command line
// names a task file.
const DefaultStorePath = "./task_list"

// Config holds the user-tunable settings of the tracker.
type Config struct {
	// StorePath is the task file used when no path is given on the command line.
	StorePath string
}

// LoadConfig reads an optional .todo-cli.yaml using Viper. With no explicit
// search paths it looks in the working directory, then the user's home
// directory. A missing config file yields the defaults, not an error.
func LoadConfig(searchPaths ...string) (*Config, error) {
	cfg := &Config{StorePath: DefaultStorePath}

	v := viper.New()
	v.SetConfigName(".todo-cli")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			searchPaths = append(searchPaths, home)
		}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("store.path", cfg.StorePath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .todo-cli.yaml: %w", err)
	}

	cfg.StorePath = v.GetString("store.path")
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath
	}
	return cfg, nil
}
