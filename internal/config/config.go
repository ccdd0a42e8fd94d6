// Package config loads graphsim-httpd's runtime configuration from a file,
// environment variables, and defaults, in that order of increasing priority
// matching viper's usual precedence (env overrides file).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Server ServerConfig
		Log    LogConfig
		Sim    SimConfig
	}

	ServerConfig struct {
		Port            int
		LocalOnly       bool
		CORSAllowOrigin string
	}

	LogConfig struct {
		Debug bool
	}

	SimConfig struct {
		MaxQubits int
	}
)

func defaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.localonly", false)
	v.SetDefault("server.corsalloworigin", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("sim.maxqubits", 24)
}

// Load reads configuration from the file at path, if it exists, then
// overlays any GRAPHSIM_-prefixed environment variables on top. path may be
// empty, in which case only defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("GRAPHSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	c := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			LocalOnly:       v.GetBool("server.localonly"),
			CORSAllowOrigin: v.GetString("server.corsalloworigin"),
		},
		Log: LogConfig{
			Debug: v.GetBool("log.debug"),
		},
		Sim: SimConfig{
			MaxQubits: v.GetInt("sim.maxqubits"),
		},
	}

	if c.Sim.MaxQubits <= 0 {
		return nil, fmt.Errorf("sim.maxqubits must be positive, got %d", c.Sim.MaxQubits)
	}

	return c, nil
}
