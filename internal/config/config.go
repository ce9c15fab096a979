package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"agora/internal/latency"
)

type Config struct {
	Addr       string  `yaml:"addr"`
	LogLevel   string  `yaml:"log_level"`
	SessionKey string  `yaml:"session_key"`
	Latency    Latency `yaml:"latency"`
}

// Latency holds the simulated round-trip delays in milliseconds.
type Latency struct {
	SessionRestoreMS int `yaml:"session_restore_ms"`
	SignInMS         int `yaml:"sign_in_ms"`
	SignUpMS         int `yaml:"sign_up_ms"`
	FeedLoadMS       int `yaml:"feed_load_ms"`
}

// Default mirrors the delays the mock client shipped with.
func Default() *Config {
	return &Config{
		Addr:       ":8080",
		LogLevel:   "warn",
		SessionKey: "SESSION_KEY",
		Latency: Latency{
			SessionRestoreMS: 500,
			SignInMS:         1000,
			SignUpMS:         1000,
			FeedLoadMS:       1000,
		},
	}
}

// Load reads a YAML config from path, filling unset fields from Default.
// An empty path means defaults only. PORT in the environment overrides
// the configured address.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, err
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = port
	}
}

// Profile converts the configured delays into the latency profile the
// stores run with.
func (c *Config) Profile() latency.Profile {
	ms := func(n int) latency.Delayer {
		return latency.Fixed(time.Duration(n) * time.Millisecond)
	}
	return latency.Profile{
		SessionRestore: ms(c.Latency.SessionRestoreMS),
		SignIn:         ms(c.Latency.SignInMS),
		SignUp:         ms(c.Latency.SignUpMS),
		FeedLoad:       ms(c.Latency.FeedLoadMS),
	}
}
