package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	Mode string `toml:"mode"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type StorageConfig struct {
	BaseURL string `toml:"base_url"`
	Bucket  string `toml:"bucket"`
}

type AuthConfig struct {
	UserHeader  string `toml:"user_header"`
	NameHeader  string `toml:"name_header"`
	EmailHeader string `toml:"email_header"`
	DevUser     string `toml:"dev_user"`
}

type WatchConfig struct {
	PollInterval string `toml:"poll_interval"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Storage  StorageConfig  `toml:"storage"`
	Auth     AuthConfig     `toml:"auth"`
	Watch    WatchConfig    `toml:"watch"`
	Log      LogConfig      `toml:"log"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", Mode: "release"},
		Memgraph: MemgraphConfig{URI: "bolt://localhost:7687"},
		Storage:  StorageConfig{BaseURL: "https://firebasestorage.googleapis.com/v0/b"},
		Auth: AuthConfig{
			UserHeader:  "X-Forwarded-User",
			NameHeader:  "X-Forwarded-Preferred-Username",
			EmailHeader: "X-Forwarded-Email",
		},
		Watch: WatchConfig{PollInterval: "2s"},
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables that are set.
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"PORT":                &c.Server.Port,
		"GIN_MODE":            &c.Server.Mode,
		"MEMGRAPH_URI":        &c.Memgraph.URI,
		"MEMGRAPH_USER":       &c.Memgraph.User,
		"MEMGRAPH_PASSWORD":   &c.Memgraph.Password,
		"STORAGE_BASE_URL":    &c.Storage.BaseURL,
		"STORAGE_BUCKET":      &c.Storage.Bucket,
		"AUTH_DEV_USER":       &c.Auth.DevUser,
		"WATCH_POLL_INTERVAL": &c.Watch.PollInterval,
		"LOG_LEVEL":           &c.Log.Level,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
}

func (c *Config) PollInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid watch.poll_interval %q: %w", c.Watch.PollInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch.poll_interval must be positive, got %s", d)
	}
	return d, nil
}
