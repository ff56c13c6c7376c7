package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"tftlookup/internal/eventbus"
)

// DefaultAPIURL is the item catalogue endpoint
const DefaultAPIURL = "https://tft-db.herokuapp.com/api/items"

// Config represents the application configuration
type Config struct {
	Version      int        `koanf:"version" toml:"version"`
	APIURL       string     `koanf:"api_url" toml:"api_url"`
	ItemsFile    string     `koanf:"items_file" toml:"items_file,omitempty"`
	FetchTimeout string     `koanf:"fetch_timeout" toml:"fetch_timeout"`
	LogLevel     string     `koanf:"log_level" toml:"log_level"`
	LogFile      string     `koanf:"log_file" toml:"log_file"`
	UISettings   UISettings `koanf:"ui" toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutoSelect         bool `koanf:"auto_select" toml:"auto_select"`
	InlineAutocomplete bool `koanf:"inline_autocomplete" toml:"inline_autocomplete"`
	MaxVisibleResults  int  `koanf:"max_visible_results" toml:"max_visible_results"`
	Mouse              bool `koanf:"mouse" toml:"mouse"`
}

// Timeout returns the fetch timeout, falling back to 10s when unset or invalid
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tftlookup", "config.toml")
}

// NewConfigService creates a config service for path; empty means DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = json.Parser()
	case ".yml", ".yaml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.UISettings.MaxVisibleResults <= 0 {
		cfg.UISettings.MaxVisibleResults = DefaultConfig().UISettings.MaxVisibleResults
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path as TOML
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := gotoml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		APIURL:       DefaultAPIURL,
		FetchTimeout: "10s",
		LogLevel:     "info",
		LogFile:      filepath.Join(os.TempDir(), "tftlookup.log"),
		UISettings: UISettings{
			AutoSelect:         true,
			InlineAutocomplete: false,
			MaxVisibleResults:  8,
			Mouse:              true,
		},
	}
}
