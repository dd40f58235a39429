package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"prodsearch/internal/domain"
	"prodsearch/internal/eventbus"
)

// DefaultBaseURL is the public catalog endpoint
const DefaultBaseURL = "https://global.atdtravel.com"

// Environment variables that override file settings
const (
	EnvAPIURL  = "PRODSEARCH_API_URL"
	EnvRegion  = "PRODSEARCH_REGION"
	EnvLimit   = "PRODSEARCH_LIMIT"
	EnvLogFile = "PRODSEARCH_LOG_FILE"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version" validate:"eq=1"`
	Catalog CatalogSettings `toml:"catalog"`
	Search  SearchSettings  `toml:"search"`
	UI      UISettings      `toml:"ui"`
	Log     LogSettings     `toml:"log"`
}

// CatalogSettings configures the remote catalog client
type CatalogSettings struct {
	BaseURL        string `toml:"base_url" validate:"required,url"`
	TimeoutSeconds int    `toml:"timeout_seconds" validate:"min=0"` // 0 disables the timeout
}

// SearchSettings holds the initial session values
type SearchSettings struct {
	DefaultRegion string `toml:"default_region" validate:"oneof=en en-ie de-de"`
	DefaultLimit  int    `toml:"default_limit" validate:"oneof=12 24 36"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPrices bool `toml:"show_prices"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file" validate:"required"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Timeout returns the catalog request timeout, zero meaning none
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Catalog.TimeoutSeconds) * time.Second
}

// Region returns the configured default region
func (c *Config) Region() domain.Region {
	if r, ok := domain.RegionByID(c.Search.DefaultRegion); ok {
		return r
	}
	return domain.DefaultRegion()
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

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "prodsearch", "config.toml"),
	}
}

// NewConfigServiceWithPath creates a config service for an explicit file
func NewConfigServiceWithPath(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(LoadedEvent(cs.filePath, cfg))
	}

	return cfg, nil
}

// LoadedEvent describes cfg as loaded from path
func LoadedEvent(path string, cfg *Config) eventbus.ConfigLoadedEvent {
	return eventbus.ConfigLoadedEvent{
		Path:    path,
		BaseURL: cfg.Catalog.BaseURL,
		Region:  cfg.Search.DefaultRegion,
		Limit:   cfg.Search.DefaultLimit,
	}
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so partial files keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
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
		Version: 1,
		Catalog: CatalogSettings{
			BaseURL: DefaultBaseURL,
		},
		Search: SearchSettings{
			DefaultRegion: domain.DefaultRegion().ID,
			DefaultLimit:  domain.DefaultPageSize,
		},
		UI: UISettings{
			ShowPrices: true,
		},
		Log: LogSettings{
			File:  "prodsearch.log",
			Level: "info",
		},
	}
}

// LoadEnvFile loads a dotenv file into the process environment.
// A missing file is not an error. Variables already set win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides config values from the environment
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := os.Getenv(EnvRegion); v != "" {
		cfg.Search.DefaultRegion = v
	}
	if v := os.Getenv(EnvLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvLimit, v, err)
		}
		cfg.Search.DefaultLimit = n
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return Validate(cfg)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks a config against its struct tags
func Validate(cfg *Config) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
