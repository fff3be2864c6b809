package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Grid      GridConfig      `mapstructure:"grid"`
	Maps      MapsConfig      `mapstructure:"maps"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// GridConfig holds the neighbour query switches
type GridConfig struct {
	AllowDiagonal     bool `mapstructure:"allow_diagonal"`
	NoCornerCutting   bool `mapstructure:"no_corner_cutting"`
	StrictWallCorners bool `mapstructure:"strict_wall_corners"`
}

// MapsConfig holds map file locations
type MapsConfig struct {
	Dir           string   `mapstructure:"dir"`
	Files         []string `mapstructure:"files"`
	MaxConcurrent int      `mapstructure:"max_concurrent"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GeneratorConfig holds random map generation settings
type GeneratorConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	BlockRatio float64 `mapstructure:"block_ratio"`
	WallRatio  float64 `mapstructure:"wall_ratio"`
	Seed       int64   `mapstructure:"seed"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	// overlay holds the environment config merged over the base file
	overlay *viper.Viper
	// reloadMu serializes reloads started by file watches
	reloadMu sync.Mutex
)

// flagKeys maps command line flag names to config keys for BindFlags
var flagKeys = map[string]string{
	"diagonal":            "grid.allow_diagonal",
	"no-corner-cutting":   "grid.no_corner_cutting",
	"strict-wall-corners": "grid.strict_wall_corners",
	"map-dir":             "maps.dir",
	"max-concurrent":      "maps.max_concurrent",
	"log-level":           "logging.level",
	"log-format":          "logging.format",
	"width":               "generator.width",
	"height":              "generator.height",
	"block-ratio":         "generator.block_ratio",
	"wall-ratio":          "generator.wall_ratio",
	"seed":                "generator.seed",
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Grid defaults
	v.SetDefault("grid.allow_diagonal", false)
	v.SetDefault("grid.no_corner_cutting", false)
	v.SetDefault("grid.strict_wall_corners", false)

	// Map file defaults
	v.SetDefault("maps.dir", "")
	v.SetDefault("maps.files", []string{})
	v.SetDefault("maps.max_concurrent", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "auto")

	// Generator defaults
	v.SetDefault("generator.width", 16)
	v.SetDefault("generator.height", 16)
	v.SetDefault("generator.block_ratio", 0.25)
	v.SetDefault("generator.wall_ratio", 0.15)
	v.SetDefault("generator.seed", 0) // 0 picks a time-based seed
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tilegrid")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("TILEGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	overlay = nil

	// Read config file
	if err := readBase(); err != nil {
		return err
	}

	return reload()
}

// readBase reads the base config file. A missing file leaves the defaults.
func readBase() error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("error reading config file: %w", err)
}

// rebuild re-reads the base file, merges the environment overlay back over
// it and reloads the config struct.
func rebuild() error {
	reloadMu.Lock()
	defer reloadMu.Unlock()

	if err := readBase(); err != nil {
		return err
	}
	if overlay != nil {
		if err := v.MergeConfigMap(overlay.AllSettings()); err != nil {
			return fmt.Errorf("error merging environment config %s: %w", overlay.ConfigFileUsed(), err)
		}
	}
	return reload()
}

// reload decodes viper's current state into the global struct and validates it
func reload() error {
	next := &Config{}
	if err := v.Unmarshal(next); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	cfg = next
	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// BindFlags lets flags that were set on the command line override config
// values. Only flags present in fs are bound.
func BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return reload()
}

// LoadEnvironmentConfig merges config.<env>.yaml, looked up next to the
// loaded config file (or the working directory), over the current config.
// A missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	dir := "."
	if used := v.ConfigFileUsed(); used != "" {
		dir = filepath.Dir(used)
	}
	envFile := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))

	if _, err := os.Stat(envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	ov := viper.New()
	ov.SetConfigFile(envFile)
	if err := ov.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}
	if err := v.MergeConfigMap(ov.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	overlay = ov

	return reload()
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// OverlayFilePath returns the environment overlay merged by
// LoadEnvironmentConfig, or "" when there is none
func OverlayFilePath() string {
	if overlay == nil {
		return ""
	}
	return overlay.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the base config file and of the
// environment overlay, if one was loaded. Either change rebuilds the config
// from both files. onChange receives the reload error, if any; the previous
// config stays in effect on error.
func WatchConfig(onChange func(fsnotify.Event, error)) {
	handle := func(e fsnotify.Event) {
		err := rebuild()
		if onChange != nil {
			onChange(e, err)
		}
	}

	v.OnConfigChange(handle)
	v.WatchConfig()
	if overlay != nil {
		overlay.OnConfigChange(handle)
		overlay.WatchConfig()
	}
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validFormats = []string{"auto", "console", "json"}
)

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate map loading
	if c.Maps.MaxConcurrent < 1 {
		return fmt.Errorf("maps.max_concurrent must be at least 1")
	}

	// Validate logging
	if !slices.Contains(validLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level must be one of %s", strings.Join(validLevels, ", "))
	}
	if !slices.Contains(validFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("logging.format must be one of %s", strings.Join(validFormats, ", "))
	}

	// Validate generator settings
	if c.Generator.Width < 0 || c.Generator.Height < 0 {
		return fmt.Errorf("generator.width and generator.height must be non-negative")
	}
	if c.Generator.BlockRatio < 0 || c.Generator.BlockRatio >= 1 {
		return fmt.Errorf("generator.block_ratio must be in [0, 1)")
	}
	if c.Generator.WallRatio < 0 || c.Generator.WallRatio >= 1 {
		return fmt.Errorf("generator.wall_ratio must be in [0, 1)")
	}

	return nil
}
