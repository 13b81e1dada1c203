package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFlipDelayMS = 3000
	DefaultFontSize    = 60
	DefaultDataPath    = "data/words.csv"

	DefaultBackground = "#B1DDC6"
	DefaultCardFront  = "#FFFFFF"
	DefaultCardBack   = "#2C3E50"

	envPrefix = "FLASHCARDS_"
)

// Config is the startup configuration. Study settings in it are only the
// initial values; the TUI can change them live without writing them back.
type Config struct {
	DataPath    string `yaml:"data_path"`
	FlipDelayMS int    `yaml:"flip_delay_ms"`
	FontSize    int    `yaml:"font_size"`
	Colors      Colors `yaml:"colors"`
	LogPath     string `yaml:"log_path"`
	LogLevel    string `yaml:"log_level"`
}

type Colors struct {
	Background string `yaml:"background"`
	CardFront  string `yaml:"card_front"`
	CardBack   string `yaml:"card_back"`
}

func Default() Config {
	return Config{
		DataPath:    DefaultDataPath,
		FlipDelayMS: DefaultFlipDelayMS,
		FontSize:    DefaultFontSize,
		Colors: Colors{
			Background: DefaultBackground,
			CardFront:  DefaultCardFront,
			CardBack:   DefaultCardBack,
		},
		LogPath:  defaultLogPath(),
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// FLASHCARDS_* environment variables, in that order of precedence.
// An empty path means no file; a missing explicit file is an error.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.DataPath = getEnv("DATA_PATH", c.DataPath)
	c.Colors.Background = getEnv("BACKGROUND_COLOR", c.Colors.Background)
	c.Colors.CardFront = getEnv("CARD_FRONT_COLOR", c.Colors.CardFront)
	c.Colors.CardBack = getEnv("CARD_BACK_COLOR", c.Colors.CardBack)
	c.LogPath = getEnv("LOG_PATH", c.LogPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	var err error
	if c.FlipDelayMS, err = getEnvInt("FLIP_DELAY_MS", c.FlipDelayMS); err != nil {
		return err
	}
	if c.FontSize, err = getEnvInt("FONT_SIZE", c.FontSize); err != nil {
		return err
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(envPrefix + key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(envPrefix + key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s must be a whole number: %w", envPrefix, key, err)
	}
	return n, nil
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "flashcards", "flashcards.log")
}
