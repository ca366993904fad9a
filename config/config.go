// Package config loads the postbot configuration from defaults, an optional
// YAML file, a .env file and the process environment, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported model providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Supported ways of pressing Enter.
const (
	KeypressBrowser = "browser"
	KeypressCommand = "command"
)

const (
	// GeminiOpenAIURL is the OpenAI compatible endpoint of the Gemini API.
	GeminiOpenAIURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	// DefaultPhone pre-fills the phone number field.
	DefaultPhone = "+923001234567"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gemini-2.0-flash",
	ProviderGemini:    "gemini-2.0-flash",
	ProviderAnthropic: "claude-3-5-sonnet-20240620",
}

// Config is built once at startup and is read only afterwards.
type Config struct {
	Provider        string        `yaml:"provider"`
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	Model           string        `yaml:"model"`
	Temperature     float64       `yaml:"temperature"`
	Addr            string        `yaml:"addr"`
	DefaultPhone    string        `yaml:"default_phone"`
	ScheduleLead    time.Duration `yaml:"schedule_lead"`
	LoadWait        time.Duration `yaml:"load_wait"`
	Keypress        string        `yaml:"keypress"`
	KeypressCommand string        `yaml:"keypress_command"`
	BrowserDir      string        `yaml:"browser_dir"`
	Headless        bool          `yaml:"headless"`
	Timezone        string        `yaml:"timezone"`
	Debug           bool          `yaml:"-"`
}

// Default returns the configuration used when nothing overrides it. The model
// is chosen per provider by Load.
func Default() Config {
	return Config{
		Provider:        ProviderOpenAI,
		BaseURL:         GeminiOpenAIURL,
		Addr:            ":8501",
		DefaultPhone:    DefaultPhone,
		ScheduleLead:    time.Minute,
		LoadWait:        15 * time.Second,
		Keypress:        KeypressBrowser,
		KeypressCommand: "xdotool key Return",
		BrowserDir:      ".postbot-browser",
	}
}

// Load builds the configuration. The YAML file at configPath and the env file
// are both optional; a missing env file is ignored but a missing config file
// is an error when configPath is set.
func Load(configPath, envFile string, debug bool) (Config, error) {
	cfg := Default()
	cfg.Debug = debug

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	if configPath != "" {
		if err := cfg.loadFromYAML(configPath); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// KeyEnv is the environment variable holding the API key for the provider.
func KeyEnv(provider string) string {
	if provider == ProviderAnthropic {
		return "ANTHROPIC_API_KEY"
	}
	return "GEMINI_API_KEY"
}

// Location is the time zone that schedules are computed in.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) loadFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("POSTBOT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(KeyEnv(c.Provider)); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("POSTBOT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("POSTBOT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("POSTBOT_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("POSTBOT_KEYPRESS"); v != "" {
		c.Keypress = v
	}
	if v := os.Getenv("POSTBOT_KEYPRESS_COMMAND"); v != "" {
		c.KeypressCommand = v
	}
	if v := os.Getenv("POSTBOT_BROWSER_DIR"); v != "" {
		c.BrowserDir = v
	}
	if v := os.Getenv("POSTBOT_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("POSTBOT_HEADLESS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("POSTBOT_HEADLESS: %w", err)
		}
		c.Headless = b
	}
	if v := os.Getenv("POSTBOT_LOAD_WAIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POSTBOT_LOAD_WAIT: %w", err)
		}
		c.LoadWait = d
	}
	if v := os.Getenv("POSTBOT_SCHEDULE_LEAD"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("POSTBOT_SCHEDULE_LEAD: %w", err)
		}
		c.ScheduleLead = d
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unsupported provider %q", c.Provider)
	}
	switch c.Keypress {
	case KeypressBrowser:
	case KeypressCommand:
		if c.KeypressCommand == "" {
			return errors.New("keypress_command is required when keypress is command")
		}
	default:
		return fmt.Errorf("unsupported keypress %q", c.Keypress)
	}
	if c.ScheduleLead < 0 || c.LoadWait < 0 {
		return errors.New("schedule_lead and load_wait must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s not found in environment or .env", KeyEnv(c.Provider))
	}
	return nil
}
