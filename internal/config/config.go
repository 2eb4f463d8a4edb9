// Package config loads the application configuration from a YAML file with
// environment variable overrides applied on top.
package config

import (
	"strconv"
	"time"

	"github.com/jonesrussell/gofresh/internal/logger"
)

// DefaultConfigPath is consulted when no config flag is given.
const DefaultConfigPath = "config.yml"

// Config is the root configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Logger   LoggerConfig   `yaml:"logger"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Serp     SerpConfig     `yaml:"serp"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Compare  CompareConfig  `yaml:"compare"`
	Report   ReportConfig   `yaml:"report"`
	Server   ServerConfig   `yaml:"server"`
	Watch    WatchConfig    `yaml:"watch"`
	Sites    SitesConfig    `yaml:"sites"`
}

// AppConfig identifies the running application.
type AppConfig struct {
	Name        string `yaml:"name" env:"GOFRESH_APP_NAME"`
	Environment string `yaml:"environment" env:"GOFRESH_ENVIRONMENT"`
	Debug       bool   `yaml:"debug" env:"GOFRESH_DEBUG"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level       string   `yaml:"level" env:"GOFRESH_LOG_LEVEL"`
	Development bool     `yaml:"development" env:"GOFRESH_LOG_DEVELOPMENT"`
	Encoding    string   `yaml:"encoding" env:"GOFRESH_LOG_ENCODING"`
	OutputPaths []string `yaml:"output_paths" env:"GOFRESH_LOG_OUTPUT_PATHS"`
	EnableColor bool     `yaml:"enable_color" env:"GOFRESH_LOG_COLOR"`
}

// Build converts the section into the logger package's config.
func (c *LoggerConfig) Build() *logger.Config {
	return &logger.Config{
		Level:       logger.Level(c.Level),
		Development: c.Development,
		Encoding:    c.Encoding,
		OutputPaths: c.OutputPaths,
		EnableColor: c.EnableColor,
	}
}

// FetchConfig controls page retrieval.
type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout" env:"GOFRESH_FETCH_TIMEOUT"`
	UserAgent    string        `yaml:"user_agent" env:"GOFRESH_FETCH_USER_AGENT"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"GOFRESH_FETCH_MAX_BODY_BYTES"`
	Retries      int           `yaml:"retries" env:"GOFRESH_FETCH_RETRIES"`
}

// SerpConfig controls ranked-result retrieval.
type SerpConfig struct {
	APIKey            string        `yaml:"api_key" env:"SERPAPI_KEY"`
	BaseURL           string        `yaml:"base_url" env:"GOFRESH_SERP_BASE_URL"`
	Engine            string        `yaml:"engine" env:"GOFRESH_SERP_ENGINE"`
	Results           int           `yaml:"results" env:"GOFRESH_SERP_RESULTS"`
	TopN              int           `yaml:"top_n" env:"GOFRESH_SERP_TOP_N"`
	Language          string        `yaml:"language" env:"GOFRESH_SERP_LANGUAGE"`
	Country           string        `yaml:"country" env:"GOFRESH_SERP_COUNTRY"`
	Timeout           time.Duration `yaml:"timeout" env:"GOFRESH_SERP_TIMEOUT"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"GOFRESH_SERP_RPS"`
	Exclude           []string      `yaml:"exclude" env:"GOFRESH_SERP_EXCLUDE"`
}

// AnalyzerConfig controls batch analysis.
type AnalyzerConfig struct {
	Workers int `yaml:"workers" env:"GOFRESH_ANALYZER_WORKERS"`
}

// CompareConfig controls the staleness verdict.
type CompareConfig struct {
	ThresholdDays int `yaml:"threshold_days" env:"GOFRESH_COMPARE_THRESHOLD_DAYS"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	OutputPath string `yaml:"output_path" env:"GOFRESH_REPORT_OUTPUT_PATH"`
	Format     string `yaml:"format" env:"GOFRESH_REPORT_FORMAT"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string        `yaml:"host" env:"GOFRESH_SERVER_HOST"`
	Port         int           `yaml:"port" env:"GOFRESH_SERVER_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"GOFRESH_SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"GOFRESH_SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"GOFRESH_SERVER_IDLE_TIMEOUT"`
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// WatchConfig controls scheduled re-analysis.
type WatchConfig struct {
	Schedule  string `yaml:"schedule" env:"GOFRESH_WATCH_SCHEDULE"`
	InputPath string `yaml:"input_path" env:"GOFRESH_WATCH_INPUT_PATH"`
}

// SitesConfig points at an optional publisher profile pack.
type SitesConfig struct {
	Path string `yaml:"path" env:"GOFRESH_SITES_PATH"`
}

// Load reads the configuration at path, fills in defaults, and validates
// the result. The environment always wins over file values.
func Load(path string) (*Config, error) {
	cfg, err := loadWithDefaults[Config](path, func(c *Config) { c.SetDefaults() })
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the built-in configuration with environment overrides
// applied, for running without a config file.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	applyEnvOverrides(cfg)
	return cfg
}
