package config

import "time"

// Default values applied to any section left unset.
const (
	DefaultAppName       = "gofresh"
	DefaultEnvironment   = "development"
	DefaultFetchTimeout  = 15 * time.Second
	DefaultMaxBodyBytes  = 10 * 1024 * 1024
	DefaultFetchRetries  = 2
	DefaultSerpBaseURL   = "https://serpapi.com/search"
	DefaultSerpEngine    = "google"
	DefaultSerpResults   = 10
	DefaultSerpTopN      = 3
	DefaultSerpLanguage  = "en"
	DefaultSerpCountry   = "us"
	DefaultSerpTimeout   = 25 * time.Second
	DefaultSerpRPS       = 1.0
	DefaultWorkers       = 4
	DefaultThresholdDays = 7
	DefaultReportPath    = "report.csv"
	DefaultReportFormat  = "csv"
	DefaultServerPort    = 8080
	DefaultReadTimeout   = 30 * time.Second
	DefaultWriteTimeout  = 30 * time.Second
	DefaultIdleTimeout   = 60 * time.Second
	DefaultWatchSchedule = "0 6 * * *"
	DefaultWatchInput    = "keywords.csv"
)

// DefaultUserAgent is sent on every page fetch. Sites serve the dated
// article template to desktop browsers; the default identifies as one.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

// DefaultSerpExclude drops the target's own domain and known junk from
// competitor lists.
var DefaultSerpExclude = []string{"cnet.com", "reddit.com"}

// SetDefaults fills unset fields across every section.
func (c *Config) SetDefaults() {
	c.App.SetDefaults()
	c.Logger.SetDefaults()
	c.Fetch.SetDefaults()
	c.Serp.SetDefaults()
	c.Analyzer.SetDefaults()
	c.Compare.SetDefaults()
	c.Report.SetDefaults()
	c.Server.SetDefaults()
	c.Watch.SetDefaults()
}

// SetDefaults applies default values for AppConfig.
func (c *AppConfig) SetDefaults() {
	if c.Name == "" {
		c.Name = DefaultAppName
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
}

// SetDefaults applies default values for LoggerConfig.
func (c *LoggerConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Encoding == "" {
		c.Encoding = "console"
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = []string{"stdout"}
	}
}

// SetDefaults applies default values for FetchConfig.
func (c *FetchConfig) SetDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultFetchTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Retries == 0 {
		c.Retries = DefaultFetchRetries
	}
}

// SetDefaults applies default values for SerpConfig.
func (c *SerpConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultSerpBaseURL
	}
	if c.Engine == "" {
		c.Engine = DefaultSerpEngine
	}
	if c.Results == 0 {
		c.Results = DefaultSerpResults
	}
	if c.TopN == 0 {
		c.TopN = DefaultSerpTopN
	}
	if c.Language == "" {
		c.Language = DefaultSerpLanguage
	}
	if c.Country == "" {
		c.Country = DefaultSerpCountry
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultSerpTimeout
	}
	if c.RequestsPerSecond == 0 {
		c.RequestsPerSecond = DefaultSerpRPS
	}
	if c.Exclude == nil {
		c.Exclude = append([]string(nil), DefaultSerpExclude...)
	}
}

// SetDefaults applies default values for AnalyzerConfig.
func (c *AnalyzerConfig) SetDefaults() {
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

// SetDefaults applies default values for CompareConfig.
func (c *CompareConfig) SetDefaults() {
	if c.ThresholdDays == 0 {
		c.ThresholdDays = DefaultThresholdDays
	}
}

// SetDefaults applies default values for ReportConfig.
func (c *ReportConfig) SetDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultReportPath
	}
	if c.Format == "" {
		c.Format = DefaultReportFormat
	}
}

// SetDefaults applies default values for ServerConfig.
func (c *ServerConfig) SetDefaults() {
	if c.Port == 0 {
		c.Port = DefaultServerPort
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
}

// SetDefaults applies default values for WatchConfig.
func (c *WatchConfig) SetDefaults() {
	if c.Schedule == "" {
		c.Schedule = DefaultWatchSchedule
	}
	if c.InputPath == "" {
		c.InputPath = DefaultWatchInput
	}
}
