package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values no run could work with.
func (c *Config) Validate() error {
	if err := ValidateLogLevel(c.Logger.Level); err != nil {
		return err
	}
	if err := ValidateLogEncoding(c.Logger.Encoding); err != nil {
		return err
	}
	if err := ValidatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if c.Fetch.Timeout <= 0 {
		return &ValidationError{Field: "fetch.timeout", Message: "must be positive"}
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return &ValidationError{Field: "fetch.max_body_bytes", Message: "must be positive"}
	}
	if c.Fetch.Retries < 0 {
		return &ValidationError{Field: "fetch.retries", Message: "must not be negative"}
	}
	if c.Serp.TopN > c.Serp.Results {
		return &ValidationError{Field: "serp.top_n", Message: "must not exceed serp.results"}
	}
	if c.Serp.RequestsPerSecond <= 0 {
		return &ValidationError{Field: "serp.requests_per_second", Message: "must be positive"}
	}
	if c.Analyzer.Workers < 1 {
		return &ValidationError{Field: "analyzer.workers", Message: "must be at least 1"}
	}
	if c.Compare.ThresholdDays < 0 {
		return &ValidationError{Field: "compare.threshold_days", Message: "must not be negative"}
	}
	if err := ValidateReportFormat(c.Report.Format); err != nil {
		return err
	}
	return nil
}

// ValidatePort checks if a port number is valid.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// ValidateLogLevel checks if a log level is valid.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: "logger.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
}

// ValidateLogEncoding checks if a log encoding is valid.
func ValidateLogEncoding(encoding string) error {
	switch encoding {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: "logger.encoding", Message: "must be one of: json, console"}
	}
}

// ValidateReportFormat checks if a report format is valid.
func ValidateReportFormat(format string) error {
	switch format {
	case "csv", "xlsx":
		return nil
	default:
		return &ValidationError{Field: "report.format", Message: "must be one of: csv, xlsx"}
	}
}
