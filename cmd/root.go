// Package cmd implements the command-line interface for gofresh.
// It provides the root command and subcommands for checking page
// freshness against ranked competitors.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonesrussell/gofresh/cmd/check"
	"github.com/jonesrussell/gofresh/cmd/httpd"
	"github.com/jonesrussell/gofresh/cmd/resolve"
	serpcmd "github.com/jonesrussell/gofresh/cmd/serp"
	"github.com/jonesrussell/gofresh/cmd/watch"
	"github.com/jonesrussell/gofresh/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands.
	Debug bool

	rootCmd = &cobra.Command{
		Use:   "gofresh",
		Short: "Page freshness checker",
		Long: `gofresh estimates when web pages were last meaningfully updated
and flags pages that have fallen behind their ranked competitors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are available to Viper.
	_ = godotenv.Load()

	// Parse flags early to get the debug flag before building loggers.
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gofresh version %s\n", "1.0.0")
		},
	})

	rootCmd.AddCommand(check.Command())
	rootCmd.AddCommand(resolve.Command())
	rootCmd.AddCommand(serpcmd.Command())
	rootCmd.AddCommand(httpd.Command())
	rootCmd.AddCommand(watch.Command())
}

// initConfig reads ENV variables into Viper and binds the global flags.
// The typed configuration itself is loaded per command from the config
// file; Viper carries the flag and environment layer on top.
func initConfig() error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := bindCommandLineFlags(); err != nil {
		return err
	}
	if err := bindAppEnvVars(); err != nil {
		return err
	}

	setupDevelopmentLogging()
	return nil
}

// bindCommandLineFlags binds command-line flags to Viper.
func bindCommandLineFlags() error {
	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		return fmt.Errorf("failed to bind config flag: %w", err)
	}
	return nil
}

// bindAppEnvVars maps well-known environment variables to config keys.
func bindAppEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("app.debug", "APP_DEBUG"); err != nil {
		return fmt.Errorf("failed to bind APP_DEBUG: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	if err := viper.BindEnv("serp.api_key", "SERPAPI_KEY"); err != nil {
		return fmt.Errorf("failed to bind SERPAPI_KEY: %w", err)
	}
	return nil
}

// setupDevelopmentLogging turns on verbose console logging when the debug
// flag or environment asks for it.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.enable_color", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values for the Viper layer.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        config.DefaultAppName,
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "json",
		"enable_color": false,
	})

	viper.SetDefault("compare", map[string]any{
		"threshold_days": config.DefaultThresholdDays,
	})

	viper.SetDefault("analyzer", map[string]any{
		"workers": config.DefaultWorkers,
	})
}
