package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/notebook"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	siteCfg notebook.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "A personal blog and startup notebook built with Go, Echo, and templ",
	Long: `notebook serves a blog and a startup notebook from a SQLite database.

Configuration comes from notebook.yaml (or --config) and NOTEBOOK_* environment
variables, e.g. NOTEBOOK_GITHUB_ID, NOTEBOOK_ADMIN_PASSWORD.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./notebook.yaml)")
	rootCmd.AddCommand(serveCmd, importCmd, configCmd, hashPasswordCmd, versionCmd)
}

// configKeys lists every key that may come from the environment. viper only
// unmarshals env values for keys it already knows about.
var configKeys = map[string]any{
	"name":           "Notebook",
	"url":            "http://localhost:3000",
	"description":    "",
	"author":         "",
	"github_id":      "",
	"subscribe_url":  "",
	"image_quality":  100,
	"addr":           ":3000",
	"database_path":  "data/notebook.db",
	"log_level":      "info",
	"admin_password": "",
	"session_secret": "",
	"cookie_secure":  false,
	"post_cache_ttl": "5m",
}

func initializeConfig() error {
	v := viper.New()
	for k, def := range configKeys {
		v.SetDefault(k, def)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("notebook")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("NOTEBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	if err := v.Unmarshal(&siteCfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}
