package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// effectiveConfig mirrors SiteConfig for display with secrets masked.
type effectiveConfig struct {
	Name          string `yaml:"name"`
	URL           string `yaml:"url"`
	Description   string `yaml:"description,omitempty"`
	Author        string `yaml:"author,omitempty"`
	GitHubID      string `yaml:"github_id"`
	SubscribeURL  string `yaml:"subscribe_url,omitempty"`
	ImageQuality  int    `yaml:"image_quality"`
	Addr          string `yaml:"addr"`
	DatabasePath  string `yaml:"database_path"`
	LogLevel      string `yaml:"log_level"`
	AdminPassword string `yaml:"admin_password"`
	SessionSecret string `yaml:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure"`
	PostCacheTTL  string `yaml:"post_cache_ttl"`
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := siteCfg.Defaults()
		out, err := yaml.Marshal(effectiveConfig{
			Name:          c.Name,
			URL:           c.URL,
			Description:   c.Description,
			Author:        c.Author,
			GitHubID:      c.GitHubID,
			SubscribeURL:  c.SubscribeURL,
			ImageQuality:  c.ImageQuality,
			Addr:          c.Addr,
			DatabasePath:  c.DatabasePath,
			LogLevel:      c.LogLevel,
			AdminPassword: mask(c.AdminPassword),
			SessionSecret: mask(c.SessionSecret),
			CookieSecure:  c.CookieSecure,
			PostCacheTTL:  c.PostCacheTTL.String(),
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the notebook version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notebook %s\n", version)
	},
}
