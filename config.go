package notebook

import "time"

// SiteConfig holds all configuration for a notebook site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Notebook")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	// GitHubID is the account that hosts the site's source in a repository of
	// the same name. Edit links point at blog/<slug>.mdx in that repository.
	GitHubID     string `mapstructure:"github_id"`
	SubscribeURL string `mapstructure:"subscribe_url"` // newsletter embed shown under blog posts
	ImageQuality int    `mapstructure:"image_quality"` // proxy quality for post images (default 100)

	Addr         string `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string `mapstructure:"database_path"` // SQLite path (default "data/notebook.db")
	LogLevel     string `mapstructure:"log_level"`     // debug, info, warn, error (default "info")

	AdminPassword string `mapstructure:"admin_password"` // Required: plain text or bcrypt hash (notebook hash-password)
	SessionSecret string `mapstructure:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL time.Duration `mapstructure:"post_cache_ttl"` // Post cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Notebook"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ImageQuality == 0 {
		c.ImageQuality = 100
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/notebook.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// Defaults returns a copy of c with every unset field filled in.
func (c SiteConfig) Defaults() SiteConfig {
	c.setDefaults()
	return c
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStore makes the App use an already opened store instead of opening
// DatabasePath on Start.
func WithStore(s *Store) Option {
	return func(a *App) {
		a.Store = s
	}
}
