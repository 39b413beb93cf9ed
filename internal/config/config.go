package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     string
	SiteName string

	// Content source: a local directory wins over the remote CMS.
	ContentDir  string
	CMSURL      string
	CMSAPIKey   string
	CMSCacheTTL time.Duration

	// Contact form relay
	FormEndpoint    string
	FormName        string
	FormTimeout     time.Duration
	ContactSubjects []string

	// Auth for the editor API
	PreviewAPIKey string

	StaticDir   string
	LiveReload  bool
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port:     envOr("PORT", "8080"),
		SiteName: envOr("SITE_NAME", "Schaltkraft AG"),

		ContentDir:  os.Getenv("CONTENT_DIR"),
		CMSURL:      os.Getenv("CMS_URL"),
		CMSAPIKey:   os.Getenv("CMS_API_KEY"),
		CMSCacheTTL: envDuration("CMS_CACHE_TTL", 1*time.Minute),

		FormEndpoint:    os.Getenv("FORM_ENDPOINT"),
		FormName:        envOr("FORM_NAME", "contact"),
		FormTimeout:     envDuration("FORM_TIMEOUT", 10*time.Second),
		ContactSubjects: envList("CONTACT_SUBJECTS"),

		PreviewAPIKey: os.Getenv("PREVIEW_API_KEY"),

		StaticDir:   os.Getenv("STATIC_DIR"),
		LiveReload:  envBool("LIVE_RELOAD", false),
		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.CMSCacheTTL <= 0 {
		cfg.CMSCacheTTL = 1 * time.Minute
	}
	if cfg.FormTimeout <= 0 {
		cfg.FormTimeout = 10 * time.Second
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.FormEndpoint == "" {
		return errors.New("FORM_ENDPOINT is required")
	}
	if c.ContentDir == "" && c.CMSURL == "" {
		return errors.New("one of CONTENT_DIR or CMS_URL is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return errors.New("PORT must be numeric")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envList splits a comma separated value, dropping empty entries.
func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
