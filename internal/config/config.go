package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"g1.vc/site/internal/feed"
	"g1.vc/site/internal/illustration"
	"g1.vc/site/internal/models"
)

//go:embed site.yaml
var siteYAML []byte

// Mode selects how third-party embeds are rendered
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeProduction, ModeDevelopment:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeProduction, ModeDevelopment)
	}
}

// UnmarshalText lets env values decode into a Mode
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Config holds all application configuration
type Config struct {
	Server  Server
	Logging Logging
	Site    *models.Site
}

// Server holds HTTP and rendering settings
type Server struct {
	HTTPAddr  string        `env:"G1_SITE_HTTP_ADDR" envDefault:":8080"`
	Mode      Mode          `env:"G1_SITE_MODE" envDefault:"production"`
	FeedDelay time.Duration `env:"G1_SITE_FEED_DELAY" envDefault:"1s"`
	ClientDir string        `env:"G1_SITE_CLIENT_DIR" envDefault:"build/client"`
}

// Logging holds log output settings
type Logging struct {
	Level  string `env:"G1_SITE_LOG_LEVEL" envDefault:"info"`
	Format string `env:"G1_SITE_LOG_FORMAT" envDefault:"json"`
}

// Load reads the environment and the embedded site content
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg.Server); err != nil {
		return nil, err
	}
	if err := ParseEnv(&cfg.Logging); err != nil {
		return nil, err
	}

	site, err := LoadSite()
	if err != nil {
		return nil, err
	}
	cfg.Site = site

	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FeedProvider returns the embed strategy for the configured mode
func (c *Config) FeedProvider() feed.Provider {
	if c.Server.Mode == ModeDevelopment {
		return feed.Preview{}
	}
	return feed.Live{}
}

// LoadSite decodes the embedded site content
func LoadSite() (*models.Site, error) {
	return ParseSite(siteYAML)
}

// ParseSite decodes and validates site content
func ParseSite(data []byte) (*models.Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site models.Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if err := validateSite(&site); err != nil {
		return nil, fmt.Errorf("invalid site content: %w", err)
	}
	return &site, nil
}

func validateSite(site *models.Site) error {
	var errs []error

	if strings.TrimSpace(site.Meta.Title) == "" {
		errs = append(errs, errors.New("meta.title is required"))
	}
	for i, slash := range site.Hero.Slashes {
		if _, err := illustration.FromIndex(slash.Illustration); err != nil {
			errs = append(errs, fmt.Errorf("hero.slashes[%d]: %w", i, err))
		}
	}

	categories := make(map[string]bool, len(site.Partners.Categories))
	for i, c := range site.Partners.Categories {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("partners.categories[%d]: id is required", i))
			continue
		}
		if categories[c.ID] {
			errs = append(errs, fmt.Errorf("partners.categories[%d]: duplicate id %q", i, c.ID))
		}
		categories[c.ID] = true
	}
	for i, a := range site.Showcase.Anchors {
		if !categories[a.Target] {
			errs = append(errs, fmt.Errorf("showcase.anchors[%d]: unknown target %q", i, a.Target))
		}
	}

	items := make(map[string]bool, len(site.Portfolio.Items))
	for i, item := range site.Portfolio.Items {
		if item.ID == "" || items[item.ID] {
			errs = append(errs, fmt.Errorf("portfolio.items[%d]: missing or duplicate id %q", i, item.ID))
		}
		items[item.ID] = true
	}

	for i, f := range site.Social.Feeds {
		if _, err := feed.ParsePlatform(f.Platform); err != nil {
			errs = append(errs, fmt.Errorf("social.feeds[%d]: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
