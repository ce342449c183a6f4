// Package config loads the scraper configuration from a TOML file.
// Every knob has a default so an empty file is a valid configuration.
package config

import (
	"os"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/pelletier/go-toml/v2"
)

// Config is the single typed configuration for a scrape run.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Crawler CrawlerConfig `toml:"crawler"`
	Browser BrowserConfig `toml:"browser"`
	Cache   CacheConfig   `toml:"cache"`
	Upload  UploadConfig  `toml:"upload"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type OutputConfig struct {
	Dir       string `toml:"dir"`
	Prefix    string `toml:"prefix"`
	SiteTitle string `toml:"site_title"`
}

type CrawlerConfig struct {
	Workers        int     `toml:"workers"`
	CallsPerSecond float64 `toml:"calls_per_second"`
	MaxPages       int     `toml:"max_pages"`
}

type BrowserConfig struct {
	PageTimeout string `toml:"page_timeout"`
}

// CacheConfig selects the cache backend. Backend is "fs" or "sqlite";
// Location is the cache directory for fs and the database path for
// sqlite.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	Location string `toml:"location"`
}

type UploadConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with every field set to its default value.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:       "output",
			Prefix:    "docs",
			SiteTitle: "Documentation",
		},
		Crawler: CrawlerConfig{
			Workers:        4,
			CallsPerSecond: 2,
			MaxPages:       1000,
		},
		Browser: BrowserConfig{
			PageTimeout: "30s",
		},
		Cache: CacheConfig{
			Backend:  "fs",
			Location: ".doccorpus-cache",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINVALID, "parsing config %s: %v", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Cache.Backend != "fs" && c.Cache.Backend != "sqlite" {
		return doccorpus.Errorf(doccorpus.EINVALID, "unknown cache backend %q (want fs or sqlite)", c.Cache.Backend)
	}
	if c.Crawler.Workers < 1 {
		return doccorpus.Errorf(doccorpus.EINVALID, "crawler workers must be at least 1")
	}
	if c.Crawler.CallsPerSecond <= 0 {
		return doccorpus.Errorf(doccorpus.EINVALID, "calls_per_second must be positive")
	}
	if _, err := time.ParseDuration(c.Browser.PageTimeout); err != nil {
		return doccorpus.Errorf(doccorpus.EINVALID, "invalid page_timeout %q", c.Browser.PageTimeout)
	}
	return nil
}

// GetPageTimeout returns the parsed browser page timeout.
func (c *BrowserConfig) GetPageTimeout() time.Duration {
	d, err := time.ParseDuration(c.PageTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
