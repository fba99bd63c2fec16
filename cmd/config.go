package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	finanzas "github.com/Khaaled22/finanzas-app-v5-sub000"
	"github.com/Khaaled22/finanzas-app-v5-sub000/agent"
	"github.com/Khaaled22/finanzas-app-v5-sub000/rates"
	"github.com/Khaaled22/finanzas-app-v5-sub000/store"
)

// Rates sources.
const (
	RatesStatic = "static"
	RatesAPI    = "api"
)

// Environment variables overriding the configuration file.
const (
	EnvDisplayCurrency = "FIN_DISPLAY_CURRENCY"
	EnvStore           = "FIN_STORE"
	EnvStorePath       = "FIN_STORE_PATH"
	EnvRedisAddr       = "REDIS_ADDR"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvRatesURL        = "FIN_RATES_URL"
)

// Config is the content of finanzas.yaml.
type Config struct {
	DisplayCurrency string        `yaml:"display_currency"`
	Store           store.Config  `yaml:"store"`
	Rates           RatesConfig   `yaml:"rates"`
	Advisor         AdvisorConfig `yaml:"advisor"`
}

// RatesConfig tells how amounts in other currencies are converted.
type RatesConfig struct {
	Source string             `yaml:"source"` // static or api
	Base   string             `yaml:"base"`
	Values map[string]float64 `yaml:"values"` // units of currency for one unit of base
	URL    string             `yaml:"url"`
}

type AdvisorConfig struct {
	Model string `yaml:"model"`
}

// DefaultConfig is the configuration used when there is no configuration file.
func DefaultConfig() *Config {
	return &Config{
		DisplayCurrency: finanzas.DefaultCurrency,
		Store:           store.Config{Backend: store.BackendFile, Path: "data"},
		Rates:           RatesConfig{Source: RatesStatic, Base: finanzas.DefaultCurrency},
		Advisor:         AdvisorConfig{Model: agent.DefaultModel},
	}
}

// LoadConfig reads the configuration file at path and applies the environment overrides.
// A missing file is not an error: defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("warning, configuration %q does not exist, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("could not read configuration: %w", err)
	default:
		if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration %q: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.DisplayCurrency, EnvDisplayCurrency)
	set(&c.Store.Backend, EnvStore)
	set(&c.Store.Path, EnvStorePath)
	set(&c.Store.RedisAddr, EnvRedisAddr)
	set(&c.Store.PostgresURL, EnvDatabaseURL)
	if v := getenv(EnvRatesURL); v != "" {
		c.Rates.URL = v
		c.Rates.Source = RatesAPI
	}
}

func (c *Config) validate() error {
	c.DisplayCurrency = strings.ToUpper(c.DisplayCurrency)
	if err := finanzas.ValidateCurrency(c.DisplayCurrency); err != nil {
		return fmt.Errorf("display_currency: %w", err)
	}
	if c.Rates.Base == "" {
		c.Rates.Base = c.DisplayCurrency
	}
	c.Rates.Base = strings.ToUpper(c.Rates.Base)
	if err := finanzas.ValidateCurrency(c.Rates.Base); err != nil {
		return fmt.Errorf("rates.base: %w", err)
	}
	switch c.Rates.Source {
	case "":
		c.Rates.Source = RatesStatic
	case RatesStatic, RatesAPI:
	default:
		return fmt.Errorf("rates.source must be %s or %s, not %q", RatesStatic, RatesAPI, c.Rates.Source)
	}
	return nil
}

// StaticRates returns the rates written in the configuration.
func (c *Config) StaticRates() *finanzas.Rates {
	r := finanzas.NewRates(c.Rates.Base)
	for cur, v := range c.Rates.Values {
		r.Set(cur, decimal.NewFromFloat(v))
	}
	return r
}

// Converter returns the converter to use: fetched rates when the source is the api,
// falling back to the static rates when they cannot be fetched.
func (c *Config) Converter(ctx context.Context) finanzas.Converter {
	static := c.StaticRates()
	if c.Rates.Source != RatesAPI {
		return static
	}
	r, err := rates.New(c.Rates.URL).Fetch(ctx, c.Rates.Base)
	if err != nil {
		log.Printf("warning, using static rates: %v", err)
		return static
	}
	return r
}
