package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"widget-currency/internal/clients/exchangerate"
	"widget-currency/internal/clients/restcountries"
)

type Config struct {
	APIKey string

	CountriesURL string
	RatesURL     string
	HTTPTimeout  time.Duration

	Locale language.Tag

	LogFile  string
	LogLevel slog.Level
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("COUNTRIES_URL", restcountries.DefaultBaseURL)
	v.SetDefault("EXCHANGE_RATE_URL", exchangerate.DefaultBaseURL)
	v.SetDefault("HTTP_TIMEOUT", "20s")
	v.SetDefault("LOCALE", "en")
	v.SetDefault("LOG_FILE", "currency.log")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	cfg := Config{
		CountriesURL: strings.TrimSpace(v.GetString("COUNTRIES_URL")),
		RatesURL:     strings.TrimSpace(v.GetString("EXCHANGE_RATE_URL")),
		LogFile:      strings.TrimSpace(v.GetString("LOG_FILE")),
	}

	cfg.APIKey = strings.TrimSpace(v.GetString("EXCHANGE_RATE_API_KEY"))
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("EXCHANGE_RATE_API_KEY is empty")
	}

	cfg.HTTPTimeout = v.GetDuration("HTTP_TIMEOUT")
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT must be positive, got %q", v.GetString("HTTP_TIMEOUT"))
	}

	tag, err := language.Parse(strings.TrimSpace(v.GetString("LOCALE")))
	if err != nil {
		return Config{}, fmt.Errorf("LOCALE: %w", err)
	}
	cfg.Locale = tag

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v.GetString("LOG_LEVEL")))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
