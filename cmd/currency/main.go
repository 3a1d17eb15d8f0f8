package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"widget-currency/internal/clients/exchangerate"
	"widget-currency/internal/clients/restcountries"
	"widget-currency/internal/service/catalog"
	"widget-currency/internal/service/converter"
	"widget-currency/internal/service/logger"
	"widget-currency/internal/service/notifier"
	ratessvc "widget-currency/internal/service/rates"
	"widget-currency/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	// env
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// logs go to a file: the terminal belongs to the UI
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}
	defer func() { _ = logFile.Close() }()

	lg := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(lg)
	reqLogger := logger.New(lg)

	// clients
	countriesClient := restcountries.New(cfg.HTTPTimeout, reqLogger)
	countriesClient.BaseURL = cfg.CountriesURL

	ratesClient := exchangerate.New(cfg.APIKey, cfg.HTTPTimeout, reqLogger)
	ratesClient.BaseURL = cfg.RatesURL

	// services
	ports := tui.NewPorts()
	catalogService := catalog.New(countriesClient, cfg.Locale, lg)
	ratesService := ratessvc.New(ratesClient, lg)
	controller := converter.New(ratesService, ports, ports, notifier.New(ports), lg)

	p := tea.NewProgram(
		tui.New(ctx, catalogService, controller, ports),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	ports.Attach(p)

	lg.Info("widget started", slog.String("locale", cfg.Locale.String()))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	lg.Info("widget stopped")
	return nil
}
