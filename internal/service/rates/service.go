package rates

import (
	"context"
	"log/slog"

	"widget-currency/internal"
)

type Client interface {
	LatestRates(ctx context.Context, base internal.CurrencyCode) (*internal.ExchangeRateSnapshot, error)
}

type Service struct {
	client Client
	log    *slog.Logger
}

func New(client Client, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{client: client, log: log}
}

// FetchRates returns a fresh snapshot for base. Snapshots are never cached.
func (s *Service) FetchRates(ctx context.Context, base internal.CurrencyCode) internal.Result[internal.ExchangeRateSnapshot] {
	snap, err := s.client.LatestRates(ctx, base)
	if err != nil {
		s.log.ErrorContext(ctx, "fetch rates",
			slog.String("base", base.String()),
			slog.String("error", err.Error()),
		)
		return internal.Failure[internal.ExchangeRateSnapshot]()
	}
	if snap == nil {
		return internal.Failure[internal.ExchangeRateSnapshot]()
	}
	return internal.Success(*snap)
}
