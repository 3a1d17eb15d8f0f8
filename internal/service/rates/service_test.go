package rates_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testifymock "github.com/stretchr/testify/mock"

	"widget-currency/internal"
	"widget-currency/internal/mock"
	"widget-currency/internal/service/rates"
)

func TestService_FetchRates_Success(t *testing.T) {
	client := mock.NewMockRatesClient(t)
	client.On("LatestRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(&internal.ExchangeRateSnapshot{
			Base:  "USD",
			Rates: map[internal.CurrencyCode]float64{"EUR": 0.92},
		}, nil).
		Once()

	svc := rates.New(client, nil)
	snap, ok := svc.FetchRates(context.Background(), "USD").Get()

	require.True(t, ok)
	assert.Equal(t, internal.CurrencyCode("USD"), snap.Base)
	assert.Equal(t, 0.92, snap.Rates["EUR"])
}

func TestService_FetchRates_EveryCallHitsTheClient(t *testing.T) {
	client := mock.NewMockRatesClient(t)
	client.On("LatestRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(&internal.ExchangeRateSnapshot{Base: "USD"}, nil).
		Twice()

	svc := rates.New(client, nil)
	svc.FetchRates(context.Background(), "USD")
	svc.FetchRates(context.Background(), "USD")
}

func TestService_FetchRates_FailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	client := mock.NewMockRatesClient(t)
	client.On("LatestRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(nil, errors.New("exchangerate http 500: boom")).
		Once()

	svc := rates.New(client, log)
	_, ok := svc.FetchRates(context.Background(), "USD").Get()

	assert.False(t, ok)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "base=USD")
	assert.Contains(t, buf.String(), "exchangerate http 500")
}
