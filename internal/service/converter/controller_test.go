package converter_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testifymock "github.com/stretchr/testify/mock"

	"widget-currency/internal"
	"widget-currency/internal/mock"
	"widget-currency/internal/service/converter"
)

type fakeUI struct {
	focused  []internal.Field
	shown    []internal.ConversionResult
	notified []string
}

func (u *fakeUI) Focus(field internal.Field) { u.focused = append(u.focused, field) }

func (u *fakeUI) ShowConversion(res internal.ConversionResult) { u.shown = append(u.shown, res) }

func (u *fakeUI) Notify(message string) { u.notified = append(u.notified, message) }

func newController(t *testing.T) (*converter.Controller, *mock.MockRatesFetcher, *fakeUI) {
	fetcher := mock.NewMockRatesFetcher(t)
	ui := &fakeUI{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return converter.New(fetcher, ui, ui, ui, log), fetcher, ui
}

func snapshot(rates map[internal.CurrencyCode]float64) internal.Result[internal.ExchangeRateSnapshot] {
	return internal.Success(internal.ExchangeRateSnapshot{
		Base:      "USD",
		Rates:     rates,
		UpdatedAt: internal.Date{Time: time.Date(2026, 10, 17, 0, 0, 1, 0, time.UTC)},
	})
}

func TestConvert_Success(t *testing.T) {
	c, fetcher, ui := newController(t)
	fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(snapshot(map[internal.CurrencyCode]float64{"EUR": 0.92})).
		Once()

	c.Convert(context.Background(), converter.Input{Amount: "100", Source: "USD", Target: "EUR"})

	require.Len(t, ui.shown, 1)
	assert.Equal(t, "100 USD = 92.00 EUR", ui.shown[0].String())
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 1, 0, time.UTC), ui.shown[0].AsOf.Time)
	assert.Empty(t, ui.notified)
	assert.Empty(t, ui.focused)
}

func TestConvert_Validation(t *testing.T) {
	cases := []struct {
		name    string
		in      converter.Input
		message string
		field   internal.Field
	}{
		{"empty amount", converter.Input{Amount: "", Source: "USD", Target: "EUR"}, "Please Enter an Amount", internal.AmountField},
		{"blank amount", converter.Input{Amount: "   ", Source: "USD", Target: "EUR"}, "Please Enter an Amount", internal.AmountField},
		{"non numeric amount", converter.Input{Amount: "ten", Source: "USD", Target: "EUR"}, "Please Enter an Amount", internal.AmountField},
		{"amount checked first", converter.Input{Amount: "", Source: "", Target: ""}, "Please Enter an Amount", internal.AmountField},
		{"no source", converter.Input{Amount: "100", Source: "", Target: "EUR"}, "Please Select First Currency", internal.SourceField},
		{"source checked before target", converter.Input{Amount: "100", Source: "", Target: ""}, "Please Select First Currency", internal.SourceField},
		{"no target", converter.Input{Amount: "100", Source: "USD", Target: ""}, "Please Select Second Currency", internal.TargetField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// the fetcher has no expectations: any call fails the test
			c, _, ui := newController(t)

			c.Convert(context.Background(), tc.in)

			assert.Equal(t, []string{tc.message}, ui.notified)
			assert.Equal(t, []internal.Field{tc.field}, ui.focused)
			assert.Empty(t, ui.shown)
		})
	}
}

func TestConvert_LogsRejectionCode(t *testing.T) {
	fetcher := mock.NewMockRatesFetcher(t)
	ui := &fakeUI{}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := converter.New(fetcher, ui, ui, ui, log)

	c.Convert(context.Background(), converter.Input{Amount: "ten", Source: "USD", Target: "EUR"})

	assert.Contains(t, buf.String(), "convert rejected")
	assert.Contains(t, buf.String(), "code=amount_invalid")
	assert.Contains(t, buf.String(), "field=amount")
}

func TestConvert_KeepsAmountAsTyped(t *testing.T) {
	c, fetcher, ui := newController(t)
	fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(snapshot(map[internal.CurrencyCode]float64{"EUR": 0.92})).
		Once()

	c.Convert(context.Background(), converter.Input{Amount: " 100", Source: "USD", Target: "EUR"})

	require.Len(t, ui.shown, 1)
	assert.Equal(t, " 100", ui.shown[0].Amount)
	assert.Equal(t, " 100 USD = 92.00 EUR", ui.shown[0].String())
}

func TestConvert_FetchFailed(t *testing.T) {
	c, fetcher, ui := newController(t)
	fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(internal.Failure[internal.ExchangeRateSnapshot]()).
		Once()

	c.Convert(context.Background(), converter.Input{Amount: "100", Source: "USD", Target: "EUR"})

	assert.Equal(t, []string{"Error fetching exchange rate."}, ui.notified)
	assert.Empty(t, ui.shown)
	assert.Empty(t, ui.focused)
}

func TestConvert_NoRateMapping(t *testing.T) {
	c, fetcher, ui := newController(t)
	fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("USD")).
		Return(snapshot(nil)).
		Once()

	c.Convert(context.Background(), converter.Input{Amount: "100", Source: "USD", Target: "EUR"})

	assert.Equal(t, []string{"Error fetching exchange rate."}, ui.notified)
	assert.Empty(t, ui.shown)
}

func TestConvert_RateNotAvailable(t *testing.T) {
	cases := map[string]map[internal.CurrencyCode]float64{
		"missing target": {"GBP": 0.79},
		"zero rate":      {"EUR": 0},
		"empty mapping":  {},
	}

	for name, rates := range cases {
		t.Run(name, func(t *testing.T) {
			c, fetcher, ui := newController(t)
			fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("USD")).
				Return(snapshot(rates)).
				Once()

			c.Convert(context.Background(), converter.Input{Amount: "100", Source: "USD", Target: "EUR"})

			assert.Equal(t, []string{"Conversion rate not available."}, ui.notified)
			assert.Empty(t, ui.shown)
		})
	}
}

func TestConvert_FetchesForSelectedSource(t *testing.T) {
	c, fetcher, ui := newController(t)
	fetcher.On("FetchRates", testifymock.Anything, internal.CurrencyCode("EUR")).
		Return(internal.Success(internal.ExchangeRateSnapshot{
			Base:  "EUR",
			Rates: map[internal.CurrencyCode]float64{"JPY": 162.5},
		})).
		Once()

	c.Convert(context.Background(), converter.Input{Amount: "2.5", Source: "eur", Target: "jpy"})

	require.Len(t, ui.shown, 1)
	assert.Equal(t, "2.5 EUR = 406.25 JPY", ui.shown[0].String())
}
