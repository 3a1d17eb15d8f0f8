package internal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const decimals = 2

// LatestRatesResponse is the payload of the "latest" rates endpoint.
type LatestRatesResponse struct {
	Result          string                   `json:"result"`
	ErrorType       string                   `json:"error-type,omitempty"`
	BaseCode        CurrencyCode             `json:"base_code"`
	UpdatedAt       Date                     `json:"time_last_update_utc"`
	ConversionRates map[CurrencyCode]float64 `json:"conversion_rates"`
}

type ExchangeRateSnapshot struct {
	Base      CurrencyCode
	Rates     map[CurrencyCode]float64
	UpdatedAt Date
}

func (s ExchangeRateSnapshot) Rate(quote CurrencyCode) (float64, bool) {
	r, ok := s.Rates[quote]
	return r, ok
}

type ConversionResult struct {
	// Amount is the amount exactly as the user typed it.
	Amount    string
	From      CurrencyCode
	To        CurrencyCode
	Converted decimal.Decimal
	// AsOf is when the rate source last updated the rate used.
	AsOf Date
}

// Convert multiplies amount by rate. The result keeps full precision; it is
// rounded only when rendered.
func Convert(amountText string, amount decimal.Decimal, from, to CurrencyCode, rate float64) ConversionResult {
	return ConversionResult{
		Amount:    amountText,
		From:      from,
		To:        to,
		Converted: decimal.NewFromFloat(rate).Mul(amount),
	}
}

func (r ConversionResult) String() string {
	return fmt.Sprintf("%s %s = %s %s", r.Amount, r.From, r.Converted.StringFixed(decimals), r.To)
}
