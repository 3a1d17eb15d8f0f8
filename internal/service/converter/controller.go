package converter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"widget-currency/internal"
	"widget-currency/internal/models"
)

const (
	MsgEnterAmount      = "Please Enter an Amount"
	MsgSelectSource     = "Please Select First Currency"
	MsgSelectTarget     = "Please Select Second Currency"
	MsgFetchFailed      = "Error fetching exchange rate."
	MsgRateNotAvailable = "Conversion rate not available."
)

type RatesFetcher interface {
	FetchRates(ctx context.Context, base internal.CurrencyCode) internal.Result[internal.ExchangeRateSnapshot]
}

type Notifier interface {
	Notify(message string)
}

// Input is the state of the form when the user asked for a conversion.
type Input struct {
	Amount string
	Source string
	Target string
}

type Controller struct {
	rates    RatesFetcher
	form     internal.Form
	display  internal.Display
	notifier Notifier
	log      *slog.Logger
}

func New(rates RatesFetcher, form internal.Form, display internal.Display, notifier Notifier, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		rates:    rates,
		form:     form,
		display:  display,
		notifier: notifier,
		log:      log,
	}
}

// Convert handles one convert action. It either updates the display or
// notifies exactly once. Concurrent calls are independent of each other.
func (c *Controller) Convert(ctx context.Context, in Input) {
	req, uerr := validate(in)
	if uerr != nil {
		c.log.DebugContext(ctx, "convert rejected",
			slog.String("code", uerr.Code),
			slog.String("field", uerr.Field.String()),
		)
		c.notifier.Notify(uerr.Message)
		c.form.Focus(uerr.Field)
		return
	}

	snap, ok := c.rates.FetchRates(ctx, req.from).Get()
	if !ok || snap.Rates == nil {
		c.notifier.Notify(MsgFetchFailed)
		return
	}

	rate, ok := snap.Rate(req.to)
	if !ok || rate == 0 {
		c.notifier.Notify(MsgRateNotAvailable)
		return
	}

	res := internal.Convert(req.amountText, req.amount, req.from, req.to, rate)
	res.AsOf = snap.UpdatedAt
	c.display.ShowConversion(res)
}

type request struct {
	amountText string
	amount     decimal.Decimal
	from       internal.CurrencyCode
	to         internal.CurrencyCode
}

// validate checks the form in display order; the first failure wins. The
// amount is parsed without surrounding blanks but kept as typed for display.
func validate(in Input) (request, *models.UserError) {
	trimmed := strings.TrimSpace(in.Amount)
	if trimmed == "" {
		return request{}, models.NewUserError("amount_missing", MsgEnterAmount, internal.AmountField)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return request{}, models.NewUserError("amount_invalid", MsgEnterAmount, internal.AmountField)
	}

	from := internal.NewCurrencyCode(in.Source)
	if from.IsZero() {
		return request{}, models.NewUserError("source_missing", MsgSelectSource, internal.SourceField)
	}

	to := internal.NewCurrencyCode(in.Target)
	if to.IsZero() {
		return request{}, models.NewUserError("target_missing", MsgSelectTarget, internal.TargetField)
	}

	return request{amountText: in.Amount, amount: amount, from: from, to: to}, nil
}
