package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"widget-currency/internal"
	"widget-currency/internal/service/logger"
)

const (
	DefaultBaseURL = "https://v6.exchangerate-api.com/v6"
	source         = "exchangerate"
	maxBodyBytes   = 64 << 10
	redactedKey    = "***"
)

type Client struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.RequestLogger
}

func New(apiKey string, timeout time.Duration, l logger.RequestLogger) *Client {
	if l == nil {
		l = logger.Nop{}
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: l,
	}
}

// LatestRates returns the rates from base to every supported currency.
func (c *Client) LatestRates(ctx context.Context, base internal.CurrencyCode) (*internal.ExchangeRateSnapshot, error) {
	if base.IsZero() {
		return nil, fmt.Errorf("base currency is empty")
	}

	// the key is a path segment: errors carrying the URL go through redact
	endpoint := "/latest/" + url.PathEscape(base.String())
	prefix := strings.TrimRight(c.BaseURL, "/") + "/"
	u := prefix + url.PathEscape(c.apiKey) + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", redact(err, prefix+redactedKey+endpoint))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redact(err, prefix+redactedKey+endpoint)
		c.logger.LogRequest(ctx, source, endpoint, nil, err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := resp.StatusCode
	out, err := decode(resp)
	c.logger.LogRequest(ctx, source, endpoint, &status, err)
	if err != nil {
		return nil, err
	}

	return &internal.ExchangeRateSnapshot{
		Base:      out.BaseCode,
		Rates:     out.ConversionRates,
		UpdatedAt: out.UpdatedAt,
	}, nil
}

// redact replaces the URL of a *url.Error, which would otherwise expose the
// API key.
func redact(err error, safeURL string) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = safeURL
	}
	return err
}

func decode(resp *http.Response) (*internal.LatestRatesResponse, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("exchangerate http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out internal.LatestRatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Result == "error" {
		return nil, fmt.Errorf("exchangerate error: %s", out.ErrorType)
	}
	return &out, nil
}
