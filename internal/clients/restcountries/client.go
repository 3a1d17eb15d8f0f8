package restcountries

import (
	"context"
	"encoding/json"
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
	DefaultBaseURL = "https://restcountries.com/v3.1"
	source         = "restcountries"
	maxBodyBytes   = 4 << 20
)

// Only these fields are requested; the full records are several megabytes.
var catalogFields = []string{"name", "currencies"}

type Client struct {
	BaseURL    string
	httpClient *http.Client
	logger     logger.RequestLogger
}

func New(timeout time.Duration, l logger.RequestLogger) *Client {
	if l == nil {
		l = logger.Nop{}
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: l,
	}
}

// AllCountries fetches every country with its currencies.
func (c *Client) AllCountries(ctx context.Context) ([]internal.Country, error) {
	const endpoint = "/all"

	u, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := url.Values{}
	q.Set("fields", strings.Join(catalogFields, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.LogRequest(ctx, source, endpoint, nil, err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	status := resp.StatusCode
	countries, err := decode(resp)
	c.logger.LogRequest(ctx, source, endpoint, &status, err)
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func decode(resp *http.Response) ([]internal.Country, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("restcountries http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out []internal.Country
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}
