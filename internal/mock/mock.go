package mock

import (
	"context"

	testifymock "github.com/stretchr/testify/mock"

	"widget-currency/internal"
)

type testingT interface {
	testifymock.TestingT
	Cleanup(func())
}

type MockCountriesClient struct {
	testifymock.Mock
}

func NewMockCountriesClient(t testingT) *MockCountriesClient {
	m := &MockCountriesClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCountriesClient) AllCountries(ctx context.Context) ([]internal.Country, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]internal.Country)
	return countries, args.Error(1)
}

type MockRatesClient struct {
	testifymock.Mock
}

func NewMockRatesClient(t testingT) *MockRatesClient {
	m := &MockRatesClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRatesClient) LatestRates(ctx context.Context, base internal.CurrencyCode) (*internal.ExchangeRateSnapshot, error) {
	args := m.Called(ctx, base)
	snap, _ := args.Get(0).(*internal.ExchangeRateSnapshot)
	return snap, args.Error(1)
}

type MockRatesFetcher struct {
	testifymock.Mock
}

func NewMockRatesFetcher(t testingT) *MockRatesFetcher {
	m := &MockRatesFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRatesFetcher) FetchRates(ctx context.Context, base internal.CurrencyCode) internal.Result[internal.ExchangeRateSnapshot] {
	args := m.Called(ctx, base)
	return args.Get(0).(internal.Result[internal.ExchangeRateSnapshot])
}
