package catalog

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"widget-currency/internal"
)

type CountriesClient interface {
	AllCountries(ctx context.Context) ([]internal.Country, error)
}

type Service struct {
	client CountriesClient
	locale language.Tag
	log    *slog.Logger
}

func New(client CountriesClient, locale language.Tag, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{client: client, locale: locale, log: log}
}

// LoadCountries fetches the catalog. A failure is logged and reported only
// as the absence of data.
func (s *Service) LoadCountries(ctx context.Context) internal.Result[[]internal.Country] {
	countries, err := s.client.AllCountries(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "load countries", slog.String("error", err.Error()))
		return internal.Failure[[]internal.Country]()
	}
	return internal.Success(countries)
}

// Populate loads the catalog once and fills every list with it. Lists are
// filled concurrently and in no particular order. Without data the lists
// are left untouched.
func (s *Service) Populate(ctx context.Context, lists ...internal.SelectionList) {
	countries, ok := s.LoadCountries(ctx).Get()
	if !ok {
		return
	}

	var g errgroup.Group
	for _, list := range lists {
		list := list
		g.Go(func() error {
			s.PopulateSelection(list, countries)
			return nil
		})
	}
	_ = g.Wait()
}

// PopulateSelection replaces the options of target with the placeholder
// followed by one option per country that has a currency, ordered by country
// name. countries is not modified.
func (s *Service) PopulateSelection(target internal.SelectionList, countries []internal.Country) {
	target.Replace(Options(countries, s.locale))
}

// Options builds the option list for countries, placeholder first.
// Codes are not deduplicated: countries sharing a currency each get an option.
func Options(countries []internal.Country, locale language.Tag) []internal.CurrencyOption {
	sorted := slices.Clone(countries)

	// a Collator is not safe for concurrent use
	coll := collate.New(locale)
	slices.SortStableFunc(sorted, func(a, b internal.Country) int {
		return coll.CompareString(a.Name.Common, b.Name.Common)
	})

	opts := make([]internal.CurrencyOption, 0, len(sorted)+1)
	opts = append(opts, internal.Placeholder())
	for _, c := range sorted {
		code := c.CurrencyCode()
		if code.IsZero() {
			continue
		}
		opts = append(opts, internal.NewCurrencyOption(code, c.Name.Common))
	}
	return opts
}
