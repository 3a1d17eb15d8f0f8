package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Country struct {
	Name       CountryName `json:"name"`
	Currencies Currencies  `json:"currencies"`
}

type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

type CurrencyInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// NewCountry builds a country whose currencies keep the given order.
func NewCountry(name string, codes ...CurrencyCode) Country {
	c := Country{Name: CountryName{Common: name}}
	for _, code := range codes {
		c.Currencies.add(code, CurrencyInfo{})
	}
	return c
}

// CurrencyCode returns the first currency the catalog lists for the country,
// or "" when it lists none. The catalog does not document the order of its
// currency keys; the document order is taken as is.
func (c Country) CurrencyCode() CurrencyCode {
	if len(c.Currencies.codes) == 0 {
		return ""
	}
	return c.Currencies.codes[0]
}

// Currencies is a currency mapping that remembers the key order of the JSON
// document it was decoded from.
type Currencies struct {
	codes  []CurrencyCode
	byCode map[CurrencyCode]CurrencyInfo
}

func (c *Currencies) Len() int { return len(c.codes) }

func (c *Currencies) Codes() []CurrencyCode {
	out := make([]CurrencyCode, len(c.codes))
	copy(out, c.codes)
	return out
}

func (c *Currencies) Get(code CurrencyCode) (CurrencyInfo, bool) {
	info, ok := c.byCode[code]
	return info, ok
}

func (c *Currencies) add(code CurrencyCode, info CurrencyInfo) {
	if c.byCode == nil {
		c.byCode = make(map[CurrencyCode]CurrencyInfo)
	}
	if _, ok := c.byCode[code]; !ok {
		c.codes = append(c.codes, code)
	}
	c.byCode[code] = info
}

func (c *Currencies) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = Currencies{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("currencies: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("currencies: expected object, got %v", tok)
	}

	var out Currencies
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("currencies: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("currencies: unexpected key %v", tok)
		}

		var info CurrencyInfo
		if err := dec.Decode(&info); err != nil {
			return fmt.Errorf("currencies[%s]: %w", key, err)
		}
		out.add(CurrencyCode(key), info)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("currencies: %w", err)
	}

	*c = out
	return nil
}
