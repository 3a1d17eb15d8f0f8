package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type CurrencyCode string

func NewCurrencyCode(s string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
}

func (c CurrencyCode) IsZero() bool { return c == "" }

func (c CurrencyCode) String() string { return string(c) }

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(bytes.TrimSpace(b), &s); err != nil {
		return fmt.Errorf("currency code: %w", err)
	}
	*c = NewCurrencyCode(s)
	return nil
}

// CurrencyOption is one entry of a currency selection list.
type CurrencyOption struct {
	Code  CurrencyCode
	Label string
}

const placeholderLabel = "Select Currency"

// Placeholder is the option every selection list starts with.
func Placeholder() CurrencyOption {
	return CurrencyOption{Code: "", Label: placeholderLabel}
}

func NewCurrencyOption(code CurrencyCode, countryName string) CurrencyOption {
	return CurrencyOption{
		Code:  code,
		Label: fmt.Sprintf("%s - %s", code, countryName),
	}
}
