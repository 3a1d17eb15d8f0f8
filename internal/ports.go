package internal

// Field identifies a focusable input of the widget.
type Field int

const (
	AmountField Field = iota
	SourceField
	TargetField
)

func (f Field) String() string {
	switch f {
	case AmountField:
		return "amount"
	case SourceField:
		return "source"
	case TargetField:
		return "target"
	default:
		return "unknown"
	}
}

// SelectionList is a currency dropdown. Replace drops every option it holds
// and shows opts in the given order.
type SelectionList interface {
	Replace(opts []CurrencyOption)
}

type Form interface {
	Focus(field Field)
}

type Display interface {
	ShowConversion(result ConversionResult)
}

type ErrorRegion interface {
	Show(message string)
	Hide()
}
