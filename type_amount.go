package expense

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Amount is the exact value of an expense, in major units.
//
// Amounts carry no currency: the currency is only a display concern.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a number.
func A[T float64 | int | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// ParseAmount parses a decimal number like "12", "3.50" or "-1".
func ParseAmount(s string) (Amount, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: v}, nil
}

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) String() string      { return a.value.String() }

// Format returns the amount formatted for display in the given ISO 4217 currency,
// e.g. "$1,234.50" for USD. An empty currency formats the bare number.
//
// The amount is never rounded: it has at least the currency's fraction digits,
// and as many more as its exact value needs ("$0.008").
func (a Amount) Format(currency string) string {
	if currency == "" {
		return a.fixed(2)
	}
	cur := money.GetCurrency(currency)
	if cur == nil {
		return a.fixed(2) + " " + currency
	}

	number := Amount{value: a.value.Abs()}.fixed(cur.Fraction)
	digits, fraction, _ := strings.Cut(number, ".")
	number = group(digits, cur.Thousand)
	if fraction != "" {
		number += cur.Decimal + fraction
	}
	// same template convention as the go-money formatter: "1" is the number, "$" the symbol.
	s := strings.Replace(cur.Template, "1", number, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if a.value.IsNegative() {
		s = "-" + s
	}
	return s
}

// fixed formats the amount with at least places decimals, more if the exact value needs them.
func (a Amount) fixed(places int) string {
	s := a.value.String()
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > places {
		places = len(s) - i - 1
	}
	return a.value.StringFixed(int32(places))
}

// group inserts sep between each group of three digits, from the right.
func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ValidCurrency reports whether code is a currency known for display.
func ValidCurrency(code string) bool {
	return code == "" || money.GetCurrency(code) != nil
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON reads the amount from a JSON number or a quoted number.
func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.value.UnmarshalJSON(b)
}
