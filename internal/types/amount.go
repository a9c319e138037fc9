// Package types implements value types shared by models and controllers.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount with two fractional digits.
//
// Amounts are transmitted as JSON strings, e.g. "250.00", so that no
// precision is lost in clients that parse JSON numbers as floats.
type Amount decimal.Decimal

// MaxIntegerDigits is the number of digits allowed before the decimal point.
// This matches a DECIMAL(10,2) column.
const MaxIntegerDigits = 8

var amountType = reflect.TypeOf(Amount{})

// NewAmount returns the Amount for a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d)
}

// ParseAmount parses a plain decimal string like "1234.50".
//
// Parsing is locale independent: grouping separators and currency
// symbols are rejected.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, err
	}

	return Amount(d), nil
}

// MustParseAmount is like ParseAmount but panics on invalid input.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount as decimal.Decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// String returns the amount with exactly two fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount(a.Decimal().Add(b.Decimal()))
}

// Equal reports whether a and b represent the same value.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal().Equal(b.Decimal())
}

// IsNegative reports if the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.Decimal().IsNegative()
}

// IsPositive reports if the amount is above zero.
func (a Amount) IsPositive() bool {
	return a.Decimal().IsPositive()
}

// HasValidScale reports if the amount fits into two fractional digits
// and MaxIntegerDigits integer digits.
func (a Amount) HasValidScale() bool {
	d := a.Decimal()
	if !d.Equal(d.Round(2)) {
		return false
	}

	return len(d.Abs().Truncate(0).String()) <= MaxIntegerDigits
}

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Only JSON strings are accepted. Numbers are rejected as they might already
// have lost precision on the client side.
func (a *Amount) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "null" {
		return nil
	}

	if !strings.HasPrefix(value, `"`) {
		return &json.UnmarshalTypeError{Value: jsonKind(value), Type: amountType}
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseAmount(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: amountType}
	}

	*a = parsed
	return nil
}

// Scan writes the value from the database.
func (a *Amount) Scan(value interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}

	*a = Amount(d)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Amount) GormDataType() string {
	return "DECIMAL(10,2)"
}

// jsonKind names the kind of a raw JSON value for error messages.
func jsonKind(raw string) string {
	switch {
	case strings.HasPrefix(raw, "{"):
		return "object"
	case strings.HasPrefix(raw, "["):
		return "array"
	case raw == "true" || raw == "false":
		return "bool"
	default:
		return "number"
	}
}
