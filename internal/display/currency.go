package display

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol is the symbol for Indian Rupees.
const CurrencySymbol = "₹"

// Amounts are grouped the Indian way, e.g. 12,34,567.5.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// leadingNumber matches the numeric prefix of a string. Anything after
// it is ignored, so "12abc" reads as 12.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// FormatAmount formats an amount with digit grouping and at most two
// fractional digits.
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsNegative() {
		return "-" + FormatAmount(d.Neg())
	}

	// Only the integer part goes through the printer, it is exact for int64
	whole := d.Truncate(0)
	out := printer.Sprint(number.Decimal(whole.IntPart()))

	fraction := strings.TrimRight(d.Sub(whole).StringFixed(2)[2:], "0")
	if fraction != "" {
		out += "." + fraction
	}

	return out
}

// FormatCurrency formats an amount with the currency symbol.
func FormatCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + CurrencySymbol + FormatAmount(d.Abs())
	}

	return CurrencySymbol + FormatAmount(d)
}

// FormatCurrencyString is FormatCurrency for decimal strings.
// Only the leading number is used. Input without one is formatted as zero.
func FormatCurrencyString(s string) string {
	d, ok := parseLeadingNumber(s)
	if !ok {
		return CurrencySymbol + "0"
	}

	return FormatCurrency(d)
}

var currencyCleaner = strings.NewReplacer(CurrencySymbol, "", ",", "", " ", "", "\u00a0", "", "\t", "", "\n", "")

// ParseCurrency is the inverse of FormatCurrency. It strips the symbol and
// grouping, reads the leading number and returns zero if there is none.
func ParseCurrency(s string) decimal.Decimal {
	d, _ := parseLeadingNumber(currencyCleaner.Replace(s))
	return d
}

func parseLeadingNumber(s string) (decimal.Decimal, bool) {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}
