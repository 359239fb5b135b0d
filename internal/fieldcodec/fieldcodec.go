// Package fieldcodec encodes and decodes the fixed-width field formats
// shared by boleto barcodes and CNAB240 files: DDMMYYYY dates, integer
// cent amounts and legacy ASCII text fields.
package fieldcodec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"cobranca/internal/domain"
)

const dateLayout = "02012006"

var (
	nonAlphanumericRegex = regexp.MustCompile(`[^A-Za-z0-9 ]+`)
	digitsRegex          = regexp.MustCompile(`^\d+$`)
	hundred              = decimal.NewFromInt(100)
)

// EncodeDate renders t as DDMMYYYY.
func EncodeDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DecodeDate parses a DDMMYYYY string. Invalid calendar components
// (month 13, day 32) fail rather than normalizing.
func DecodeDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrDataInvalida, s)
	}
	return t, nil
}

// EncodeCents renders a monetary amount as integer cents, zero-padded
// left to width. Cents are rounded half-up; truncation is never used on
// financial fields.
func EncodeCents(v decimal.Decimal, width int) string {
	cents := v.Mul(hundred).Round(0).IntPart()
	return PadLeft(strconv.FormatInt(cents, 10), width)
}

// DecodeCents parses a zero-padded integer cent field back into a
// decimal amount.
func DecodeCents(s string) (decimal.Decimal, error) {
	if !AllDigits(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrDigitosInvalidos, s)
	}
	cents, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrDigitosInvalidos, s)
	}
	return decimal.NewFromInt(cents).Div(hundred), nil
}

// PadLeft zero-pads s to width; oversized values keep their rightmost
// width characters.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s[len(s)-width:]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// PadRight space-pads s to width; oversized values keep their leftmost
// width characters.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// AllDigits reports whether s is non-empty and entirely ASCII digits.
func AllDigits(s string) bool {
	return digitsRegex.MatchString(s)
}

// NormalizeUpper strips diacritics and anything outside [A-Za-z0-9 ],
// then uppercases. Fixed-width bank fields have no escaping mechanism,
// so any character outside that set would desynchronize columns.
func NormalizeUpper(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	return strings.ToUpper(result)
}
