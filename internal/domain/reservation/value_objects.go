package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

// ParseAmountInput turns the raw text of the amount field into a value.
// Everything except digits and ',' is dropped (so "R$ 1.250,00" reads as
// 1250.00), the first ',' is the decimal mark and the longest numeric prefix
// is kept. Anything without a digit yields zero.
func ParseAmountInput(raw string) decimal.Decimal {
	var b strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == ',' {
			b.WriteRune(ch)
		}
	}
	s := strings.Replace(b.String(), ",", ".", 1)

	end, digits := 0, 0
	seenDot := false
	for i, ch := range s {
		if ch == '.' {
			if seenDot {
				break
			}
			seenDot = true
			end = i + 1
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		digits++
		end = i + 1
	}
	if digits == 0 {
		return decimal.Zero
	}

	prefix := strings.TrimSuffix(s[:end], ".")
	if strings.HasPrefix(prefix, ".") {
		prefix = "0" + prefix
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatAmountInput renders the amount field value; zero shows the placeholder
func FormatAmountInput(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return FormatBRL(d)
}

// FormatBRL renders "R$ 1.234,50"
func FormatBRL(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(ch)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + grouped.String() + "," + fracPart
}

func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// ValidateDate accepts an empty date (a draft without a day) or an ISO date
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateBR renders an ISO date as dd/mm/yyyy, or returns it unchanged
func FormatDateBR(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
