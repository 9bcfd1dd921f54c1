package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-supplied decimal amount such as "1200" or "1,200.50".
// Grouping commas are ignored; the result is not range-checked.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return decimal.NewFromString(s)
}

// FormatINR formats an amount with two decimals and Indian digit grouping
// (last three digits, then groups of two): 1234567.5 -> "12,34,567.50".
func FormatINR(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + frac
	}

	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return sign + strings.Join(groups, ",") + "." + frac
}
