package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the document model for an expense export. Rows are sorted oldest first.
type Report struct {
	Title       string
	Description string
	Rows        []Expense
	Total       decimal.Decimal
	GeneratedAt time.Time
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the download name from the title:
// "Monthly Expense Report" -> "monthly_expense_report_report.pdf".
func (r *Report) Filename() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(r.Title), "_") + "_report.pdf"
}
