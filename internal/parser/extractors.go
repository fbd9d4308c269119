package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const minReferenceLength = 8

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeText collapses whitespace runs to a single space and trims the ends.
func normalizeText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// firstCapture returns the first capture group of the first pattern that matches.
func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// extractAmount returns nil when no pattern matches or the capture is not a
// non-negative decimal. A capture that fails to parse lets the next pattern try.
func extractAmount(patterns []*regexp.Regexp, text string) *decimal.Decimal {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			continue
		}
		return &amount
	}
	return nil
}

func extractUPIID(patterns []*regexp.Regexp, text string) string {
	id := firstCapture(patterns, text)
	if !strings.Contains(id, "@") {
		return ""
	}
	return id
}

// extractReferenceNumber takes the first capture of each pattern in order.
// A capture shorter than minReferenceLength hands over to the next pattern.
func extractReferenceNumber(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m != nil && len(m[1]) >= minReferenceLength {
			return m[1]
		}
	}
	return ""
}

func extractBankAccount(patterns []*regexp.Regexp, text string) string {
	return strings.ToUpper(firstCapture(patterns, text))
}

// extractDateTimeOrDefaultToNow always reports now, matched or not.
// TODO: convert the first DateTimePatterns match into a timestamp (dd-Mon-yy
// and dd/mm/yyyy need a year pivot) and fall back to now only when nothing matches.
func extractDateTimeOrDefaultToNow(patterns []*regexp.Regexp, text string, now func() time.Time) time.Time {
	return now()
}
