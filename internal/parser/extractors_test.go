package parser

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExtractorsTestSuite struct {
	suite.Suite
	tables *Tables
}

func TestExtractorsSuite(t *testing.T) {
	suite.Run(t, new(ExtractorsTestSuite))
}

func (s *ExtractorsTestSuite) SetupTest() {
	s.tables = DefaultTables()
}

func (s *ExtractorsTestSuite) TestNormalizeText() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"Rs.10  debited", "Rs.10 debited"},
		{"\tline one\nline two\r\n", "line one line two"},
		{"already clean", "already clean"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, normalizeText(tc.input), "input %q", tc.input)
	}
}

func (s *ExtractorsTestSuite) TestExtractAmount() {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"rs with dot", "Rs.450.00 debited", "450.00"},
		{"rs with space", "Rs 1,250 debited", "1250"},
		{"rupee symbol", "₹99.9 spent", "99.9"},
		{"inr", "INR 12,34,567.50 credited", "1234567.50"},
		{"lower case inr", "inr 75 received", "75"},
		{"rupees suffix", "450 rupees paid", "450"},
		{"rs suffix", "450 Rs paid", "450"},
		{"currency tag preferred over bare number", "Order 9981 of Rs.120 paid", "120"},
		{"first currency amount wins", "Rs.10 debited. Avl bal Rs.5000", "10"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			amount := extractAmount(s.tables.AmountPatterns, tc.text)
			s.Require().NotNil(amount)
			s.True(amount.Equal(decimal.RequireFromString(tc.expected)), "got %s", amount)
		})
	}
}

func (s *ExtractorsTestSuite) TestExtractAmount_NoMatch() {
	for _, text := range []string{"", "no money here", "hours 5 later", "transfer complete"} {
		s.Nil(extractAmount(s.tables.AmountPatterns, text), "text %q", text)
	}
}

func (s *ExtractorsTestSuite) TestExtractAmount_UnparseableCaptureFallsThrough() {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)amt\s*(\S+)`),
		regexp.MustCompile(`(?i)rs\.?\s*(\d+)`),
	}

	amount := extractAmount(patterns, "amt abc rs 42")

	s.Require().NotNil(amount)
	s.True(amount.Equal(decimal.NewFromInt(42)))
}

func (s *ExtractorsTestSuite) TestExtractUPIID() {
	testCases := []struct {
		text     string
		expected string
	}{
		{"UPI ID: john.doe@okicici paid", "john.doe@okicici"},
		{"sent to 9876543210@ybl via UPI", "9876543210@ybl"},
		{"VPA merchant-01@paytm.", "merchant-01@paytm"},
		{"no handle here", ""},
		{"email @ symbol alone", ""},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, extractUPIID(s.tables.UPIPatterns, tc.text), "text %q", tc.text)
	}
}

func (s *ExtractorsTestSuite) TestExtractReferenceNumber() {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"ref no", "UPI Ref No 123456789012.", "123456789012"},
		{"ref colon", "UPI Ref: 123456789. Bal", "123456789"},
		{"utr", "NEFT UTR SBIN0012345678 credited", "SBIN0012345678"},
		{"txn id", "Txn ID ABC12345XYZ done", "ABC12345XYZ"},
		{"reference number", "Reference number: 9988776655", "9988776655"},
		{"bare digits", "IMPS 998877665544 credited", "998877665544"},
		{"short labelled falls through to bare digits", "Ref 1234 for order 556677889900", "556677889900"},
		{"short labelled capture skips later labels", "Ref 12 then Txn 87654321", ""},
		{"short labelled capture falls through to bare UTR", "Rs.500 debited. Ref 1234 txn ABCDEFGH12 UTR 123456789012", "123456789012"},
		{"too short everywhere", "Ref 1234567", ""},
		{"none", "hello world", ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, extractReferenceNumber(s.tables.ReferencePatterns, tc.text))
		})
	}
}

func (s *ExtractorsTestSuite) TestExtractBankAccount() {
	testCases := []struct {
		text     string
		expected string
	}{
		{"debited from account XXXXXX1234", "XXXXXX1234"},
		{"A/c no. xx4321 credited", "XX4321"},
		{"Acct 987654 debited", "987654"},
		{"card **5566 used", "**5566"},
		{"masked XX9988 debited", "XX9988"},
		{"account balance low", ""},
		{"no account info", ""},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, extractBankAccount(s.tables.AccountPatterns, tc.text), "text %q", tc.text)
	}
}

func (s *ExtractorsTestSuite) TestExtractDateTimeOrDefaultToNow() {
	fixed := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	for _, text := range []string{
		"on 26-Sep-25 at 10:15 AM",
		"on 01/10/2025",
		"at 23:59",
		"no date at all",
	} {
		s.Equal(fixed, extractDateTimeOrDefaultToNow(s.tables.DateTimePatterns, text, clock), "text %q", text)
	}
}

func (s *ExtractorsTestSuite) TestDateTimePatternsRecogniseCommonFormats() {
	matches := func(text string) bool {
		for _, re := range s.tables.DateTimePatterns {
			if re.MatchString(text) {
				return true
			}
		}
		return false
	}

	s.True(matches("26-Sep-25 10:15"))
	s.True(matches("01/10/2025"))
	s.True(matches("10:15 pm"))
	s.False(matches("no date"))
}
