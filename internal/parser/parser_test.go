package parser

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ParserTestSuite struct {
	suite.Suite
	parser *Parser
	now    time.Time
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) SetupTest() {
	s.now = time.Date(2025, 9, 26, 10, 30, 0, 0, time.UTC)
	s.parser = New(
		WithRandomSource(NoPerturbation),
		WithClock(func() time.Time { return s.now }),
	)
}

// Scenario Tests

func (s *ParserTestSuite) TestParse_ZomatoDebit() {
	msg := "Rs.450.00 debited from account XXXXXX1234 on 26-Sep-25 at ZOMATO BANGALORE using UPI Ref No 123456789012. Available bal: Rs.2550.00"

	result := s.parser.Parse(msg)

	s.Require().NotNil(result.Amount)
	s.True(result.Amount.Equal(decimal.RequireFromString("450.00")))
	s.Equal(TypeExpense, result.Type)
	s.Equal("Food", result.Metadata.Category)
	s.Equal("123456789012", result.ReferenceNumber)
	s.Equal("XXXXXX1234", result.BankAccount)
	s.Equal("ZOMATO", result.MerchantName)
	s.Equal("Payment to ZOMATO", result.Description)
	s.Greater(result.Confidence, 0.5)
	s.InDelta(0.75, result.Confidence, 1e-9)
	s.Equal(msg, result.Metadata.OriginalMessage)
	s.Empty(result.Metadata.Error)
}

func (s *ParserTestSuite) TestParse_SalaryCredit() {
	msg := "Rs.2500.00 credited to your account XXXXXX1234 from COMPANY SALARY on 01-Oct-25. Available balance: Rs.15000.00"

	result := s.parser.Parse(msg)

	s.Require().NotNil(result.Amount)
	s.True(result.Amount.Equal(decimal.RequireFromString("2500.00")))
	s.Equal(TypeIncome, result.Type)
	s.Equal("Income", result.Metadata.Category)
	s.Equal("COMPANY", result.MerchantName)
	s.Equal("Money received from COMPANY", result.Description)
	s.Greater(result.Confidence, 0.5)
}

func (s *ParserTestSuite) TestParse_NotATransaction() {
	result := s.parser.Parse("This is not a transaction SMS message")

	s.Nil(result.Amount)
	s.Less(result.Confidence, 0.5)
	s.Equal(CategoryOther, result.Metadata.Category)
	s.Empty(result.MerchantName)
	s.Equal("This is not a transaction SMS message", result.Description)
}

func (s *ParserTestSuite) TestParse_StarbucksUPIPayment() {
	msg := "Paid Rs.150.00 to STARBUCKS COFFEE via UPI on 26-Sep-25. UPI Ref: 123456789. Balance: Rs.5000.00"

	result := s.parser.Parse(msg)

	s.Require().NotNil(result.Amount)
	s.True(result.Amount.Equal(decimal.RequireFromString("150.00")))
	s.Contains(result.MerchantName, "STARBUCKS")
	s.Equal("Food", result.Metadata.Category)
	s.Equal(TypeExpense, result.Type)
	s.Equal("123456789", result.ReferenceNumber)
}

func (s *ParserTestSuite) TestParse_CurrencyFormats() {
	testCases := []struct {
		name string
		msg  string
	}{
		{"rs prefix", "Rs.100.50 debited from account XXXX5678"},
		{"rupee symbol", "₹100.50 debited from account XXXX5678"},
		{"inr prefix", "INR 100.50 debited from account XXXX5678"},
		{"rupees suffix", "100.50 rupees debited from account XXXX5678"},
	}

	expected := decimal.RequireFromString("100.50")
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.parser.Parse(tc.msg)
			s.Require().NotNil(result.Amount)
			s.True(result.Amount.Equal(expected), "got %s", result.Amount)
		})
	}
}

func (s *ParserTestSuite) TestParse_EmptyInput() {
	for _, input := range []string{"", "   ", "\n\t "} {
		result := s.parser.Parse(input)

		s.InDelta(fallbackConfidence, result.Confidence, 1e-9)
		s.NotEmpty(result.Description)
		s.True(strings.HasPrefix(result.Description, "Failed to parse: "))
		s.Equal(ErrEmptyMessage.Error(), result.Metadata.Error)
		s.True(result.Failed())
		s.Nil(result.Amount)
		s.Nil(result.DateTime)
		s.Empty(result.Type)
	}
}

func (s *ParserTestSuite) TestIsTransactionMessage() {
	s.False(s.parser.IsTransactionMessage("Happy birthday to you!"))
	s.True(s.parser.IsTransactionMessage("Rs.100 debited from account"))
	s.False(s.parser.IsTransactionMessage("Your bank is closed today"))
	s.True(s.parser.IsTransactionMessage("UPI TRANSFER of ₹20"))
}

// Fallback Path Tests

func (s *ParserTestSuite) TestParse_PanicInStageReturnsFallback() {
	broken := *DefaultTables()
	// A pattern without a capture group makes the amount stage index past the match.
	broken.AmountPatterns = []*regexp.Regexp{regexp.MustCompile(`(?i)rs\.?\s*\d+`)}
	p := New(WithTables(&broken), WithRandomSource(NoPerturbation))

	msg := "Rs.450.00 debited from account XXXXXX1234 at a shop whose name is much longer than fifty characters"
	result := p.Parse(msg)

	s.InDelta(0.1, result.Confidence, 1e-9)
	s.Equal("Failed to parse: "+string([]rune(msg)[:50])+"...", result.Description)
	s.NotEmpty(result.Metadata.Error)
	s.Nil(result.Amount)
	s.Empty(result.MerchantName)
	s.Empty(result.ReferenceNumber)
	s.Empty(result.Metadata.Category)
	s.Equal(msg, result.Metadata.OriginalMessage)
}

// Metadata Tests

func (s *ParserTestSuite) TestParse_ExtractedKeywordsCapped() {
	msg := "Rs.500 debited from bank account via UPI transaction, transfer paid and received at ZOMATO"

	result := s.parser.Parse(msg)

	s.LessOrEqual(len(result.Metadata.ExtractedKeywords), 5)
	s.Equal([]string{"rs.", "debited", "paid", "received", "upi"}, result.Metadata.ExtractedKeywords)
}

func (s *ParserTestSuite) TestParse_ExtractedKeywordsIncludeClassifiers() {
	result := s.parser.Parse("Spent 300 rs at DOMINOS")

	s.Equal([]string{"spent", "dominos"}, result.Metadata.ExtractedKeywords)
}

func (s *ParserTestSuite) TestParse_DateTimeUsesClock() {
	result := s.parser.Parse("Rs.10 debited on 26-Sep-25 10:15")

	s.Require().NotNil(result.DateTime)
	s.Equal(s.now, *result.DateTime)
}

func (s *ParserTestSuite) TestParse_DoesNotMutateInput() {
	msg := "  Rs.10   debited\nfrom A/c XX1234  "
	copyOfMsg := strings.Clone(msg)

	result := s.parser.Parse(msg)

	s.Equal(copyOfMsg, msg)
	s.Equal(msg, result.Metadata.OriginalMessage)
	s.Equal("XX1234", result.BankAccount)
}

func (s *ParserTestSuite) TestParse_UPIEvidence() {
	msg := "Rs.250.00 sent to rahul.k@okaxis via UPI. UPI Ref 412345678901"

	result := s.parser.Parse(msg)

	s.Equal("rahul.k@okaxis", result.UPIID)
	s.Equal(TypeTransfer, result.Type)
	s.Equal("412345678901", result.ReferenceNumber)
	// amount + upi + reference + type
	s.InDelta(0.90, result.Confidence, 1e-9)
	s.Equal(ConfidenceHigh, ConfidenceLevel(result.Confidence))
}

func (s *ParserTestSuite) TestPackageLevelHelpers() {
	result := Parse("Rs.99 paid at SWIGGY")

	s.Require().NotNil(result.Amount)
	s.Equal("SWIGGY", result.MerchantName)
	s.GreaterOrEqual(result.Confidence, 0.0)
	s.LessOrEqual(result.Confidence, 1.0)
	s.True(IsTransactionMessage("rs.99 paid"))
}

func (s *ParserTestSuite) TestConfidenceLevel() {
	testCases := []struct {
		confidence float64
		expected   string
	}{
		{0.0, ConfidenceLow},
		{0.49, ConfidenceLow},
		{0.5, ConfidenceMedium},
		{0.79, ConfidenceMedium},
		{0.8, ConfidenceHigh},
		{1.0, ConfidenceHigh},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, ConfidenceLevel(tc.confidence), "confidence %v", tc.confidence)
	}
}
