package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	ErrEmptyPatternList = errors.New("pattern list cannot be empty")
	ErrNoCaptureGroup   = errors.New("pattern must contain a capture group")
	ErrInvalidTypeName  = errors.New("invalid transaction type")
)

// TypeKeywords lists the lower-case keywords that identify one transaction type.
type TypeKeywords struct {
	Type     TransactionType
	Keywords []string
}

// CategoryKeywords lists the lower-case merchant/domain keywords of one category.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// Tables holds every pattern list and keyword dictionary the parser consults.
// Order is significant in every list. Tables must not be modified once handed to New.
type Tables struct {
	AmountPatterns    []*regexp.Regexp
	UPIPatterns       []*regexp.Regexp
	ReferencePatterns []*regexp.Regexp
	AccountPatterns   []*regexp.Regexp
	DateTimePatterns  []*regexp.Regexp

	TypeKeywords        []TypeKeywords
	CategoryKeywords    []CategoryKeywords
	TransactionKeywords []string
	MerchantStopWords   []string
}

const monthAlternation = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

var defaultTables = &Tables{
	AmountPatterns: []*regexp.Regexp{
		// Rs.450.00, Rs 1,250, ₹100.50, INR 99
		regexp.MustCompile(`(?i)(?:\brs\.?|₹|\binr)\s*(\d[\d,]*(?:\.\d{1,2})?)`),
		// 100.50 rupees, 250 rs
		regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d{1,2})?)\s*(?:rupees|rs\b)`),
	},
	UPIPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)upi\s*id\s*[:\-]?\s*([a-z0-9][a-z0-9._\-]*@[a-z][a-z0-9]*(?:\.[a-z0-9]+)*)`),
		regexp.MustCompile(`(?i)\b([a-z0-9][a-z0-9._\-]*@[a-z][a-z0-9]*(?:\.[a-z0-9]+)*)`),
	},
	ReferencePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:reference|ref|txn|utr)\.?\s*(?:number|num|no\.?|id|#)?\s*[:\-]?\s*([a-z0-9]+)`),
		regexp.MustCompile(`\b(\d{12,16})\b`),
	},
	AccountPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:a/c|account|acct|acc)\.?\s*(?:number|no\.?)?\s*[:\-]?\s*((?:[x*]+)?\d{3,})`),
		regexp.MustCompile(`(?i)(?:^|[^a-z0-9*])([x*]+\d{4,})`),
	},
	DateTimePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{1,2}[-/ ](?:\d{1,2}|` + monthAlternation + `)[a-z]*[-/ ]\d{2,4},?\s+(?:at\s+)?\d{1,2}:\d{2}(?::\d{2})?(?:\s*[ap]m)?)`),
		regexp.MustCompile(`(?i)\b(\d{1,2}[-/](?:\d{1,2}|` + monthAlternation + `)[a-z]*[-/]\d{2,4})\b`),
		regexp.MustCompile(`(?i)\b(\d{1,2}:\d{2}(?::\d{2})?(?:\s*[ap]m)?)\b`),
	},
	TypeKeywords: []TypeKeywords{
		{Type: TypeIncome, Keywords: []string{"credited", "received", "deposited", "refund", "cashback", "salary"}},
		{Type: TypeExpense, Keywords: []string{"debited", "paid", "spent", "purchase", "withdrawn", "withdrawal", "payment"}},
		{Type: TypeTransfer, Keywords: []string{"transferred", "transfer", "sent", "neft", "imps", "rtgs"}},
	},
	CategoryKeywords: []CategoryKeywords{
		{Category: "Food", Keywords: []string{
			"zomato", "swiggy", "starbucks", "dominos", "mcdonald", "kfc", "pizza", "burger",
			"restaurant", "cafe", "coffee", "bakery", "food",
		}},
		{Category: "Transport", Keywords: []string{
			"uber", "rapido", "ola", "irctc", "metro", "petrol", "fuel", "parking", "fastag",
			"toll", "railway", "taxi", "cab",
		}},
		{Category: "Shopping", Keywords: []string{
			"amazon", "flipkart", "myntra", "ajio", "meesho", "nykaa", "bigbasket", "blinkit",
			"dmart", "mall", "store", "shopping",
		}},
		{Category: "Entertainment", Keywords: []string{
			"netflix", "spotify", "hotstar", "bookmyshow", "pvr", "inox", "cinema", "movie", "gaming",
		}},
		{Category: "Bills", Keywords: []string{
			"electricity", "broadband", "recharge", "airtel", "jio", "bsnl", "vodafone", "postpaid",
			"dth", "bill payment", "water bill", "gas bill",
		}},
		{Category: "Healthcare", Keywords: []string{
			"pharmacy", "apollo", "pharmeasy", "netmeds", "1mg", "hospital", "clinic", "medical", "diagnostic",
		}},
		{Category: "Investment", Keywords: []string{
			"zerodha", "groww", "upstox", "kuvera", "mutual fund", "ppf", "nps",
		}},
		{Category: "Income", Keywords: []string{
			"salary", "payroll", "dividend", "interest", "cashback",
		}},
	},
	TransactionKeywords: []string{
		"rs.", "₹", "inr", "debited", "credited", "paid", "received",
		"upi", "transfer", "transaction", "bank", "account",
	},
	MerchantStopWords: []string{
		"paid", "from", "debited", "credited", "received", "sent", "with", "your", "account",
		"available", "balance", "using", "towards", "through", "transaction", "transfer",
		"transferred", "payment", "info", "dear", "customer", "bank", "amount", "been", "have",
		"this", "that", "done", "made", "spent", "purchase", "refund", "avl", "debit", "credit",
	},
}

// DefaultTables returns the built-in tables. The returned value is shared; treat it as read-only.
func DefaultTables() *Tables {
	return defaultTables
}

// tableFile is the on-disk representation of a pattern table override.
// Any list left empty keeps the built-in default.
type tableFile struct {
	AmountPatterns      []string               `json:"amount_patterns"`
	UPIPatterns         []string               `json:"upi_patterns"`
	ReferencePatterns   []string               `json:"reference_patterns"`
	AccountPatterns     []string               `json:"account_patterns"`
	DateTimePatterns    []string               `json:"date_time_patterns"`
	TypeKeywords        []typeKeywordsFile     `json:"type_keywords"`
	CategoryKeywords    []categoryKeywordsFile `json:"category_keywords"`
	TransactionKeywords []string               `json:"transaction_keywords"`
	MerchantStopWords   []string               `json:"merchant_stop_words"`
}

type typeKeywordsFile struct {
	Type     string   `json:"type"`
	Keywords []string `json:"keywords"`
}

type categoryKeywordsFile struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// LoadTables reads a JSON table override from path and merges it over the defaults.
// Every pattern is compiled case-insensitively; a malformed table is reported here,
// never during parsing.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern tables: %w", err)
	}
	return ParseTables(raw)
}

// ParseTables decodes a JSON table override and merges it over the defaults.
func ParseTables(raw []byte) (*Tables, error) {
	var file tableFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode pattern tables: %w", err)
	}

	tables := *defaultTables

	lists := []struct {
		name   string
		source []string
		target *[]*regexp.Regexp
	}{
		{"amount_patterns", file.AmountPatterns, &tables.AmountPatterns},
		{"upi_patterns", file.UPIPatterns, &tables.UPIPatterns},
		{"reference_patterns", file.ReferencePatterns, &tables.ReferencePatterns},
		{"account_patterns", file.AccountPatterns, &tables.AccountPatterns},
		{"date_time_patterns", file.DateTimePatterns, &tables.DateTimePatterns},
	}
	for _, list := range lists {
		if len(list.source) == 0 {
			continue
		}
		compiled, err := compilePatterns(list.source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", list.name, err)
		}
		*list.target = compiled
	}

	if len(file.TypeKeywords) > 0 {
		tables.TypeKeywords = make([]TypeKeywords, 0, len(file.TypeKeywords))
		for _, tk := range file.TypeKeywords {
			if !IsValidTransactionType(tk.Type) {
				return nil, fmt.Errorf("type_keywords: %w: %q", ErrInvalidTypeName, tk.Type)
			}
			tables.TypeKeywords = append(tables.TypeKeywords, TypeKeywords{
				Type:     TransactionType(tk.Type),
				Keywords: lowerAll(tk.Keywords),
			})
		}
	}

	if len(file.CategoryKeywords) > 0 {
		tables.CategoryKeywords = make([]CategoryKeywords, 0, len(file.CategoryKeywords))
		for _, ck := range file.CategoryKeywords {
			if strings.TrimSpace(ck.Category) == "" {
				return nil, errors.New("category_keywords: category name is required")
			}
			tables.CategoryKeywords = append(tables.CategoryKeywords, CategoryKeywords{
				Category: ck.Category,
				Keywords: lowerAll(ck.Keywords),
			})
		}
	}

	if len(file.TransactionKeywords) > 0 {
		tables.TransactionKeywords = lowerAll(file.TransactionKeywords)
	}
	if len(file.MerchantStopWords) > 0 {
		tables.MerchantStopWords = lowerAll(file.MerchantStopWords)
	}

	return &tables, nil
}

func compilePatterns(sources []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		if !strings.HasPrefix(src, "(?i)") {
			src = "(?i)" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", src, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("%w: %q", ErrNoCaptureGroup, src)
		}
		compiled = append(compiled, re)
	}
	if len(compiled) == 0 {
		return nil, ErrEmptyPatternList
	}
	return compiled, nil
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
