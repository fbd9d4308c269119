package parser

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const merchantWindow = 20

// MerchantInfo is the outcome of merchant/category inference.
type MerchantInfo struct {
	Name     string
	Category string
	Keyword  string
}

// classifyType returns the type of the first category, in declared order, with a
// keyword contained in lower. Messages without any keyword are expenses.
func classifyType(keywords []TypeKeywords, lower string) (TransactionType, string) {
	for _, tk := range keywords {
		for _, kw := range tk.Keywords {
			if strings.Contains(lower, kw) {
				return tk.Type, kw
			}
		}
	}
	return TypeExpense, ""
}

// inferMerchant scans categories in declared order and names the merchant from
// the text surrounding the first keyword hit.
func inferMerchant(categories []CategoryKeywords, stopWords []string, lower string) MerchantInfo {
	for _, ck := range categories {
		for _, kw := range ck.Keywords {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			name := merchantFromContext(lower, idx, kw, stopWords)
			if name == "" {
				name = strings.ToUpper(kw)
			}
			return MerchantInfo{Name: name, Category: ck.Category, Keyword: kw}
		}
	}
	return MerchantInfo{Category: CategoryOther}
}

// merchantFromContext returns the first alphabetic token longer than three
// letters within merchantWindow runes either side of the keyword at byteIdx.
func merchantFromContext(lower string, byteIdx int, kw string, stopWords []string) string {
	runes := []rune(lower)
	start := utf8.RuneCountInString(lower[:byteIdx])
	end := start + utf8.RuneCountInString(kw)

	from := max(0, start-merchantWindow)
	to := min(len(runes), end+merchantWindow)

	tokens := strings.FieldsFunc(string(runes[from:to]), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 3 || !isAlphabetic(tok) || slices.Contains(stopWords, tok) {
			continue
		}
		return strings.ToUpper(tok)
	}
	return ""
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
