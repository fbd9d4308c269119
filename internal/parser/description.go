package parser

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxFallbackDescription = 50
	truncatedDescription   = 47
	failedPrefixLength     = 50
)

// synthesizeDescription prefers a merchant sentence, then a category label,
// then the message itself. normalized is never empty here.
func synthesizeDescription(normalized string, merchant MerchantInfo, txType TransactionType) string {
	if merchant.Name != "" {
		switch txType {
		case TypeIncome:
			return "Money received from " + merchant.Name
		case TypeExpense:
			return "Payment to " + merchant.Name
		case TypeTransfer:
			return "Transfer to " + merchant.Name
		default:
			return "Transaction with " + merchant.Name
		}
	}

	if merchant.Category != "" && merchant.Category != CategoryOther {
		label := cases.Title(language.English).String(merchant.Category)
		switch txType {
		case TypeIncome, TypeExpense, TypeTransfer:
			return label + " " + string(txType)
		default:
			return label + " transaction"
		}
	}

	return truncate(normalized, maxFallbackDescription, truncatedDescription)
}

// truncate cuts s to keep runes followed by "..." when it is longer than limit runes.
func truncate(s string, limit, keep int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:keep]) + "..."
}

func failedDescription(raw string) string {
	prefix := raw
	if utf8.RuneCountInString(prefix) > failedPrefixLength {
		prefix = string([]rune(prefix)[:failedPrefixLength])
	}
	return "Failed to parse: " + prefix + "..."
}
