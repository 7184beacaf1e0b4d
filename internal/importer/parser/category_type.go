package parser

import (
	"strings"

	"github.com/openbooks/reconcile/internal/types"
)

// Keyword sets for category type inference. They are compiled-in
// knowledge, matched case-insensitively as substrings.
var (
	incomeKeywords    = []string{"income", "revenue", "sales"}
	assetKeywords     = []string{"asset", "receivable", "bank", "cash", "inventory", "prepaid"}
	liabilityKeywords = []string{"liability", "payable", "loan", "credit card"}
)

// InferCategoryType classifies a category by its name. Precedence is
// income keywords, then asset keywords, then liability keywords;
// everything else is an expense.
func InferCategoryType(name string) types.CategoryType {
	n := strings.ToLower(name)

	for _, keyword := range incomeKeywords {
		if strings.Contains(n, keyword) {
			return types.CategoryTypeIncome
		}
	}

	for _, keyword := range assetKeywords {
		if strings.Contains(n, keyword) {
			return types.CategoryTypeAsset
		}
	}

	for _, keyword := range liabilityKeywords {
		if strings.Contains(n, keyword) {
			return types.CategoryTypeLiability
		}
	}

	return types.CategoryTypeExpense
}
