package parser_test

import (
	"testing"

	"github.com/openbooks/reconcile/internal/importer/parser"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestInferCategoryType(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		categoryType types.CategoryType
	}{
		{"Revenue", "Consulting Revenue", types.CategoryTypeIncome},
		{"Sales", "Sales of Product Income", types.CategoryTypeIncome},
		{"Receivable", "Accounts Receivable", types.CategoryTypeAsset},
		{"Bank", "Business Bank Account", types.CategoryTypeAsset},
		{"Payable", "Accounts Payable", types.CategoryTypeLiability},
		{"Credit card", "Company Credit Card", types.CategoryTypeLiability},
		{"Default is expense", "Office Supplies", types.CategoryTypeExpense},
		{"Case insensitive", "INTEREST INCOME", types.CategoryTypeIncome},
		{"Income wins over liability", "Income Tax Payable", types.CategoryTypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.categoryType, parser.InferCategoryType(tt.category))
		})
	}
}
