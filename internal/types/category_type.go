package types

// CategoryType is the accounting nature of a category.
type CategoryType string

const (
	CategoryTypeExpense   CategoryType = "expense"
	CategoryTypeIncome    CategoryType = "income"
	CategoryTypeAsset     CategoryType = "asset"
	CategoryTypeLiability CategoryType = "liability"
)
