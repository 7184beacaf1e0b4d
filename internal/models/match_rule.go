package models

// MatchRule is a user-defined categorization rule. Rules are evaluated
// in ascending priority order; the first rule whose glob pattern
// matches the vendor name assigns its category.
type MatchRule struct {
	Priority     uint   `json:"priority"`
	Match        string `json:"match" example:"Amazon*"`
	CategoryName string `json:"categoryName"`
}
