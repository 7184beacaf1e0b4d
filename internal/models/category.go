package models

import (
	"github.com/openbooks/reconcile/internal/types"
)

// Category groups transactions by accounting purpose.
// The name is unique within an import batch.
type Category struct {
	Name string             `json:"name"`
	Type types.CategoryType `json:"type"`
}
