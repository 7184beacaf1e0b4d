package demo

import (
	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/shopspring/decimal"
)

// Resources returns the fixed dataset substituted when an import
// yields no transactions, so that first-time users see a populated
// ledger instead of an empty screen.
func Resources() importer.ParsedResources {
	demo := func(date, description, amount, category, vendor string) models.Transaction {
		return models.Transaction{
			Date:         date,
			Description:  description,
			Amount:       decimal.RequireFromString(amount),
			CategoryName: category,
			VendorName:   vendor,
			Source:       types.PlatformQBO,
		}
	}

	transactions := []models.Transaction{
		demo("2024-01-05", "Office chairs and desks", "-840.00", "Office Supplies", "Staples"),
		demo("2024-01-08", "January retainer", "5000.00", "Consulting Revenue", "Globex Inc"),
		demo("2024-01-12", "Monthly hosting", "-118.40", "Software & Subscriptions", "Amazon Web Services"),
		demo("2024-01-15", "Payroll run", "-6200.00", "Payroll Expenses", "Gusto"),
		demo("2024-01-19", "Team travel, client visit", "-432.18", "Travel", "United Airlines"),
		demo("2024-01-26", "February rent", "-2100.00", "Rent & Lease", "WeWork"),
	}

	batch := importer.NewBatch(types.PlatformQBO)
	for _, t := range transactions {
		batch.AddTransaction(t)
	}
	batch.SetCurrency("USD")

	return batch.Resources()
}
