// Package xero parses Xero general ledger CSV exports.
package xero

import (
	"fmt"
	"strings"

	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/importer/helpers"
	"github.com/openbooks/reconcile/internal/importer/parser"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Parse converts a Xero GL export into canonical resources.
//
// Xero exports carry separate debit and credit columns; the canonical
// amount is credit minus debit. Older exports have a single signed
// gross column instead. There is no payee column, the vendor is the
// description text before the first " - " delimiter. Slash dates are
// DD/MM/YYYY.
func Parse(text string) (importer.ParsedResources, error) {
	rows := parser.ParseRows(text)

	headerIndex, err := parser.FindHeader(rows, []string{"date"}, []string{"debit", "credit", "gross", "amount"})
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("xero export: %w", err)
	}

	header := rows[headerIndex]
	dateColumn := parser.Column(header, "date")
	debitColumn := parser.Column(header, "debit")
	creditColumn := parser.Column(header, "credit")
	grossColumn := parser.Column(header, "gross", "amount")
	descriptionColumn := parser.Column(header, "description", "reference", "details")
	accountColumn := parser.Column(header, "account", "category")

	batch := importer.NewBatch(types.PlatformXero)

	for _, row := range rows[headerIndex+1:] {
		if parser.IsSummaryRow(row) {
			log.Debug().Str("dialect", "xero").Msg("skipping summary row")
			continue
		}

		amount, raw := rowAmount(row, debitColumn, creditColumn, grossColumn)
		if amount.IsZero() {
			log.Debug().Str("dialect", "xero").Msg("skipping row without an amount")
			continue
		}
		batch.SetCurrency(parser.DetectCurrency(raw))

		description := parser.Cell(row, descriptionColumn)

		category := parser.Cell(row, accountColumn)
		if category == "" {
			category = "Uncategorized"
		}

		batch.AddTransaction(models.Transaction{
			Date:         parser.ParseDate(parser.Cell(row, dateColumn), types.PlatformXero),
			Description:  description,
			Amount:       amount,
			CategoryName: category,
			VendorName:   vendorFromDescription(description),
			ImportHash:   helpers.RowHash(row),
		})
	}

	return batch.Resources(), nil
}

// rowAmount computes the canonical amount for a data row. When both
// debit and credit columns exist the amount is credit minus debit;
// otherwise the single gross column is read directly. The raw field
// the amount came from is returned for currency detection.
func rowAmount(row []string, debitColumn, creditColumn, grossColumn int) (decimal.Decimal, string) {
	if debitColumn >= 0 && creditColumn >= 0 {
		rawDebit := parser.Cell(row, debitColumn)
		rawCredit := parser.Cell(row, creditColumn)

		raw := rawCredit
		if raw == "" {
			raw = rawDebit
		}

		return parser.ParseAmount(rawCredit).Sub(parser.ParseAmount(rawDebit)), raw
	}

	raw := parser.Cell(row, grossColumn)
	return parser.ParseAmount(raw), raw
}

// vendorFromDescription extracts the vendor name from a Xero
// description, which has the form "Vendor - details". Descriptions
// without the delimiter are used as-is.
func vendorFromDescription(description string) string {
	vendor, _, found := strings.Cut(description, " - ")
	if !found {
		return description
	}

	return strings.TrimSpace(vendor)
}
