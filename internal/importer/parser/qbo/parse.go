// Package qbo parses QuickBooks Online general ledger CSV exports.
package qbo

import (
	"fmt"

	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/importer/helpers"
	"github.com/openbooks/reconcile/internal/importer/parser"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/rs/zerolog/log"
)

// Parse converts a QuickBooks Online GL export into canonical
// resources. The dialect has a single signed amount column, an
// explicit name column for the vendor and MM/DD/YYYY slash dates.
//
// Parsing fails only when the header row or a mandatory column cannot
// be found. Summary and zero-amount rows are skipped silently, partial
// success is the norm for hand-exported files.
func Parse(text string) (importer.ParsedResources, error) {
	rows := parser.ParseRows(text)

	headerIndex, err := parser.FindHeader(rows, []string{"date"}, []string{"amount"})
	if err != nil {
		return importer.ParsedResources{}, fmt.Errorf("quickbooks export: %w", err)
	}

	header := rows[headerIndex]
	dateColumn := parser.Column(header, "date")
	amountColumn := parser.Column(header, "amount")
	nameColumn := parser.Column(header, "name")
	memoColumn := parser.Column(header, "memo", "description")
	categoryColumn := parser.Column(header, "split", "account", "category")

	batch := importer.NewBatch(types.PlatformQBO)

	for _, row := range rows[headerIndex+1:] {
		if parser.IsSummaryRow(row) {
			log.Debug().Str("dialect", "qbo").Msg("skipping summary row")
			continue
		}

		rawAmount := parser.Cell(row, amountColumn)
		amount := parser.ParseAmount(rawAmount)
		if amount.IsZero() {
			log.Debug().Str("dialect", "qbo").Msg("skipping row without an amount")
			continue
		}
		batch.SetCurrency(parser.DetectCurrency(rawAmount))

		vendor := parser.Cell(row, nameColumn)
		description := parser.Cell(row, memoColumn)
		if vendor == "" {
			vendor = description
		}

		category := parser.Cell(row, categoryColumn)
		if category == "" {
			category = "Uncategorized"
		}

		batch.AddTransaction(models.Transaction{
			Date:         parser.ParseDate(parser.Cell(row, dateColumn), types.PlatformQBO),
			Description:  description,
			Amount:       amount,
			CategoryName: category,
			VendorName:   vendor,
			ImportHash:   helpers.RowHash(row),
		})
	}

	return batch.Resources(), nil
}
