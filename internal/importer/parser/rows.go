// Package parser implements the CSV plumbing shared by all general
// ledger export dialects: row tokenizing, amount and date parsing,
// header detection and category type inference.
package parser

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseRows tokenizes raw CSV text into rows of fields.
//
// Quoting follows RFC 4180: quoted fields may contain commas and
// embedded newlines, "" is an escaped quote. A leading byte-order-mark
// is stripped. Rows composed entirely of empty fields are dropped.
// Rows may have differing field counts, GL exports routinely mix
// header, data and summary rows of different widths.
func ParseRows(text string) [][]string {
	text = strings.TrimPrefix(text, "\uFEFF")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed lines are skipped, partial success is the norm
			// for hand-exported files.
			continue
		}

		if emptyRow(record) {
			continue
		}

		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	return rows
}

func emptyRow(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}
