package parser

import (
	"errors"
	"regexp"
	"strings"
)

// ErrHeaderNotFound is returned when no row in the file contains all
// mandatory columns. This is the only unrecoverable parse failure;
// callers fall back to demo data rather than failing the import flow.
var ErrHeaderNotFound = errors.New("could not locate the header row")

var nonAlphanumeric = regexp.MustCompile("[^a-z0-9]")

var summaryPrefix = regexp.MustCompile(`(?i)^(net |beginning |ending )`)

// NormalizeHeaderCell reduces a header cell to lowercase alphanumeric
// text so that fuzzy column matching tolerates formatting differences
// like "Credit (GBP)" vs "credit".
func NormalizeHeaderCell(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

// Column returns the index of the first cell whose normalized text
// contains any of the candidate names, or -1 when none matches.
func Column(row []string, names ...string) int {
	for i, cell := range row {
		normalized := NormalizeHeaderCell(cell)
		if normalized == "" {
			continue
		}

		for _, name := range names {
			if strings.Contains(normalized, NormalizeHeaderCell(name)) {
				return i
			}
		}
	}

	return -1
}

// FindHeader locates the header row by fuzzy column name matching.
// Each group lists alternative names for one mandatory column; the
// first row satisfying every group is the header. When no row does,
// ErrHeaderNotFound is returned.
func FindHeader(rows [][]string, groups ...[]string) (int, error) {
	for i, row := range rows {
		found := true
		for _, group := range groups {
			if Column(row, group...) < 0 {
				found = false
				break
			}
		}

		if found {
			return i, nil
		}
	}

	return 0, ErrHeaderNotFound
}

// IsSummaryRow reports whether a data row is a summary or total row
// rather than a transaction. The heuristics match what the supported
// platforms put into their exports: an empty first cell, a first cell
// starting with "Total", or a row starting with "Net ", "Beginning "
// or "Ending ".
func IsSummaryRow(row []string) bool {
	if len(row) == 0 {
		return true
	}

	first := strings.TrimSpace(row[0])
	if first == "" {
		return true
	}

	if strings.HasPrefix(strings.ToLower(first), "total") {
		return true
	}

	return summaryPrefix.MatchString(strings.TrimSpace(strings.Join(row, " ")))
}

// Cell returns the trimmed value of a row's column, tolerating rows
// that are shorter than the header.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[col])
}
