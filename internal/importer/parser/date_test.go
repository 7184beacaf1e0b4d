package parser_test

import (
	"testing"

	"github.com/openbooks/reconcile/internal/importer/parser"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		platform types.Platform
		date     string
	}{
		{"ISO passthrough", "2024-03-04", types.PlatformQBO, "2024-03-04"},
		{"Day month year", "04 Mar 2024", types.PlatformXero, "2024-03-04"},
		{"Day month year unpadded", "4 Mar 2024", types.PlatformXero, "2024-03-04"},
		{"Slash date QBO is month first", "03/04/2024", types.PlatformQBO, "2024-03-04"},
		{"Slash date Xero is day first", "03/04/2024", types.PlatformXero, "2024-04-03"},
		{"Slash date unpadded", "3/4/2024", types.PlatformQBO, "2024-03-04"},
		{"Unrecognized passes through", "next tuesday", types.PlatformQBO, "next tuesday"},
		{"Invalid slash date passes through", "31/02/2024", types.PlatformXero, "31/02/2024"},
		{"Empty", "", types.PlatformQBO, ""},
		{"Whitespace trimmed", " 2024-03-04 ", types.PlatformQBO, "2024-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.date, parser.ParseDate(tt.input, tt.platform))
		})
	}
}
