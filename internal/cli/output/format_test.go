package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "table", input: "table", want: FormatTable},
		{name: "empty defaults to table", input: "", want: FormatTable},
		{name: "json", input: "json", want: FormatJSON},
		{name: "JSON uppercase", input: "JSON", want: FormatJSON},
		{name: "yaml", input: "yaml", want: FormatYAML},
		{name: "yml alias", input: "yml", want: FormatYAML},
		{name: "whitespace trimmed", input: "  table  ", want: FormatTable},
		{name: "invalid format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinterMessages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	printer.Success("uploaded")
	printer.Warning("slow backend")
	printer.Error("checksum mismatch")

	out := buf.String()
	assert.Contains(t, out, "uploaded")
	assert.Contains(t, out, "slow backend")
	assert.Contains(t, out, "checksum mismatch")
	assert.NotContains(t, out, "\033[", "color disabled should emit no ANSI codes")
}

func TestPrinterSuccessColored(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, true)

	printer.Success("published")
	assert.Contains(t, buf.String(), "\033[32m")
	assert.Contains(t, buf.String(), "published")
}

func TestPrinterPrintDispatch(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatJSON, false)

	err := printer.Print(map[string]string{"slug": "uniprot"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"slug": "uniprot"`)
}

func TestPrinterPrintTableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatTable, false)

	// Not a TableRenderer, so table format falls back to JSON.
	err := printer.Print(map[string]int{"count": 3})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"count": 3`)
}
