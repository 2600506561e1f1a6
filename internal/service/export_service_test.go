package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/deskops/internal/codec"
)

func TestExport_TabularJSONRoundTrip(t *testing.T) {
	exp := NewExportService()

	table, err := codec.Decode("A,B\n1,2\n3,4\n")
	require.NoError(t, err)

	jsonText, err := exp.Convert(exp.ToTabular(table), FormatTabular, FormatJSON)
	require.NoError(t, err)

	tabular, err := exp.Convert(jsonText, FormatJSON, FormatTabular)
	require.NoError(t, err)

	back, err := codec.Decode(tabular)
	require.NoError(t, err)
	assert.Equal(t, table.Rows, back.Rows)
}

func TestExport_ConvertSameFormatIsIdentity(t *testing.T) {
	exp := NewExportService()

	out, err := exp.Convert("anything at all", FormatTabular, FormatTabular)
	require.NoError(t, err)
	assert.Equal(t, "anything at all", out)
}

func TestExport_ConvertBadJSONFails(t *testing.T) {
	exp := NewExportService()

	_, err := exp.Convert("not json", FormatJSON, FormatTabular)
	assert.Error(t, err)
}

func TestExport_ConvertUnknownFormat(t *testing.T) {
	exp := NewExportService()

	_, err := exp.Convert("x", "xml", FormatJSON)
	assert.Error(t, err)
}

func TestExport_WriteFile(t *testing.T) {
	exp := NewExportService()
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, exp.WriteFile(path, []byte("a,b\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}
