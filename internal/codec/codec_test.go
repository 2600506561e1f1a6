package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Basic(t *testing.T) {
	text := "Ticket Number,Assigned To,Status\n2031,Alice,Closed\n2032,Bob,Open\n"

	table, err := Decode(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"ticketNumber", "assignedTo", "status"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2031", table.Rows[0]["ticketNumber"])
	assert.Equal(t, "Bob", table.Rows[1]["assignedTo"])
}

func TestDecode_QuotedFields(t *testing.T) {
	text := "Subject,Notes\n" +
		`"Printer, floor 2","He said ""try again"""` + "\n" +
		"\"multi\nline\",plain\n"

	table, err := Decode(text)
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Printer, floor 2", table.Rows[0]["subject"])
	assert.Equal(t, `He said "try again"`, table.Rows[0]["notes"])
	assert.Equal(t, "multi\nline", table.Rows[1]["subject"])
}

func TestDecode_StripsByteOrderMark(t *testing.T) {
	table, err := Decode("\uFEFFId,Name\n1,x\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, table.Headers)
}

func TestDecode_UnterminatedQuoteClosesAtEOF(t *testing.T) {
	table, err := Decode("Id,Note\n1,\"left open")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "left open", table.Rows[0]["note"])
}

func TestDecode_ShortRowsPadded(t *testing.T) {
	table, err := Decode("A,B,C\n1,2\n")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0]["b"])
	assert.Equal(t, "", table.Rows[0]["c"])
}

func TestDecode_BlankTrailingRowsDiscarded(t *testing.T) {
	table, err := Decode("A,B\n1,2\n\n,\n")
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}

func TestDecode_CRLF(t *testing.T) {
	table, err := Decode("A,B\r\n1,2\r\n")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2", table.Rows[0]["b"])
}

func TestDecode_EmptyInput(t *testing.T) {
	table, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestRoundTrip(t *testing.T) {
	original := &Table{
		Headers: []string{"ticketNumber", "subject", "notes"},
		Rows: []Row{
			{"ticketNumber": "10", "subject": "VPN down, again", "notes": `quote " inside`},
			{"ticketNumber": "2", "subject": "line\nbreak", "notes": ""},
		},
	}

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Ticket Number", "ticketNumber"},
		{" Created On ", "createdOn"},
		{"Assigned-To", "assignedTo"},
		{"status", "status"},
		{"ticketNumber", "ticketNumber"},
		{"Risk (Impact)", "riskImpact"},
		{"Time Spent (hrs)", "timeSpentHrs"},
		{"", ""},
		{"///", ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.header))
		})
	}
}
