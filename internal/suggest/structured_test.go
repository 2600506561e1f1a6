package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray_Plain(t *testing.T) {
	raw := `[{"ticket_id":"1","suggested_clause":"ISO 27001 A.9 Access control","reason":"password reset","confidence":0.9}]`

	got, err := ExtractJSONArray[Suggestion](raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].TicketID)
	assert.InDelta(t, 0.9, got[0].Confidence, 1e-9)
}

func TestExtractJSONArray_CodeFences(t *testing.T) {
	raw := "Here are the mappings:\n```json\n[{\"ticket_id\":\"7\",\"suggested_clause\":\"c\",\"reason\":\"r\",\"confidence\":0.5}]\n```\nLet me know."

	got, err := ExtractJSONArray[Suggestion](raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].TicketID)
}

func TestExtractJSONArray_BracketsInsideStrings(t *testing.T) {
	raw := `[{"ticket_id":"1","suggested_clause":"A.12 [ops]","reason":"see [1]","confidence":0.4}]`

	got, err := ExtractJSONArray[Suggestion](raw)
	require.NoError(t, err)
	assert.Equal(t, "A.12 [ops]", got[0].SuggestedClause)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := ExtractJSONArray[Suggestion]("I cannot classify these tickets.")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_MalformedJSON(t *testing.T) {
	_, err := ExtractJSONArray[Suggestion](`[{"ticket_id": }]`)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONArray_EmptyArray(t *testing.T) {
	got, err := ExtractJSONArray[Suggestion]("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}
