package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `Ticket Number,Created On,Assignee,Item,Status,Priority,Clause,Time Spent
2031,2025-07-04 09:12:00,Dana,VPN outage,Closed,High,A.12,2.0
2032,2025-07-04 10:30:00,Alice,Switch port dead,Closed,Medium,A.12,1.5
2032,2025-07-04 11:00:00,Bob,Switch port dead,Closed,Medium,A.12,0.5
2040,2025-07-03 08:00:00,Dana,Patch window,Open,Low,A.12,
2041,not a date,Dana,Ghost record,Closed,Low,,
`

func TestPipeline_Run(t *testing.T) {
	svc := NewPipelineService()

	result, err := svc.Run(sampleExport, nil)
	require.NoError(t, err)

	// The flat view keeps every decoded row, excluded ones included.
	assert.Len(t, result.Table.Rows, 5)

	ds := result.Dataset
	require.Len(t, ds.Buckets, 2)
	assert.Equal(t, "2025-07-04", ds.Buckets[0].DateKey)
	assert.Equal(t, 1, ds.ExcludedRows)
	assert.Len(t, ds.Collaboration, 1)
	assert.Len(t, ds.Pending, 1)
}

func TestPipeline_ZeroRowsIsNotAnError(t *testing.T) {
	svc := NewPipelineService()

	result, err := svc.Run("", nil)
	require.NoError(t, err)
	assert.Empty(t, result.Table.Rows)
	assert.Empty(t, result.Dataset.Buckets)
}

func TestPipeline_Idempotent(t *testing.T) {
	svc := NewPipelineService()

	first, err := svc.Run(sampleExport, nil)
	require.NoError(t, err)
	second, err := svc.Run(sampleExport, nil)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Dataset, second.Dataset); diff != "" {
		t.Errorf("pipeline not idempotent (-first +second):\n%s", diff)
	}
}
