// Package service orchestrates the ingestion pipeline and its exports for
// the CLI layer.
package service

import (
	"context"

	"github.com/alexanderramin/deskops/internal/codec"
	"github.com/alexanderramin/deskops/internal/domain"
	"github.com/alexanderramin/deskops/internal/suggest"
)

// Export format flags, also the values stored under the draft format key.
const (
	FormatTabular = "tabular"
	FormatJSON    = "json"
)

// PipelineResult is the output of one full pass.
type PipelineResult struct {
	// Table is the flat historical view: every decoded row, including the
	// ones excluded from aggregation.
	Table *codec.Table

	// Dataset is the per-day aggregate recomputed from the table.
	Dataset *domain.Dataset
}

// PipelineService runs the decode -> normalize -> aggregate pass.
type PipelineService interface {
	// Run executes one pass over the raw text. A decode failure is the only
	// fatal condition and is returned as an error with no partial result;
	// zero decoded rows is a normal empty result.
	Run(text string, upcoming []domain.UpcomingProject) (*PipelineResult, error)
}

// ExportService re-serializes the structured form for egress and converts
// the edit buffer between formats.
type ExportService interface {
	// ToTabular renders the table back to delimited text.
	ToTabular(table *codec.Table) string

	// ToJSON renders the table as an array-of-objects export.
	ToJSON(table *codec.Table) ([]byte, error)

	// Convert transforms raw text between the tabular and JSON forms. On
	// failure the caller keeps its unmodified buffer; the error is
	// user-visible but never fatal.
	Convert(text, from, to string) (string, error)

	// WriteFile atomically writes an export so a failed write never
	// clobbers an existing file.
	WriteFile(path string, data []byte) error
}

// SuggestService exposes classified tickets to the external clause
// suggestion collaborator. Its results are advisory only.
type SuggestService interface {
	Suggest(ctx context.Context, dataset *domain.Dataset) ([]suggest.Suggestion, error)
}
