package service

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"

	"github.com/alexanderramin/deskops/internal/codec"
)

type exportService struct{}

// NewExportService creates the standard export implementation.
func NewExportService() ExportService {
	return &exportService{}
}

func (s *exportService) ToTabular(table *codec.Table) string {
	return codec.Encode(table)
}

func (s *exportService) ToJSON(table *codec.Table) ([]byte, error) {
	return codec.EncodeJSON(table)
}

func (s *exportService) Convert(text, from, to string) (string, error) {
	if from == to {
		return text, nil
	}

	var table *codec.Table
	var err error
	switch from {
	case FormatTabular:
		table, err = codec.Decode(text)
	case FormatJSON:
		table, err = codec.DecodeJSON([]byte(text))
	default:
		return "", fmt.Errorf("unknown source format %q", from)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s form: %w", from, err)
	}

	switch to {
	case FormatTabular:
		return codec.Encode(table), nil
	case FormatJSON:
		data, err := codec.EncodeJSON(table)
		if err != nil {
			return "", fmt.Errorf("writing JSON form: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown target format %q", to)
	}
}

func (s *exportService) WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
