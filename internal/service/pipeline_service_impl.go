package service

import (
	"fmt"

	"github.com/alexanderramin/deskops/internal/aggregate"
	"github.com/alexanderramin/deskops/internal/codec"
	"github.com/alexanderramin/deskops/internal/domain"
)

type pipelineService struct{}

// NewPipelineService creates the standard pipeline implementation.
func NewPipelineService() PipelineService {
	return &pipelineService{}
}

func (s *pipelineService) Run(text string, upcoming []domain.UpcomingProject) (*PipelineResult, error) {
	table, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}

	return &PipelineResult{
		Table:   table,
		Dataset: aggregate.Run(table, upcoming),
	}, nil
}
