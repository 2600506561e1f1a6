package service

import (
	"context"

	"github.com/alexanderramin/deskops/internal/domain"
	"github.com/alexanderramin/deskops/internal/suggest"
)

type suggestService struct {
	client  suggest.Client
	catalog []string
}

// NewSuggestService creates a SuggestService over the given client and
// clause catalog.
func NewSuggestService(client suggest.Client, catalog []string) SuggestService {
	return &suggestService{client: client, catalog: catalog}
}

// Suggest sends every classified ticket across all buckets to the suggestion
// collaborator. The four category lists are disjoint, so no ticket number is
// submitted twice.
func (s *suggestService) Suggest(ctx context.Context, dataset *domain.Dataset) ([]suggest.Suggestion, error) {
	var tickets []domain.Ticket
	tickets = append(tickets, dataset.Main...)
	tickets = append(tickets, dataset.Pending...)
	tickets = append(tickets, dataset.Preventive...)
	tickets = append(tickets, dataset.Collaboration...)

	return s.client.Suggest(ctx, tickets, s.catalog)
}
