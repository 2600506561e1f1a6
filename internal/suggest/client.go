// Package suggest talks to the external text-classification service that
// proposes compliance-clause mappings for classified tickets. Its output is
// advisory: the user may apply it or not, and the aggregation pipeline never
// depends on it.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"github.com/alexanderramin/deskops/internal/domain"
)

const defaultModel = "claude-sonnet-4-5-20250929"
const defaultBatchSize = 40

// Suggestion is one advisory clause proposal for a ticket.
type Suggestion struct {
	TicketID        string  `json:"ticket_id"`
	SuggestedClause string  `json:"suggested_clause"`
	Reason          string  `json:"reason"`
	Confidence      float64 `json:"confidence"`
}

// Client proposes compliance-clause mappings for tickets.
type Client interface {
	// Suggest returns one advisory suggestion per ticket it can classify,
	// given the fixed catalog of recognized standards. Tickets the model
	// skips simply have no entry in the result.
	Suggest(ctx context.Context, tickets []domain.Ticket, catalog []string) ([]Suggestion, error)
}

type anthropicClient struct {
	client    anthropic.Client
	model     string
	batchSize int
	observer  Observer
}

// NewAnthropicClient creates a Client backed by the Anthropic Messages API.
// Model and batchSize fall back to sensible defaults when zero-valued.
func NewAnthropicClient(apiKey, model string, batchSize int, observer Observer) Client {
	if model == "" {
		model = defaultModel
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &anthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		batchSize: batchSize,
		observer:  observer,
	}
}

func (c *anthropicClient) Suggest(ctx context.Context, tickets []domain.Ticket, catalog []string) ([]Suggestion, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	var all []Suggestion
	for start := 0; start < len(tickets); start += c.batchSize {
		end := start + c.batchSize
		if end > len(tickets) {
			end = len(tickets)
		}
		batch := tickets[start:end]

		suggestions, err := c.suggestBatch(ctx, batch, catalog)
		if err != nil {
			return nil, err
		}
		all = append(all, suggestions...)
	}
	return all, nil
}

func (c *anthropicClient) suggestBatch(ctx context.Context, batch []domain.Ticket, catalog []string) ([]Suggestion, error) {
	requestID := uuid.NewString()
	start := time.Now()

	systemPrompt, userPrompt := buildPrompts(batch, catalog)

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		c.emit(requestID, len(batch), start, false, "API_ERROR")
		return nil, fmt.Errorf("suggestion API call: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		c.emit(requestID, len(batch), start, false, "NO_CONTENT")
		return nil, ErrNoContent
	}

	suggestions, err := ExtractJSONArray[Suggestion](text)
	if err != nil {
		c.emit(requestID, len(batch), start, false, "INVALID_OUTPUT")
		return nil, err
	}

	c.emit(requestID, len(batch), start, true, "")
	return suggestions, nil
}

func (c *anthropicClient) emit(requestID string, tickets int, start time.Time, success bool, code string) {
	c.observer.OnCallComplete(CallEvent{
		RequestID: requestID,
		Model:     c.model,
		Tickets:   tickets,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
		ErrorCode: code,
	})
}
