package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/config"
)

type OpenAISummarizer struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewOpenAISummarizer(cfg config.AIConfig) *OpenAISummarizer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAISummarizer{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (s *OpenAISummarizer) Summarize(ctx context.Context, input summarizer.Input) (*summarizer.Narrative, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(input)},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("calling openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices returned", domain.ErrUpstreamFormat)
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}

func parseNarrative(raw string) (*summarizer.Narrative, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var n summarizer.Narrative
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &n); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFormat, err)
	}
	if strings.TrimSpace(n.Summary) == "" {
		return nil, fmt.Errorf("%w: empty summary", domain.ErrUpstreamFormat)
	}
	if n.Highlights == nil {
		n.Highlights = []string{}
	}

	return &n, nil
}
