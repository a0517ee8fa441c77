package openai

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
	"github.com/privacyshield/linkscanner/internal/infra/ai/prompt"
	"github.com/privacyshield/linkscanner/internal/middleware"
)

const maxTokens = 2048

// Client is the generative classifier. One analysis costs at most two
// chat completions: the original call plus a single repair pass when
// the reply fails to parse as schema JSON.
type Client struct {
	*openai.Client
	Model string
}

// NewClient builds the classifier. baseURL overrides the API endpoint
// (local gateways, tests); empty means the public API.
func NewClient(apiKey, model, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{Client: openai.NewClientWithConfig(cfg), Model: model}
}

func (c *Client) Mock() bool { return false }

func (c *Client) Classify(ctx context.Context, url string, convo []domain.Turn, lang domain.Lang) (*domain.Report, error) {
	return c.classify(ctx, prompt.GetUserPrompt(url), convo, lang)
}

// ClassifyWithPrior is the hybrid entry point: the local model's score
// rides along as a prior signal in the final user turn.
func (c *Client) ClassifyWithPrior(ctx context.Context, url string, convo []domain.Turn, lang domain.Lang, priorScore int) (*domain.Report, error) {
	return c.classify(ctx, prompt.GetUserPromptWithPrior(url, priorScore), convo, lang)
}

func (c *Client) classify(ctx context.Context, userPrompt string, convo []domain.Turn, lang domain.Lang) (*domain.Report, error) {
	raw, err := c.complete(ctx, c.scanMessages(userPrompt, convo, lang), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}

	report, perr := domain.ParseReport(raw)
	if perr == nil {
		return report, nil
	}

	// One deterministic repair round, then give up. Bounds worst-case
	// cost to two model calls per request.
	log.Printf("openai: malformed model output, attempting repair: %v", perr)
	middleware.IncrementRepairs()
	// Smallest non-zero value: a literal 0 would be dropped by the
	// request struct's omitempty and the API would fall back to its
	// default temperature. The repair pass must be deterministic.
	temperature := float32(math.SmallestNonzeroFloat32)
	repaired, err := c.complete(ctx, c.repairMessages(raw, lang), &temperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}
	if report, perr = domain.ParseReport(repaired); perr != nil {
		return nil, fmt.Errorf("%w: unrepairable model output", domain.ErrAnalysisFailed)
	}
	return report, nil
}

func (c *Client) scanMessages(userPrompt string, convo []domain.Turn, lang domain.Lang) []openai.ChatCompletionMessage {
	msgs := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt(languageName(lang))},
		{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSchemaPrompt()},
	}
	for _, t := range convo {
		role := openai.ChatMessageRoleUser
		if t.Role == domain.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: t.Content})
	}
	return append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userPrompt})
}

func (c *Client) repairMessages(malformed string, lang domain.Lang) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSystemPrompt(languageName(lang))},
		{Role: openai.ChatMessageRoleSystem, Content: prompt.GetSchemaPrompt()},
		{Role: openai.ChatMessageRoleUser, Content: prompt.GetRepairPrompt(malformed)},
	}
}

func (c *Client) complete(ctx context.Context, msgs []openai.ChatCompletionMessage, temperature *float32) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: msgs,
	}
	if temperature != nil {
		req.Temperature = *temperature
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

func languageName(lang domain.Lang) string {
	if lang == domain.LangHebrew {
		return "Hebrew"
	}
	return "English"
}
