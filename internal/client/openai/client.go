package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/s21platform/advice-service/internal/config"
	"github.com/s21platform/advice-service/internal/model"
)

const adviceSystemPrompt = "Provide advice as an unordered list."

// ErrInvalidRequest marks history validation failures detected before any
// external call is made.
var ErrInvalidRequest = errors.New("invalid AI request")

var adviceSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"title": {Type: jsonschema.String},
		"list": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"title":   {Type: jsonschema.String},
					"content": {Type: jsonschema.String},
				},
				Required:             []string{"title", "content"},
				AdditionalProperties: false,
			},
		},
	},
	Required:             []string{"title", "list"},
	AdditionalProperties: false,
}

type Client struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func New(cfg *config.Config) *Client {
	return &Client{
		client:      openai.NewClient(cfg.OpenAI.APIKey),
		model:       cfg.OpenAI.Model,
		maxTokens:   cfg.OpenAI.MaxTokens,
		temperature: float32(cfg.OpenAI.Temperature),
	}
}

// GenerateAdvice sends the role-tagged history, newest entry last, to the
// external model and returns its schema-constrained structured reply.
func (c *Client) GenerateAdvice(ctx context.Context, history []model.AIMessage) (*model.AdviceList, error) {
	if err := validateHistory(history); err != nil {
		return nil, err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: adviceSystemPrompt,
	})

	for _, entry := range history {
		role, err := openAIRole(entry.Role)
		if err != nil {
			return nil, err
		}

		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: entry.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "advice_list",
				Schema: &adviceSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate AI response: %v", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("AI response contains no choices")
	}

	return parseAdvice(resp.Choices[0].Message.Content)
}

func validateHistory(history []model.AIMessage) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: no messages provided for AI generation", ErrInvalidRequest)
	}

	if strings.TrimSpace(history[len(history)-1].Content) == "" {
		return fmt.Errorf("%w: last message content is empty", ErrInvalidRequest)
	}

	return nil
}

func openAIRole(role string) (string, error) {
	switch role {
	case model.UserMessageRole:
		return openai.ChatMessageRoleUser, nil
	case model.AssistantMessageRole:
		return openai.ChatMessageRoleAssistant, nil
	case model.SystemMessageRole:
		return openai.ChatMessageRoleSystem, nil
	}

	return "", fmt.Errorf("%w: unknown role '%s'", ErrInvalidRequest, role)
}

// parseAdvice strictly decodes the model output; downstream excerpt extraction
// has no validation of its own, so a shape mismatch must be rejected here.
func parseAdvice(raw string) (*model.AdviceList, error) {
	decoder := json.NewDecoder(bytes.NewReader([]byte(strings.TrimSpace(raw))))
	decoder.DisallowUnknownFields()

	var advice model.AdviceList
	if err := decoder.Decode(&advice); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %v", err)
	}

	if advice.List == nil {
		return nil, fmt.Errorf("AI response is missing the advice list")
	}

	return &advice, nil
}
