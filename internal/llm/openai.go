package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the external generation model as seen by the rest of the
// service: an opaque prompt-in, text-out call. The core pipeline never
// imports this package; only the request-handling layer does.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API to generate answers.
// API credentials and the model name are loaded from environment variables.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed generation client. The API
// key is read from the environment; an empty model falls back to a sensible
// default.
func NewOpenAIClient(model string) *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	if model == "" {
		// default to a modern small model; can be overridden via config or env
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{client: c, model: model}
}

// Generate sends the composed prompt to the chat completion API and returns
// the model's answer. An empty answer is reported as an error so the caller
// can substitute its fallback message.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}
