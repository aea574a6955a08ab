package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient клиент Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient создает клиента Gemini
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", ErrInternal, err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Name имя бэкенда
func (c *GeminiClient) Name() string {
	return BackendGemini
}

// Complete отправляет диалог в чат-сессию; последняя реплика должна быть от пользователя
func (c *GeminiClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	if len(messages) == 0 || messages[len(messages)-1].Role != RoleUser {
		return "", fmt.Errorf("%w: last message must come from the user", ErrInternal)
	}

	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	model.SetMaxOutputTokens(maxReplyTokens)
	model.SetTemperature(temperature)

	session := model.StartChat()
	session.History = toGeminiHistory(messages[:len(messages)-1])

	resp, err := session.SendMessage(ctx, genai.Text(messages[len(messages)-1].Content))
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate: %v", ErrInvalidResponse, err)
	}

	reply := textOf(resp)
	if reply == "" {
		return "", fmt.Errorf("%w: empty completion", ErrInvalidResponse)
	}
	return reply, nil
}

// Close закрывает соединение с API
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func toGeminiHistory(messages []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return history
}

func textOf(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
