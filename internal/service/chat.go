package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nutrifyhq/nutrify/internal/model"
	openai "github.com/sashabaranov/go-openai"
)

const (
	chatSystemPrompt = "You are a nutrition assistant for the app Nutrify."

	// How many recent entries are replayed into the prompt. The assistant
	// keeps no conversation state; this is its only memory.
	chatHistoryLimit = 5
)

var ErrAssistantNotConfigured = errors.New("assistant not configured (missing OPENAI_API_KEY)")

type ChatService struct {
	client *openai.Client
	model  string
}

func NewChatService(apiKey, model string) *ChatService {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}

	return &ChatService{
		client: client,
		model:  model,
	}
}

// HistoryLimit is how many recent food entries a caller should load for
// the prompt context.
func (s *ChatService) HistoryLimit() int {
	return chatHistoryLimit
}

// Reply forwards one message to the completion API together with the
// caller's recent food history and returns the first choice. Each call is
// independent; nothing is persisted between requests.
func (s *ChatService) Reply(ctx context.Context, history []*model.TrackedFood, message string) (string, error) {
	if s.client == nil {
		return "", ErrAssistantNotConfigured
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("failed to encode food history: %w", err)
	}

	prompt := fmt.Sprintf("User's recent food history: %s\nUser's question: %s", historyJSON, message)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: chatSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from completion API")
	}

	return resp.Choices[0].Message.Content, nil
}
