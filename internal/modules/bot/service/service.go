package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ummahconnect/backend/internal/entity"
	"github.com/ummahconnect/backend/internal/modules/bot/dto"
	"github.com/ummahconnect/backend/internal/store"
)

const CollectionBotConversations = "bot_conversations"

const systemPrompt = `You are an Islamic AI assistant helping Muslims with authentic Islamic knowledge.
Provide guidance based on Quran and authentic Hadith. Always be respectful and accurate.
If unsure about something, recommend consulting local Islamic scholars.
Start responses with Islamic greetings when appropriate.`

// Shown when no upstream API key is configured. Conversational continuity
// beats a hard failure here, so these go out as a normal response.
var fallbackResponses = []string{
	"As-salamu alaikum! I am here to help with Islamic knowledge. However, the AI service is currently being configured. Please check back soon, in sha Allah.",
	"May Allah bless you! The AI assistant is temporarily unavailable. In the meantime, you can explore our Quran, Hadith, and Duas sections for Islamic guidance.",
	"Barakallahu feeki/feek for reaching out! Our AI Islamic scholar is being set up. Please visit our learning section for authentic Islamic content.",
}

const upstreamApology = "I apologize, but I'm having trouble connecting to the knowledge base right now. Please try again later, or consult with your local Islamic scholar for guidance."

type BotService interface {
	Chat(ctx context.Context, user *entity.User, input dto.ChatInput) (*dto.BotResponse, error)
}

// Options configure the OpenRouter-backed assistant.
type Options struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration
}

type botService struct {
	store  store.Store
	client *http.Client
	opts   Options
}

func NewBotService(st store.Store, opts Options) BotService {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &botService{
		store:  st,
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

// Chat proxies the message to the chat completion upstream. Upstream
// failures degrade to an apology rather than an error response; the
// exchange is persisted either way when an API key is configured.
func (s *botService) Chat(ctx context.Context, user *entity.User, input dto.ChatInput) (*dto.BotResponse, error) {
	if s.opts.APIKey == "" {
		return &dto.BotResponse{
			Response:  fallbackResponses[rand.Intn(len(fallbackResponses))],
			Timestamp: time.Now().UTC(),
		}, nil
	}

	botResponse, err := s.complete(ctx, input.Message)
	if err != nil {
		logrus.WithError(err).Warn("bot chat upstream failed")
		botResponse = upstreamApology
	}

	conversation := entity.BotConversation{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserMessage: input.Message,
		BotResponse: botResponse,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.Insert(ctx, CollectionBotConversations, conversation); err != nil {
		logrus.WithError(err).Warn("failed to persist bot conversation")
	}

	return &dto.BotResponse{Response: botResponse, Timestamp: time.Now().UTC()}, nil
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *botService) complete(ctx context.Context, message string) (string, error) {
	payload := chatCompletionRequest{
		Model: s.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.opts.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.opts.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("upstream returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
