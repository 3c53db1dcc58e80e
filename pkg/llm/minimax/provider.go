package minimax

import (
	"ai-bankassist-be/pkg/llm"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.minimax.chat/v1"

type MiniMaxProvider struct {
	BaseURL   string
	APIKey    string
	GroupID   string
	ModelName string
	Client    *http.Client
}

// Ensure MiniMaxProvider implements LLMProvider
var _ llm.LLMProvider = &MiniMaxProvider{}

func NewMiniMaxProvider(apiKey, groupID, modelName string) *MiniMaxProvider {
	if modelName == "" {
		modelName = "abab5.5-chat"
	}
	return &MiniMaxProvider{
		BaseURL:   defaultBaseURL,
		APIKey:    apiKey,
		GroupID:   groupID,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

// MiniMax chatcompletion_v2 speaks sender_type USER/BOT instead of
// the usual role strings.
type minimaxMessage struct {
	SenderType string `json:"sender_type"`
	Text       string `json:"text"`
}

type minimaxChatRequest struct {
	Model            string           `json:"model"`
	Messages         []minimaxMessage `json:"messages"`
	TokensToGenerate int              `json:"tokens_to_generate,omitempty"`
	Temperature      float64          `json:"temperature,omitempty"`
}

type minimaxChatResponse struct {
	Reply   string `json:"reply"`
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	BaseResp struct {
		StatusCode int    `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

// --- Interface Implementation ---

func (p *MiniMaxProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]minimaxMessage, 0, len(history))
	for _, msg := range history {
		senderType := "USER"
		if msg.Role == "assistant" || msg.Role == "model" {
			senderType = "BOT"
		}
		messages = append(messages, minimaxMessage{
			SenderType: senderType,
			Text:       msg.Content,
		})
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	reqPayload := minimaxChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: options.Temperature,
	}
	if options.MaxTokens > 0 {
		reqPayload.TokensToGenerate = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text/chatcompletion_v2?GroupId=%s", p.BaseURL, p.GroupID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("minimax request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("minimax error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var minimaxResp minimaxChatResponse
	if err := json.Unmarshal(bodyBytes, &minimaxResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if minimaxResp.BaseResp.StatusCode != 0 {
		return "", fmt.Errorf("minimax error: %s (code %d)", minimaxResp.BaseResp.StatusMsg, minimaxResp.BaseResp.StatusCode)
	}

	if minimaxResp.Reply != "" {
		return minimaxResp.Reply, nil
	}
	if len(minimaxResp.Choices) > 0 {
		return minimaxResp.Choices[0].Text, nil
	}

	return "", fmt.Errorf("minimax returned empty reply")
}

func (p *MiniMaxProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
