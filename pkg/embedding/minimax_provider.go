package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MiniMaxProvider implements EmbeddingProvider against the MiniMax
// embeddings endpoint (embo-01).
type MiniMaxProvider struct {
	BaseURL string
	APIKey  string
	GroupID string
	Model   string
	Client  *http.Client
}

func NewMiniMaxProvider(apiKey, groupID, model string) EmbeddingProvider {
	if model == "" {
		model = "embo-01"
	}
	return &MiniMaxProvider{
		BaseURL: "https://api.minimax.chat/v1",
		APIKey:  apiKey,
		GroupID: groupID,
		Model:   model,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type minimaxEmbeddingRequest struct {
	Model string   `json:"model"`
	Texts []string `json:"texts"`
	Type  string   `json:"type"` // "query" or "db"
}

type minimaxEmbeddingResponse struct {
	Vectors  [][]float32 `json:"vectors"`
	BaseResp struct {
		StatusCode int    `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

func (p *MiniMaxProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	embedType := "db"
	if taskType == TaskRetrievalQuery {
		embedType = "query"
	}

	reqBody := minimaxEmbeddingRequest{
		Model: p.Model,
		Texts: []string{text},
		Type:  embedType,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/embeddings?GroupId=%s", p.BaseURL, p.GroupID)
	req, err := http.NewRequest("POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("minimax embedding error: %s", string(bodyBytes))
	}

	var minimaxResp minimaxEmbeddingResponse
	if err := json.Unmarshal(bodyBytes, &minimaxResp); err != nil {
		return nil, err
	}
	if minimaxResp.BaseResp.StatusCode != 0 {
		return nil, fmt.Errorf("minimax embedding error: %s (code %d)", minimaxResp.BaseResp.StatusMsg, minimaxResp.BaseResp.StatusCode)
	}
	if len(minimaxResp.Vectors) == 0 {
		return nil, fmt.Errorf("minimax embedding error: empty vectors")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{
			Values: normalizeVector(minimaxResp.Vectors[0]),
		},
	}, nil
}
