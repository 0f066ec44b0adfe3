package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// checked Perspective attributes, any summary score at or above the
// threshold flags the text
var perspectiveAttributes = []string{
	"TOXICITY", "SEXUALLY_EXPLICIT", "THREAT", "IDENTITY_ATTACK", "INSULT",
}

const perspectiveThreshold = 0.7

// WordSource supplies the locally maintained forbidden word patterns.
type WordSource interface {
	ListPatterns() ([]string, error)
}

// ContentSafetyService screens text in two steps: the forbidden-word
// table first, then the Perspective commentanalyzer API. Without an
// API key only the word screen runs.
type ContentSafetyService struct {
	apiKey  string
	baseURL string
	words   WordSource
	client  *http.Client
}

func NewContentSafetyService(apiKey, baseURL string, words WordSource) *ContentSafetyService {
	if apiKey == "" {
		zap.L().Warn("content safety: no Perspective API key, only the forbidden-word screen is active")
	}
	return &ContentSafetyService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		words:   words,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type perspectiveRequest struct {
	Comment struct {
		Text string `json:"text"`
	} `json:"comment"`
	RequestedAttributes map[string]struct{} `json:"requestedAttributes"`
	Languages           []string            `json:"languages"`
}

type perspectiveResponse struct {
	AttributeScores map[string]struct {
		SummaryScore struct {
			Value float64 `json:"value"`
		} `json:"summaryScore"`
	} `json:"attributeScores"`
}

func (s *ContentSafetyService) IsSafe(ctx context.Context, text string) (bool, error) {
	if strings.TrimSpace(text) == "" {
		return true, nil
	}

	patterns, err := s.words.ListPatterns()
	if err != nil {
		return false, err
	}
	lower := strings.ToLower(text)
	for _, pattern := range patterns {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return false, nil
		}
	}

	if s.apiKey == "" {
		return true, nil
	}
	return s.analyze(ctx, text)
}

func (s *ContentSafetyService) analyze(ctx context.Context, text string) (bool, error) {
	var reqBody perspectiveRequest
	reqBody.Comment.Text = text
	reqBody.RequestedAttributes = make(map[string]struct{}, len(perspectiveAttributes))
	for _, attr := range perspectiveAttributes {
		reqBody.RequestedAttributes[attr] = struct{}{}
	}
	reqBody.Languages = []string{"en"}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return false, err
	}

	url := fmt.Sprintf("%s/v1alpha1/comments:analyze?key=%s", s.baseURL, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("perspective request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("perspective returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	var result perspectiveResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return false, fmt.Errorf("perspective response parse failed: %w", err)
	}

	for _, attr := range result.AttributeScores {
		if attr.SummaryScore.Value >= perspectiveThreshold {
			return false, nil
		}
	}
	return true, nil
}
