package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"aura-ugc-engine/internal/config"
	"aura-ugc-engine/internal/domains/ugc/model"
)

// ========================================
// AURA Core Scoring Client
// ========================================

const (
	systemPrompt = "You are a strict content moderation assistant for e-commerce product reviews. " +
		"You must respond with a single JSON object and nothing else."

	userPromptTemplate = `Assess the following customer review for authenticity and quality.

Review text: %q
Rating: %s
Channel: %s

Respond with JSON only, in this exact shape:
{"score": <number between 0 and 1>, "label": "<looks_real_positive|needs_review|likely_spam_or_low_quality>", "reasons": "<short explanation>"}`
)

type AuraCoreScorer struct {
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

func NewAuraCoreScorer(cfg config.AuraCoreConfig) *AuraCoreScorer {
	return &AuraCoreScorer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		httpClient: &http.Client{
			Timeout: cfg.Timeout + 3*time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type verdict struct {
	Score   float64      `json:"score"`
	Label   string       `json:"label"`
	Reasons reasonsField `json:"reasons"`
}

// reasonsField tolerates both verdict shapes seen in the wild: the
// contract's plain string and the array of strings some models emit.
type reasonsField string

func (r *reasonsField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = reasonsField(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("reasons is neither string nor string array")
	}
	*r = reasonsField(strings.Join(list, "; "))
	return nil
}

// Score asks the AURA Core engine for a verdict. Any failure, from
// network errors to malformed model output, falls back to the
// deterministic heuristic so the caller always gets an assessment.
func (s *AuraCoreScorer) Score(ctx context.Context, req *model.SubmitRequest) model.AIAssessment {
	assessment, err := s.callEngine(ctx, req)
	if err != nil {
		log.Warn().
			Err(err).
			Str("site_id", req.SiteID).
			Msg("AI scoring unavailable, using heuristic fallback")
		return HeuristicScore(req.Text, req.Rating)
	}
	return assessment
}

func (s *AuraCoreScorer) callEngine(ctx context.Context, req *model.SubmitRequest) (model.AIAssessment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rating := "not provided"
	if req.Rating != nil {
		rating = fmt.Sprintf("%d/5", *req.Rating)
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, req.Text, rating, req.Channel)},
		},
		Temperature: 0.2,
		MaxTokens:   256,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return model.AIAssessment{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return model.AIAssessment{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return model.AIAssessment{}, fmt.Errorf("call engine: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return model.AIAssessment{}, fmt.Errorf("engine returned %d: %s", resp.StatusCode, string(raw))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return model.AIAssessment{}, fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return model.AIAssessment{}, fmt.Errorf("engine returned no choices")
	}

	return parseVerdict(chatResp.Choices[0].Message.Content)
}

// parseVerdict extracts the strict-JSON verdict from the model's reply.
// Small models occasionally wrap the object in prose, so the first
// top-level JSON object is sliced out before decoding.
func parseVerdict(content string) (model.AIAssessment, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return model.AIAssessment{}, fmt.Errorf("no JSON object in model output")
	}

	var v verdict
	if err := json.Unmarshal([]byte(content[start:end+1]), &v); err != nil {
		return model.AIAssessment{}, fmt.Errorf("parse verdict: %w", err)
	}

	if v.Score < 0 || v.Score > 1 {
		return model.AIAssessment{}, fmt.Errorf("score out of range: %v", v.Score)
	}
	if v.Label == "" {
		return model.AIAssessment{}, fmt.Errorf("verdict missing label")
	}
	if v.Reasons == "" {
		return model.AIAssessment{}, fmt.Errorf("verdict missing reasons")
	}

	return model.AIAssessment{
		Score:   v.Score,
		Label:   v.Label,
		Reasons: string(v.Reasons),
	}, nil
}
