package scorer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ugc-engine/internal/config"
	"aura-ugc-engine/internal/domains/ugc/model"
)

func intPtr(v int) *int { return &v }

func newTestScorer(baseURL string, timeout time.Duration) *AuraCoreScorer {
	return NewAuraCoreScorer(config.AuraCoreConfig{
		BaseURL: baseURL,
		Model:   "phi3",
		Timeout: timeout,
	})
}

func chatReply(t *testing.T, content string) []byte {
	t.Helper()
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	b, err := json.Marshal(reply)
	require.NoError(t, err)
	return b
}

func TestHeuristicScoring(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		rating    *int
		wantScore float64
		wantLabel string
	}{
		{
			name:      "long positive review",
			text:      strings.Repeat("great product, works exactly as described ", 2),
			rating:    intPtr(5),
			wantScore: 0.9,
			wantLabel: model.AILabelRealPositive,
		},
		{
			name:      "short text no rating",
			text:      "nice",
			rating:    nil,
			wantScore: 0.3,
			wantLabel: model.AILabelLowQuality,
		},
		{
			name:      "medium text low rating",
			text:      "it broke after two days",
			rating:    intPtr(2),
			wantScore: 0.5,
			wantLabel: model.AILabelLowQuality,
		},
		{
			name:      "short text high rating",
			text:      "good",
			rating:    intPtr(5),
			wantScore: 0.45,
			wantLabel: model.AILabelLowQuality,
		},
		{
			name:      "medium text high rating",
			text:      "solid value for the price",
			rating:    intPtr(4),
			wantScore: 0.65,
			wantLabel: model.AILabelNeedsReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeuristicScore(tt.text, tt.rating)
			assert.InDelta(t, tt.wantScore, got.Score, 0.0001)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.True(t, strings.HasPrefix(got.Reasons, model.HeuristicReasonMarker))
		})
	}
}

func TestHeuristicIsDeterministic(t *testing.T) {
	req := &model.SubmitRequest{Text: "decent quality, arrived on time and fits well", Rating: intPtr(4)}

	first := HeuristicScore(req.Text, req.Rating)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, HeuristicScore(req.Text, req.Rating))
	}
}

func TestScoreUsesEngineVerdict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "phi3", req.Model)
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write(chatReply(t, `{"score": 0.92, "label": "looks_real_positive", "reasons": ["specific detail", "plausible tone"]}`))
	}))
	defer srv.Close()

	s := newTestScorer(srv.URL, 5*time.Second)
	got := s.Score(context.Background(), &model.SubmitRequest{
		SiteID:  "acme",
		Text:    "battery lasts the whole weekend, charging is fast",
		Rating:  intPtr(5),
		Channel: "web",
	})

	assert.InDelta(t, 0.92, got.Score, 0.0001)
	assert.Equal(t, model.AILabelRealPositive, got.Label)
	assert.Equal(t, "specific detail; plausible tone", got.Reasons)
}

func TestScoreAcceptsStringReasons(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, `{"score": 0.93, "label": "looks_real_positive", "reasons": "Natural language, concrete product details, consistent with the rating."}`))
	}))
	defer srv.Close()

	s := newTestScorer(srv.URL, 5*time.Second)
	got := s.Score(context.Background(), &model.SubmitRequest{
		SiteID: "acme",
		Text:   "battery lasts the whole weekend, charging is fast",
		Rating: intPtr(5),
	})

	// The engine verdict must win; a fallback here means the parser
	// rejected the contract shape.
	assert.InDelta(t, 0.93, got.Score, 0.0001)
	assert.Equal(t, model.AILabelRealPositive, got.Label)
	assert.Equal(t, "Natural language, concrete product details, consistent with the rating.", got.Reasons)
	assert.False(t, strings.HasPrefix(got.Reasons, model.HeuristicReasonMarker))
}

func TestScoreExtractsJSONFromProse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatReply(t, "Here is my assessment:\n{\"score\": 0.4, \"label\": \"needs_review\", \"reasons\": [\"generic wording\"]}\nLet me know if you need more."))
	}))
	defer srv.Close()

	s := newTestScorer(srv.URL, 5*time.Second)
	got := s.Score(context.Background(), &model.SubmitRequest{SiteID: "acme", Text: "ok product"})

	assert.InDelta(t, 0.4, got.Score, 0.0001)
	assert.Equal(t, "needs_review", got.Label)
}

func TestScoreFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write(chatReply(t, `{"score": 0.9, "label": "looks_real_positive", "reasons": ["x"]}`))
	}))
	defer srv.Close()

	s := newTestScorer(srv.URL, 50*time.Millisecond)
	text := "excellent build quality, survived a drop onto concrete"
	got := s.Score(context.Background(), &model.SubmitRequest{SiteID: "acme", Text: text, Rating: intPtr(5)})

	want := HeuristicScore(text, intPtr(5))
	assert.Equal(t, want, got)
}

func TestScoreFallsBackOnEngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newTestScorer(srv.URL, time.Second)
	got := s.Score(context.Background(), &model.SubmitRequest{SiteID: "acme", Text: "short"})

	assert.True(t, strings.HasPrefix(got.Reasons, model.HeuristicReasonMarker))
}

func TestScoreFallsBackOnMalformedVerdict(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "I think this review looks fine to me."},
		{"score out of range", `{"score": 7, "label": "needs_review", "reasons": ["x"]}`},
		{"missing label", `{"score": 0.5, "reasons": ["x"]}`},
		{"missing reasons", `{"score": 0.5, "label": "needs_review"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write(chatReply(t, tt.content))
			}))
			defer srv.Close()

			s := newTestScorer(srv.URL, time.Second)
			got := s.Score(context.Background(), &model.SubmitRequest{SiteID: "acme", Text: "short"})
			assert.True(t, strings.HasPrefix(got.Reasons, model.HeuristicReasonMarker))
		})
	}
}

func TestScoreFallsBackWhenEngineUnreachable(t *testing.T) {
	s := newTestScorer("http://127.0.0.1:1", time.Second)
	got := s.Score(context.Background(), &model.SubmitRequest{SiteID: "acme", Text: "unreachable engine test text"})

	assert.True(t, strings.HasPrefix(got.Reasons, model.HeuristicReasonMarker))
	assert.GreaterOrEqual(t, got.Score, 0.0)
	assert.LessOrEqual(t, got.Score, 1.0)
}
