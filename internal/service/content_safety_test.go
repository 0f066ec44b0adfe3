package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubWords struct {
	patterns []string
	err      error
}

func (s *stubWords) ListPatterns() ([]string, error) { return s.patterns, s.err }

func perspectiveServer(t *testing.T, score float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1alpha1/comments:analyze" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key, got %q", r.URL.Query().Get("key"))
		}

		var resp perspectiveResponse
		resp.AttributeScores = map[string]struct {
			SummaryScore struct {
				Value float64 `json:"value"`
			} `json:"summaryScore"`
		}{}
		entry := resp.AttributeScores["TOXICITY"]
		entry.SummaryScore.Value = score
		resp.AttributeScores["TOXICITY"] = entry
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestIsSafe(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text is safe without any lookup", func(t *testing.T) {
		svc := NewContentSafetyService("test-key", "http://unused", &stubWords{})
		safe, err := svc.IsSafe(ctx, "   ")
		assert.NoError(t, err)
		assert.True(t, safe)
	})

	t.Run("forbidden word flags without calling the API", func(t *testing.T) {
		svc := NewContentSafetyService("test-key", "http://unreachable.invalid", &stubWords{patterns: []string{"dumbom"}})
		safe, err := svc.IsSafe(ctx, "Vilken DUMBOM du är")
		assert.NoError(t, err)
		assert.False(t, safe)
	})

	t.Run("score above the threshold is unsafe", func(t *testing.T) {
		server := perspectiveServer(t, 0.92)
		defer server.Close()

		svc := NewContentSafetyService("test-key", server.URL, &stubWords{})
		safe, err := svc.IsSafe(ctx, "some text")
		assert.NoError(t, err)
		assert.False(t, safe)
	})

	t.Run("score below the threshold is safe", func(t *testing.T) {
		server := perspectiveServer(t, 0.12)
		defer server.Close()

		svc := NewContentSafetyService("test-key", server.URL, &stubWords{})
		safe, err := svc.IsSafe(ctx, "some text")
		assert.NoError(t, err)
		assert.True(t, safe)
	})

	t.Run("API failure is an error, not a verdict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		svc := NewContentSafetyService("test-key", server.URL, &stubWords{})
		_, err := svc.IsSafe(ctx, "some text")
		assert.Error(t, err)
	})

	t.Run("no api key runs the word screen only", func(t *testing.T) {
		svc := NewContentSafetyService("", "http://unused", &stubWords{patterns: []string{"dumbom"}})

		safe, err := svc.IsSafe(ctx, "helt ok text")
		assert.NoError(t, err)
		assert.True(t, safe)

		safe, err = svc.IsSafe(ctx, "din dumbom")
		assert.NoError(t, err)
		assert.False(t, safe)
	})
}
