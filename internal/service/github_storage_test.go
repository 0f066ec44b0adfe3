package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sarasblogg/internal/pkg"

	"github.com/stretchr/testify/assert"
)

func testGitHubConfig() pkg.GitHubConfig {
	return pkg.GitHubConfig{
		Token:        "test-token",
		UserName:     "saras",
		Repository:   "blogg-uploads",
		Branch:       "main",
		UploadFolder: "uploads",
	}
}

func TestSaveImage(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	storage := NewGitHubStorage(testGitHubConfig())
	storage.apiURL = server.URL
	storage.rawURL = "https://raw.example.com"

	url, err := storage.SaveImage(context.Background(), 42, "cat.png", []byte("pngdata"))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotPath, "/repos/saras/blogg-uploads/contents/uploads/42/"))
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pngdata")), gotBody["content"])
	assert.Equal(t, "main", gotBody["branch"])
	assert.Contains(t, url, "https://raw.example.com/saras/blogg-uploads/main/uploads/42/")
	assert.True(t, strings.HasSuffix(url, "_cat.png"))
}

func TestDeleteImage(t *testing.T) {
	t.Run("resolves the sha then deletes", func(t *testing.T) {
		var deletedPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(map[string]string{"sha": "abc123"})
			case http.MethodDelete:
				deletedPath = r.URL.Path
				raw, _ := io.ReadAll(r.Body)
				var body map[string]string
				json.Unmarshal(raw, &body)
				if body["sha"] != "abc123" {
					t.Errorf("expected sha abc123, got %q", body["sha"])
				}
				w.WriteHeader(http.StatusOK)
			default:
				t.Errorf("unexpected method %s", r.Method)
			}
		}))
		defer server.Close()

		storage := NewGitHubStorage(testGitHubConfig())
		storage.apiURL = server.URL

		err := storage.DeleteImage(context.Background(),
			"https://raw.example.com/saras/blogg-uploads/main/uploads/42/0001-x_cat.png")

		assert.NoError(t, err)
		assert.Equal(t, "/repos/saras/blogg-uploads/contents/uploads/42/0001-x_cat.png", deletedPath)
	})

	t.Run("a file already gone is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		storage := NewGitHubStorage(testGitHubConfig())
		storage.apiURL = server.URL

		err := storage.DeleteImage(context.Background(),
			"https://raw.example.com/saras/blogg-uploads/main/uploads/42/0001-x_cat.png")
		assert.NoError(t, err)
	})

	t.Run("an unrelated URL is ignored", func(t *testing.T) {
		storage := NewGitHubStorage(testGitHubConfig())
		storage.apiURL = "http://unreachable.invalid"

		err := storage.DeleteImage(context.Background(), "https://example.com/elsewhere/cat.png")
		assert.NoError(t, err)
	})
}
