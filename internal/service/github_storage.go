package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"path"
	"strings"
	"time"

	"sarasblogg/internal/pkg"
)

// GitHubStorage keeps uploaded images as files in a GitHub repository
// via the contents API and serves them through raw.githubusercontent.
type GitHubStorage struct {
	cfg    pkg.GitHubConfig
	apiURL string
	rawURL string
	client *http.Client
}

func NewGitHubStorage(cfg pkg.GitHubConfig) *GitHubStorage {
	return &GitHubStorage{
		cfg:    cfg,
		apiURL: "https://api.github.com",
		rawURL: "https://raw.githubusercontent.com",
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// SaveImage uploads the file under <folder>/<blogg id>/ with a random
// prefix to dodge name collisions, returning the public raw URL.
func (g *GitHubStorage) SaveImage(ctx context.Context, bloggID uint64, fileName string, data []byte) (string, error) {
	stamp := time.Now().UTC().Format("20060102")
	prefixed := fmt.Sprintf("%04d-%s_%s", rand.Intn(10000), stamp, path.Base(fileName))
	uploadPath := fmt.Sprintf("%s/%d/%s", g.cfg.UploadFolder, bloggID, prefixed)

	body := map[string]string{
		"message": "Upload image: " + prefixed,
		"content": base64.StdEncoding.EncodeToString(data),
		"branch":  g.cfg.Branch,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.apiURL, g.cfg.UserName, g.cfg.Repository, uploadPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("github upload failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github upload returned status %d", resp.StatusCode)
	}

	return fmt.Sprintf("%s/%s/%s/%s/%s", g.rawURL, g.cfg.UserName, g.cfg.Repository, g.cfg.Branch, uploadPath), nil
}

// DeleteImage removes the file behind a raw URL: resolve its blob sha
// first, then delete. Unknown URLs are ignored.
func (g *GitHubStorage) DeleteImage(ctx context.Context, imageURL string) error {
	relativePath, ok := g.relativePath(imageURL)
	if !ok {
		return nil
	}

	sha, err := g.fileSHA(ctx, relativePath)
	if err != nil {
		return err
	}
	if sha == "" {
		return nil
	}

	body := map[string]string{
		"message": "Delete " + relativePath,
		"sha":     sha,
		"branch":  g.cfg.Branch,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.apiURL, g.cfg.UserName, g.cfg.Repository, relativePath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("github delete failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github delete returned status %d", resp.StatusCode)
	}
	return nil
}

// DeleteBloggFolder removes every stored file under a post's folder.
func (g *GitHubStorage) DeleteBloggFolder(ctx context.Context, bloggID uint64, imageURLs []string) error {
	for _, imageURL := range imageURLs {
		if err := g.DeleteImage(ctx, imageURL); err != nil {
			return err
		}
	}
	return nil
}

func (g *GitHubStorage) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	req.Header.Set("User-Agent", "SarasBloggApp")
	req.Header.Set("Content-Type", "application/json")
}

func (g *GitHubStorage) relativePath(imageURL string) (string, bool) {
	marker := g.cfg.UploadFolder + "/"
	idx := strings.Index(imageURL, marker)
	if idx == -1 {
		return "", false
	}
	return imageURL[idx:], true
}

func (g *GitHubStorage) fileSHA(ctx context.Context, relativePath string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", g.apiURL, g.cfg.UserName, g.cfg.Repository, relativePath, g.cfg.Branch)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("github sha lookup failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github sha lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var meta struct {
		SHA string `json:"sha"`
	}
	if err := json.Unmarshal(body, &meta); err != nil {
		return "", err
	}
	return meta.SHA, nil
}
