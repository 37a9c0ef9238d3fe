package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/suqaba/suqaba-companion/internal/archive"
	"github.com/suqaba/suqaba-companion/internal/model"
	"github.com/suqaba/suqaba-companion/internal/platform"
)

// ErrNotAuthenticated is returned when no session token is stored or the
// cluster rejects the stored one.
var ErrNotAuthenticated = errors.New("not authenticated; please log in first")

// Client talks to the Suqaba cluster REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
}

// NewClient creates a cluster client rooted at baseURL
func NewClient(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
	}
}

// IsAuthenticated reports whether a session token is stored
func (c *Client) IsAuthenticated() bool {
	token, err := c.tokens.AccessToken()
	return err == nil && token != ""
}

// Authenticate exchanges credentials for session tokens and stores them
func (c *Client) Authenticate(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password must not be empty")
	}

	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach the cluster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login rejected: %s", resp.Status)
	}

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if tokens.Access == "" {
		return errors.New("login response carried no access token")
	}

	return c.tokens.Save(tokens.Access, tokens.Refresh)
}

// Logout forgets the stored session
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// CheckIn asks the cluster for the caller's job counts and queue position
func (c *Client) CheckIn(ctx context.Context) (*model.ClusterCounts, error) {
	resp, err := c.authorizedRequest(ctx, http.MethodGet, "/checkin/", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Completed   int               `json:"completed"`
		Processing  int               `json:"processing"`
		Queued      int               `json:"queued"`
		IsProcessed string            `json:"is_processed"`
		NextQueue   []json.RawMessage `json:"next_queue"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode check-in response: %w", err)
	}

	counts := &model.ClusterCounts{
		Completed:    payload.Completed,
		Processing:   payload.Processing,
		Queued:       payload.Queued,
		ProcessingID: payload.IsProcessed,
	}
	if len(payload.NextQueue) == 2 {
		_ = json.Unmarshal(payload.NextQueue[0], &counts.NextID)
		_ = json.Unmarshal(payload.NextQueue[1], &counts.NextPosition)
	}
	return counts, nil
}

// Submit uploads a packed job archive and returns the assigned job ID
func (c *Client) Submit(ctx context.Context, archivePath string) (string, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to open job archive: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(archivePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to read job archive: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	resp, err := c.authorizedRequest(ctx, http.MethodPost, "/upload/", &body, form.FormDataContentType())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		JobID string `json:"job_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if payload.JobID == "" {
		return "", errors.New("upload response carried no job ID")
	}
	return payload.JobID, nil
}

// Fetch lists the caller's jobs, newest first as the cluster reports them.
// Each wire entry is a [name, status, id] triple.
func (c *Client) Fetch(ctx context.Context) ([]model.Job, error) {
	resp, err := c.authorizedRequest(ctx, http.MethodGet, "/fetch/", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Jobs [][]string `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode job list: %w", err)
	}

	jobs := make([]model.Job, 0, len(payload.Jobs))
	for _, entry := range payload.Jobs {
		if len(entry) < 3 {
			continue
		}
		jobs = append(jobs, model.Job{
			Name:   entry[0],
			Status: model.ParseJobStatus(entry[1]),
			ID:     entry[2],
		})
	}
	return jobs, nil
}

// Cancel asks the cluster to cancel a queued or processing job and returns
// the cluster's confirmation message.
func (c *Client) Cancel(ctx context.Context, jobID string) (string, error) {
	return c.postMessage(ctx, "/cancel/"+jobID+"/")
}

// Remove deletes a finished job from the cluster and returns the cluster's
// confirmation message.
func (c *Client) Remove(ctx context.Context, jobID string) (string, error) {
	return c.postMessage(ctx, "/remove/"+jobID+"/")
}

// PullResults downloads a job's result archive into dir, unpacks it next to
// the archive and removes the archive. Returns the extraction directory.
func (c *Client) PullResults(ctx context.Context, jobID, dir string) (string, error) {
	resp, err := c.authorizedRequest(ctx, http.MethodGet, "/download/"+jobID+"/", nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	name := resultFileName(resp.Header.Get("Content-Disposition"))
	name = platform.UniqueFileName(dir, name)

	archivePath := filepath.Join(dir, name)
	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create result archive: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(archivePath)
		return "", fmt.Errorf("download interrupted: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	resultDir := strings.TrimSuffix(archivePath, filepath.Ext(archivePath))
	if _, err := archive.Unpack(archivePath, resultDir); err != nil {
		return "", err
	}
	os.Remove(archivePath)
	return resultDir, nil
}

// postMessage POSTs to path and returns the cluster's message field
func (c *Client) postMessage(ctx context.Context, path string) (string, error) {
	resp, err := c.authorizedRequest(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode cluster response: %w", err)
	}
	return payload.Message, nil
}

// authorizedRequest performs an API call with the stored bearer token.
// Callers own the response body on success.
func (c *Client) authorizedRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	token, err := c.tokens.AccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to read the stored session: %w", err)
	}
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach the cluster: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readErrorDetail(resp.Body)
		resp.Body.Close()
		if detail != "" {
			return nil, fmt.Errorf("cluster rejected %s %s: %s", method, path, detail)
		}
		return nil, fmt.Errorf("cluster rejected %s %s: %s", method, path, resp.Status)
	}
	return resp, nil
}

// readErrorDetail pulls a human-readable reason out of an error body
func readErrorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload map[string]string
	if json.Unmarshal(data, &payload) == nil {
		for _, key := range []string{"detail", "message", "not-ready", "error"} {
			if payload[key] != "" {
				return payload[key]
			}
		}
	}
	return ""
}

// resultFileName extracts the archive name from a Content-Disposition header
func resultFileName(disposition string) string {
	const fallback = "job_result.zip"
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return filepath.Base(params["filename"])
}
