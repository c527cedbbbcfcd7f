// Package rest implements leaderboard.Sink against a PostgREST endpoint
// (the hosted Supabase "scores" table: player_name, score, created_at).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/leaderboard"
)

// ErrStatus is wrapped by errors for non-2xx responses.
var ErrStatus = errors.New("rest: unexpected status")

// Config configures a Client.
type Config struct {
	// BaseURL is the project URL, e.g. https://xyz.supabase.co.
	BaseURL string
	// APIKey is sent as both apikey and bearer token.
	APIKey string
	// Table defaults to "scores".
	Table string
	// Timeout bounds each request. Zero means 10s.
	Timeout time.Duration
}

// Client talks to the PostgREST API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *log.Logger
}

// newRow is the insert payload. created_at is left to the table default.
type newRow struct {
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
}

// row mirrors the table columns.
type row struct {
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// New creates a client. It fails on a missing or malformed base URL.
func New(cfg Config, logger *log.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("rest: base URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("rest: invalid base URL: %w", err)
	}
	if cfg.Table == "" {
		cfg.Table = "scores"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/rest/v1/" + url.PathEscape(c.cfg.Table)
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("rest: cannot build request: %w", err)
	}
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// SubmitScore inserts a row.
func (c *Client) SubmitScore(ctx context.Context, name string, score int) error {
	payload, err := json.Marshal([]newRow{{PlayerName: name, Score: score}})
	if err != nil {
		return fmt.Errorf("rest: cannot encode score: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rest: cannot submit score: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	c.logger.Debug("score submitted", "name", name, "score", score)
	return nil
}

// TopScores fetches the best rows ordered by score descending.
func (c *Client) TopScores(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}

	q := url.Values{}
	q.Set("select", "player_name,score,created_at")
	q.Set("order", "score.desc")
	q.Set("limit", strconv.Itoa(limit))

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint()+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest: cannot fetch scores: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var rows []row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("rest: cannot decode scores: %w", err)
	}

	entries := make([]leaderboard.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, leaderboard.Entry{
			Name:      r.PlayerName,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		})
	}
	return entries, nil
}

// checkStatus turns a non-2xx response into an error carrying the body's
// message, if any.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	var apiErr struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}
	if msg == "" {
		return fmt.Errorf("%w %d", ErrStatus, resp.StatusCode)
	}
	return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, msg)
}

var _ leaderboard.Sink = (*Client)(nil)
