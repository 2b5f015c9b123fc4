// Package freightsync pulls shipments, items and client accounts from the
// remote freight API into the local MySQL database the resolution engine
// reads from. Runs are single-flighted through a Redis lock and recorded as
// SyncRun rows.
package freightsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type freightClient struct {
	baseURL   string
	apiKey    string
	apiKeyHdr string
	http      *http.Client
	limiter   <-chan time.Time
}

func newFreightClient() (*freightClient, error) {
	baseURL := strings.TrimSpace(os.Getenv("FREIGHT_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.freightgate.example"
	}
	apiKey := strings.TrimSpace(os.Getenv("FREIGHT_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("freight api key is empty")
	}
	apiKeyHeader := strings.TrimSpace(os.Getenv("FREIGHT_API_KEY_HEADER"))
	if apiKeyHeader == "" {
		apiKeyHeader = "X-API-Key"
	}
	rateLimitPerMin := int64(30)
	if v := strings.TrimSpace(os.Getenv("FREIGHT_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			rateLimitPerMin = n
		}
	}
	interval := time.Minute / time.Duration(rateLimitPerMin)

	return &freightClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiKeyHdr: apiKeyHeader,
		http:      &http.Client{Timeout: 30 * time.Second},
		limiter:   time.Tick(interval),
	}, nil
}

type freightListResponse struct {
	Data       []json.RawMessage `json:"data"`
	Items      []json.RawMessage `json:"items"`
	NextCursor string            `json:"next_cursor"`
	HasMore    *bool             `json:"has_more"`
}

func (c *freightClient) getList(ctx context.Context, path string, params url.Values) (freightListResponse, error) {
	<-c.limiter
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return freightListResponse{}, err
	}
	req.Header.Set(c.apiKeyHdr, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return freightListResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return freightListResponse{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return freightListResponse{}, fmt.Errorf("freight api %s: status %d: %s", path, resp.StatusCode, truncate(string(body), 300))
	}

	var out freightListResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return freightListResponse{}, fmt.Errorf("freight api %s: decode: %w", path, err)
	}
	return out, nil
}

// records merges the two list shapes the API has shipped over time.
func (r freightListResponse) records() []json.RawMessage {
	if len(r.Data) > 0 {
		return r.Data
	}
	return r.Items
}

// fetchAll pages through one collection endpoint via cursor pagination.
// The cursor is the only trusted progress signal: some API deployments
// answer has_more=true on the final page without a cursor to follow, so
// an empty or stalled cursor terminates regardless of has_more.
func (c *freightClient) fetchAll(ctx context.Context, path string) ([]json.RawMessage, error) {
	var all []json.RawMessage
	cursor := ""
	for {
		params := url.Values{}
		params.Set("limit", "200")
		if cursor != "" {
			params.Set("cursor", cursor)
		}
		page, err := c.getList(ctx, path, params)
		if err != nil {
			return nil, err
		}
		all = append(all, page.records()...)
		if page.NextCursor == "" || page.NextCursor == cursor {
			return all, nil
		}
		if page.HasMore != nil && !*page.HasMore {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
