// Package catalog is the HTTP client for the remote ranking backend. All wire
// shapes are normalized into the canonical types at this boundary.
package catalog

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

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tsnthiago/viewstats/internal/platform/cache"
)

// ErrNotFound reports a missing resource, as opposed to a transient backend
// failure. The two get different recovery affordances in the UI.
var ErrNotFound = errors.New("catalog: not found")

const (
	videoCacheTTL    = time.Hour
	searchCacheTTL   = 5 * time.Minute
	taxonomyCacheTTL = 10 * time.Minute
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query       string `json:"query"`
	TopicFilter string `json:"topic_filter,omitempty"`
	TopK        int    `json:"top_k"`
	Page        int    `json:"page,omitempty"`
	Limit       int    `json:"limit,omitempty"`

	Duration   string `json:"duration,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
	Language   string `json:"language,omitempty"`
	MinViews   int    `json:"min_views,omitempty"`
}

// Client wraps the handful of backend calls the frontend relies on.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger

	videoCache    *cache.Cache[Video]
	searchCache   *cache.Cache[ResultPage]
	taxonomyCache *cache.Cache[json.RawMessage]
	taxonomyGroup singleflight.Group
}

// New creates a client for the backend at baseURL.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		log:           log.With().Str("component", "catalog").Logger(),
		videoCache:    cache.New[Video](),
		searchCache:   cache.New[ResultPage](),
		taxonomyCache: cache.New[json.RawMessage](),
	}
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Search runs a semantic query. An empty query acts as "browse all"; the
// relevance score on each result is kept.
func (c *Client) Search(ctx context.Context, req SearchRequest) (ResultPage, error) {
	key := searchCacheKey(req)
	if page, ok := c.searchCache.Get(key); ok {
		return page, nil
	}

	c.log.Debug().Str("query", req.Query).Str("topic_filter", req.TopicFilter).
		Int("top_k", req.TopK).Int("page", req.Page).Msg("search dispatch")

	payload, err := json.Marshal(req)
	if err != nil {
		return ResultPage{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return ResultPage{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ResultPage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ResultPage{}, statusError("search", resp)
	}

	var decoded struct {
		Results []videoRaw `json:"results"`
		Total   int        `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ResultPage{}, fmt.Errorf("search decode: %w", err)
	}

	page := ResultPage{
		Videos: make([]VideoSummary, 0, len(decoded.Results)),
		Total:  decoded.Total,
	}
	for _, raw := range decoded.Results {
		page.Videos = append(page.Videos, raw.normalize(true))
	}
	if page.Total < len(page.Videos) {
		page.Total = len(page.Videos)
	}

	c.searchCache.Set(key, page, searchCacheTTL)
	return page, nil
}

// VideosByTopic lists videos under a taxonomy node. Results carry no
// relevance score.
func (c *Client) VideosByTopic(ctx context.Context, topicID string, page, limit int) (ResultPage, error) {
	key := fmt.Sprintf("topic|%s|%d|%d", topicID, page, limit)
	if cached, ok := c.searchCache.Get(key); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("topic_id", topicID)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos_by_topic?"+params.Encode(), nil)
	if err != nil {
		return ResultPage{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ResultPage{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ResultPage{}, statusError("videos_by_topic", resp)
	}

	var decoded struct {
		Videos []videoRaw `json:"videos"`
		Total  int        `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ResultPage{}, fmt.Errorf("videos_by_topic decode: %w", err)
	}

	result := ResultPage{
		Videos: make([]VideoSummary, 0, len(decoded.Videos)),
		Total:  decoded.Total,
	}
	for _, raw := range decoded.Videos {
		result.Videos = append(result.Videos, raw.normalize(false))
	}

	c.searchCache.Set(key, result, searchCacheTTL)
	return result, nil
}

// Video fetches playback metadata for one video. A backend 404 maps to
// ErrNotFound.
func (c *Client) Video(ctx context.Context, id string) (Video, error) {
	if v, ok := c.videoCache.Get(id); ok {
		return v, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/video/"+url.PathEscape(id), nil)
	if err != nil {
		return Video{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Video{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return Video{}, fmt.Errorf("video %s: %w", id, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return Video{}, statusError("video", resp)
	}

	var raw videoRaw
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Video{}, fmt.Errorf("video decode: %w", err)
	}

	video := raw.normalizeDetail()
	c.videoCache.Set(id, video, videoCacheTTL)
	return video, nil
}

// Taxonomy returns the raw taxonomy document. Concurrent fetches collapse
// into one backend call; the document is cached briefly since the taxonomy
// changes rarely.
func (c *Client) Taxonomy(ctx context.Context) (json.RawMessage, error) {
	if raw, ok := c.taxonomyCache.Get("taxonomy"); ok {
		return raw, nil
	}

	v, err, _ := c.taxonomyGroup.Do("taxonomy", func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/taxonomy", nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError("taxonomy", resp)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		c.taxonomyCache.Set("taxonomy", json.RawMessage(raw), taxonomyCacheTTL)
		return json.RawMessage(raw), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}

// Suggest returns autocomplete entries for q. Suggestions are best-effort:
// a backend without the endpoint yields an empty list, not an error.
func (c *Client) Suggest(ctx context.Context, q string) ([]Suggestion, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/suggest?q="+url.QueryEscape(q), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Debug().Msg("backend has no suggest endpoint, degrading to empty list")
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError("suggest", resp)
	}

	var decoded struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("suggest decode: %w", err)
	}
	return decoded.Suggestions, nil
}

func searchCacheKey(req SearchRequest) string {
	return strings.Join([]string{
		"search",
		strings.ToLower(strings.TrimSpace(req.Query)),
		req.TopicFilter,
		strconv.Itoa(req.TopK),
		strconv.Itoa(req.Page),
		req.Duration, req.UploadDate, req.Language, strconv.Itoa(req.MinViews),
	}, "|")
}

func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return fmt.Errorf("%s request failed: %s (%s)", op, resp.Status, strings.TrimSpace(string(body)))
}
