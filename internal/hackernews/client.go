package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal Hacker News API client.
// Docs: https://github.com/HackerNews/API
type Client struct {
	baseAPI string
	client  *http.Client
}

// NewClient creates a new Hacker News client. baseAPI should be something like
// "https://hacker-news.firebaseio.com/v0". If empty, it defaults to the v0 endpoint.
func NewClient(baseAPI string) *Client {
	if strings.TrimSpace(baseAPI) == "" {
		baseAPI = "https://hacker-news.firebaseio.com/v0"
	}
	return &Client{
		baseAPI: strings.TrimRight(baseAPI, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Item mirrors the subset of HN item fields we care about.
type Item struct {
	ID          int    `json:"id"`
	Type        string `json:"type"` // story, job, comment, poll, ...
	By          string `json:"by"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Text        string `json:"text"`
	Time        int64  `json:"time"`
	Descendants int    `json:"descendants"`
	Score       int    `json:"score"`
	Dead        bool   `json:"dead"`
	Deleted     bool   `json:"deleted"`
}

// listEndpoint maps short list names (top, new, best, ask, show) to API lists.
func listEndpoint(list string) string {
	l := strings.ToLower(strings.TrimSpace(list))
	if strings.HasSuffix(l, "stories") {
		return l
	}
	return l + "stories"
}

// StoryIDs loads a list endpoint such as topstories or newstories.
func (c *Client) StoryIDs(ctx context.Context, list string) ([]int, error) {
	path := fmt.Sprintf("%s/%s.json", c.baseAPI, url.PathEscape(listEndpoint(list)))
	var ids []int
	if err := c.getJSON(ctx, path, &ids); err != nil {
		return nil, fmt.Errorf("hackernews: %s: %w", list, err)
	}
	return ids, nil
}

// Item fetches a single HN item by ID. A missing item yields a zero Item.
func (c *Client) Item(ctx context.Context, id int) (Item, error) {
	var it Item
	endpoint := fmt.Sprintf("%s/item/%d.json", c.baseAPI, id)
	if err := c.getJSON(ctx, endpoint, &it); err != nil {
		return Item{}, fmt.Errorf("hackernews: item %d: %w", id, err)
	}
	return it, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// Items resolves multiple IDs concurrently, preserving input order.
// Items that fail to load are skipped.
func (c *Client) Items(ctx context.Context, ids []int) []Item {
	if len(ids) == 0 {
		return nil
	}
	// bounded concurrency
	const maxWorkers = 8
	type result struct {
		idx  int
		item Item
		err  error
	}
	out := make([]*Item, len(ids))
	sem := make(chan struct{}, maxWorkers)
	done := make(chan result, len(ids))
	for i, id := range ids {
		i, id := i, id
		sem <- struct{}{}
		go func() {
			defer func() { <-sem }()
			// Per-item timeout to avoid hanging
			ictx, cancel := context.WithTimeout(ctx, 8*time.Second)
			defer cancel()
			it, err := c.Item(ictx, id)
			done <- result{idx: i, item: it, err: err}
		}()
	}
	for i := 0; i < len(ids); i++ {
		r := <-done
		if r.err != nil {
			slog.Debug("hackernews: item fetch failed", "error", r.err)
			continue
		}
		it := r.item
		out[r.idx] = &it
	}
	items := make([]Item, 0, len(ids))
	for _, it := range out {
		if it != nil && it.ID != 0 {
			items = append(items, *it)
		}
	}
	return items
}
