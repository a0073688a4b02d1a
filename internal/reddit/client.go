package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	publicBaseURL = "https://www.reddit.com"
	oauthBaseURL  = "https://oauth.reddit.com"
	tokenURL      = "https://www.reddit.com/api/v1/access_token"
)

// ClientConfig configures the Reddit listing client. With ClientID and
// ClientSecret set, requests use an app-only OAuth token.
type ClientConfig struct {
	BaseURL           string
	TokenURL          string
	UserAgent         string
	ClientID          string
	ClientSecret      string
	RequestsPerMinute int
}

// Client reads subreddit listings.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
	if c.userAgent == "" {
		c.userAgent = "AI_News_Aggregator/1.0"
	}
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		tu := cfg.TokenURL
		if tu == "" {
			tu = tokenURL
		}
		cc := clientcredentials.Config{ClientID: cfg.ClientID, ClientSecret: cfg.ClientSecret, TokenURL: tu}
		c.http = cc.Client(context.Background())
		c.http.Timeout = 15 * time.Second
		if c.baseURL == "" {
			c.baseURL = oauthBaseURL
		}
	}
	if c.baseURL == "" {
		c.baseURL = publicBaseURL
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 30
	}
	c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 2)
	return c
}

// Post is the subset of a t3 listing child we use.
type Post struct {
	Title       string  `json:"title"`
	Permalink   string  `json:"permalink"`
	URL         string  `json:"url"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
}

type listing struct {
	Data struct {
		Children []struct {
			Kind string `json:"kind"`
			Data Post   `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Listing returns posts of a subreddit for sort "hot", "new" or "top".
func (c *Client) Listing(ctx context.Context, subreddit, sort string, limit int) ([]Post, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("raw_json", "1")
	endpoint := fmt.Sprintf("%s/r/%s/%s.json?%s", c.baseURL, url.PathEscape(subreddit), url.PathEscape(sort), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("reddit: r/%s/%s status %d", subreddit, sort, resp.StatusCode)
	}
	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, fmt.Errorf("reddit: decode r/%s/%s: %w", subreddit, sort, err)
	}
	posts := make([]Post, 0, len(l.Data.Children))
	for _, ch := range l.Data.Children {
		if ch.Kind == "t3" {
			posts = append(posts, ch.Data)
		}
	}
	return posts, nil
}
