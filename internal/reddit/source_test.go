package reddit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Krijovnick/ai-news/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingJSON(posts ...Post) []byte {
	var l listing
	for _, p := range posts {
		l.Data.Children = append(l.Data.Children, struct {
			Kind string `json:"kind"`
			Data Post   `json:"data"`
		}{Kind: "t3", Data: p})
	}
	b, _ := json.Marshal(l)
	return b
}

func TestSourceFetch(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	recent := float64(now.Add(-time.Hour).Unix())

	hot := listingJSON(
		Post{Title: "OpenAI announces new Sora features", Permalink: "/r/OpenAI/comments/1/sora/", URL: "https://i.redd.it/a.png", Subreddit: "OpenAI", CreatedUTC: recent, Score: 50, Author: "u1"},
		Post{Title: "Weekly thread: share your setups", Permalink: "/r/OpenAI/comments/2/x/", CreatedUTC: recent, Score: 10},
		Post{Title: "ChatGPT downvoted post here", Permalink: "/r/OpenAI/comments/3/x/", CreatedUTC: recent, Score: 0},
	)
	newer := listingJSON(
		Post{Title: "OpenAI announces new Sora features", Permalink: "/r/OpenAI/comments/1/sora/", Subreddit: "OpenAI", CreatedUTC: recent, Score: 50},
		Post{Title: "Claude wrote my whole essay today", Permalink: "/r/OpenAI/comments/4/c/", Selftext: "story", Subreddit: "OpenAI", CreatedUTC: recent, Score: 3},
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/r/OpenAI/hot.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write(hot)
	})
	mux.HandleFunc("/r/OpenAI/new.json", func(w http.ResponseWriter, r *http.Request) { w.Write(newer) })
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := &Source{
		Client:     NewClient(ClientConfig{BaseURL: srv.URL, UserAgent: "test-agent", RequestsPerMinute: 6000}),
		Filter:     filter.New(filter.DefaultKeywords()),
		Subreddits: []string{"OpenAI"},
		MaxResults: 2,
		Now:        func() time.Time { return now },
	}
	items, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "https://reddit.com/r/OpenAI/comments/1/sora/", items[0].URL)
	assert.Equal(t, "Reddit r/OpenAI", items[0].Source)
	assert.Equal(t, "image", items[0].ContentType)
	assert.Equal(t, "u1", items[0].Author)

	assert.Equal(t, "text", items[1].ContentType)
	assert.Equal(t, "deleted", items[1].Author)
}

func TestSourceFetchAllFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()
	s := &Source{
		Client:     NewClient(ClientConfig{BaseURL: srv.URL, RequestsPerMinute: 6000}),
		Filter:     filter.New(filter.DefaultKeywords()),
		Subreddits: []string{"a", "b"},
	}
	_, err := s.Fetch(context.Background())
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	cases := map[string]Post{
		"text":  {Selftext: "hello", URL: "https://i.imgur.com/x.jpg"},
		"image": {URL: "https://i.imgur.com/x.JPG"},
		"video": {URL: "https://youtu.be/abc"},
		"link":  {URL: "https://openai.com/blog"},
	}
	for want, p := range cases {
		assert.Equal(t, want, ContentType(p), want)
	}
	assert.Equal(t, "text", ContentType(Post{URL: "https://www.reddit.com/r/x/comments/1"}))
	assert.Equal(t, "text", ContentType(Post{Selftext: "[deleted]"}))
}
