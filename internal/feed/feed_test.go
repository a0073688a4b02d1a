package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>t</title>
<item><title>OpenAI news</title><link>https://example.com/a</link>
<description>&lt;p&gt;Hello &amp;amp; &lt;b&gt;world&lt;/b&gt;&lt;/p&gt;</description>
<pubDate>Mon, 06 May 2024 10:00:00 +0300</pubDate></item>
</channel></rss>`

func TestFetch(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.UserAgent()
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	f, err := NewFetcher(time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, f.Items, 1)
	assert.Equal(t, userAgent, ua)

	it := f.Items[0]
	pub := Published(it)
	require.NotNil(t, pub)
	assert.Equal(t, time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC), *pub)
	assert.Equal(t, "Hello & world", StripTags(it.Description))
}

func TestPublishedFallback(t *testing.T) {
	upd := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &upd, Published(&gofeed.Item{UpdatedParsed: &upd}))
	assert.Nil(t, Published(&gofeed.Item{}))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "", StripTags("  "))
	assert.Equal(t, "a b", StripTags("<div>a\n\n <i>b</i></div>"))
}
