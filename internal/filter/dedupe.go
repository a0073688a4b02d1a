package filter

import (
	"strings"

	"github.com/Krijovnick/ai-news/internal/model"
)

// Dedupe keeps the first occurrence of every item. An item is a duplicate
// when its normalized title or its URL was already seen; the empty URL is
// treated as an ordinary value, so only one URL-less item survives.
func Dedupe(items []model.NewsItem) []model.NewsItem {
	seenTitles := make(map[string]struct{}, len(items))
	seenURLs := make(map[string]struct{}, len(items))
	out := make([]model.NewsItem, 0, len(items))
	for _, it := range items {
		title := strings.ToLower(strings.TrimSpace(it.Title))
		_, dupTitle := seenTitles[title]
		_, dupURL := seenURLs[it.URL]
		if dupTitle || dupURL {
			continue
		}
		seenTitles[title] = struct{}{}
		seenURLs[it.URL] = struct{}{}
		out = append(out, it)
	}
	return out
}
