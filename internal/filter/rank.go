package filter

import (
	"sort"

	"github.com/Krijovnick/ai-news/internal/model"
)

// FilterByRelevance drops items with unsupported title language, scores the
// rest and keeps those at or above minScore, highest score first. Items with
// equal scores keep their input order. The input slice is left untouched.
func (f *Filter) FilterByRelevance(items []model.NewsItem, minScore int) []model.NewsItem {
	out := make([]model.NewsItem, 0, len(items))
	for _, it := range items {
		if !IsPermittedLanguage(it.Title) {
			continue
		}
		it.RelevanceScore = f.Score(it.Title, it.Description, it.Keywords)
		if it.RelevanceScore >= minScore {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return out
}

// SortByPublished orders items newest first; undated items sort last.
func SortByPublished(items []model.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PublishedDate, items[j].PublishedDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
