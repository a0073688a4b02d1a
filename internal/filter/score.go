package filter

import "strings"

const (
	highWeight   = 20
	mediumWeight = 10
	lowWeight    = 5
	keywordBonus = 5
	maxBonus     = 20
	maxScore     = 100
)

// Score rates an item from 0 to 100. Tier keywords are looked up in the
// lower-cased "title description" text; keywords adds a capped bonus.
func (f *Filter) Score(title, description string, keywords []string) int {
	if title == "" {
		return 0
	}
	text := strings.ToLower(title + " " + description)
	score := 0
	score += highWeight * countIn(text, f.high)
	score += mediumWeight * countIn(text, f.medium)
	score += lowWeight * countIn(text, f.low)
	score += min(len(keywords)*keywordBonus, maxBonus)
	return min(score, maxScore)
}

func countIn(text string, kws []string) int {
	n := 0
	for _, kw := range kws {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
