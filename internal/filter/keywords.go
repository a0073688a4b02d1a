package filter

import "strings"

// ContainsTopicKeywords is true when text mentions at least one topic keyword
// and none of the exclusion keywords.
func (f *Filter) ContainsTopicKeywords(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	if !containsAny(lower, f.topicLower) {
		return false
	}
	return !containsAny(lower, f.exclude)
}

// ExtractKeywords returns the topic keywords found in text, in configured order.
func (f *Filter) ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for i, kw := range f.topicLower {
		if strings.Contains(lower, kw) {
			found = append(found, f.topic[i])
		}
	}
	return found
}

// IsRetweet matches the classic "RT @user" prefix.
func IsRetweet(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "RT @")
}

func containsAny(lower string, kws []string) bool {
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
