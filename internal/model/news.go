package model

import "time"

// NewsItem is a normalized record produced by a source adapter.
type NewsItem struct {
	Title          string     `json:"title"`
	URL            string     `json:"url"`
	Source         string     `json:"source"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`
	Description    string     `json:"description,omitempty"`
	Keywords       []string   `json:"keywords,omitempty"`
	RelevanceScore int        `json:"relevance_score,omitempty"`
	ContentType    string     `json:"content_type,omitempty"` // reddit: text, image, video, link
	Duration       int        `json:"duration,omitempty"`     // seconds, youtube only

	Author   string `json:"author,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Points   int    `json:"points,omitempty"`
	Comments int    `json:"comments,omitempty"`
}

// SourceResult is the outcome of one adapter fetch.
type SourceResult struct {
	Source string
	Items  []NewsItem
	Err    error
}

func (r SourceResult) OK() bool { return r.Err == nil }

// ChannelInfo describes a YouTube channel for language checks.
type ChannelInfo struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Country         string `json:"country,omitempty"`
	DefaultLanguage string `json:"default_language,omitempty"`
}
