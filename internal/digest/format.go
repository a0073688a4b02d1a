// Package digest renders ranked news items and service notices into
// Telegram-ready text.
package digest

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Krijovnick/ai-news/internal/model"
)

var contentGlyphs = map[string]string{
	"image": "🖼️",
	"video": "🎥",
	"text":  "📝",
	"link":  "🔗",
}

const defaultGlyph = "📄"

// Formatter renders digests. The zero value uses Russian labels and the wall clock.
type Formatter struct {
	Labels Labels
	Now    func() time.Time
}

func NewFormatter(lang string) *Formatter {
	return &Formatter{Labels: LabelsFor(lang), Now: time.Now}
}

func (f *Formatter) labels() Labels {
	if f.Labels.Header == "" {
		return Russian
	}
	return f.Labels
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

// Format renders at most maxItems items. It returns the no-news message when
// nothing is left to show.
func (f *Formatter) Format(items []model.NewsItem, maxItems int) string {
	l := f.labels()
	if maxItems < 0 {
		maxItems = 0
	}
	if len(items) > maxItems {
		items = items[:maxItems]
	}
	if len(items) == 0 {
		return l.NoNews
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, f.formatItem(l, it))
	}
	return ExpandVars(l.Header, f.now()) + "\n\n" + strings.Join(lines, "\n")
}

func (f *Formatter) formatItem(l Labels, it model.NewsItem) string {
	title := orDefault(it.Title, l.Untitled)
	url := orDefault(it.URL, "#")
	source := orDefault(it.Source, l.UnknownSource)

	glyph := ""
	if strings.Contains(source, "Reddit") && it.ContentType != "" {
		g, ok := contentGlyphs[it.ContentType]
		if !ok {
			g = defaultGlyph
		}
		glyph = g + " "
	}

	duration := ""
	if strings.Contains(source, "YouTube") && it.Duration > 0 {
		duration = " (" + formatDuration(l, it.Duration) + ")"
	}

	// Third-party text is escaped for Telegram HTML.
	return fmt.Sprintf("🔹 %s<a href='%s'>%s</a>%s\n%s: %s", glyph,
		html.EscapeString(url), html.EscapeString(title), duration, l.Source, html.EscapeString(source))
}

func formatDuration(l Labels, seconds int) string {
	m, s := seconds/60, seconds%60
	if m > 0 {
		return fmt.Sprintf("%d%s %d%s", m, l.Minutes, s, l.Seconds)
	}
	return fmt.Sprintf("%d%s", s, l.Seconds)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
