package digest

import (
	"bytes"
	_ "embed"
	"html"
	"strings"
	"text/template"
)

// maxSummaryErrors caps the error lines listed in a run summary.
const maxSummaryErrors = 3

// RunSummary describes one completed aggregation run.
type RunSummary struct {
	Found    int
	Sources  []string
	Errors   []string
	Overview string // optional free text, e.g. an AI-written recap
}

type summaryData struct {
	Labels
	RunSummary
	Shown []string
}

//go:embed summary.tmpl
var summaryTpl string

var compiled = template.Must(template.New("summary").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(summaryTpl))

// Summary renders the post-run report.
func (f *Formatter) Summary(s RunSummary) (string, error) {
	shown := s.Errors
	if len(shown) > maxSummaryErrors {
		shown = shown[:maxSummaryErrors]
	}
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, summaryData{Labels: f.labels(), RunSummary: s, Shown: shown}); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// ErrorMessage wraps a run failure for delivery.
func (f *Formatter) ErrorMessage(msg string) string {
	return f.labels().ErrorTitle + "\n\n" + html.EscapeString(msg)
}

// TestMessage is sent to verify the delivery channel.
func (f *Formatter) TestMessage() string {
	return f.labels().TestMessage
}

// NoNews is the message delivered when a run finds nothing.
func (f *Formatter) NoNews() string {
	return f.labels().NoNews
}
