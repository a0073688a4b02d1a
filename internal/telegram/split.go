package telegram

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxMessageLength leaves headroom under Telegram's 4096 character limit
// for continuation labels.
const MaxMessageLength = 3800

// Continuation labels attached to the parts of a split message.
type Continuation struct {
	Note string // appended to every part but the last
	Part string // format with (index, total); prefixed to every part but the first
}

// Split breaks text into parts of at most maxLen characters on line
// boundaries. A single line longer than maxLen becomes its own oversized part.
func Split(text string, maxLen int) []string {
	var (
		parts   []string
		current strings.Builder
	)
	for _, line := range strings.Split(text, "\n") {
		if utf8.RuneCountInString(current.String())+utf8.RuneCountInString(line)+1 <= maxLen {
			current.WriteString(line)
			current.WriteByte('\n')
			continue
		}
		if current.Len() > 0 {
			parts = append(parts, strings.TrimSpace(current.String()))
		}
		current.Reset()
		current.WriteString(line)
		current.WriteByte('\n')
	}
	if current.Len() > 0 {
		parts = append(parts, strings.TrimSpace(current.String()))
	}
	return parts
}

// Label decorates split parts with continuation markers.
func (c Continuation) Label(parts []string) []string {
	out := make([]string, len(parts))
	n := len(parts)
	for i, p := range parts {
		switch {
		case i == 0:
			out[i] = p + "\n\n" + c.Note
		case i == n-1:
			out[i] = fmt.Sprintf(c.Part, i+1, n) + "\n\n" + p
		default:
			out[i] = fmt.Sprintf(c.Part, i+1, n) + "\n\n" + p + "\n\n" + c.Note
		}
	}
	return out
}
