// Package filter holds the pure matching, scoring and ranking rules applied to
// collected news items. Nothing in here performs I/O.
package filter

import "strings"

// Keywords configures topic matching and relevance tiers. Matching is
// case-insensitive substring containment throughout.
type Keywords struct {
	Topic   []string `mapstructure:"topic" yaml:"topic"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	High    []string `mapstructure:"high" yaml:"high"`
	Medium  []string `mapstructure:"medium" yaml:"medium"`
	Low     []string `mapstructure:"low" yaml:"low"`
}

// DefaultKeywords returns the built-in AI keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Topic: []string{
			"AI news", "artificial intelligence", "ChatGPT", "OpenAI", "Claude",
			"Anthropic", "Gemini AI", "DeepMind", "Sora", "Stable Diffusion",
			"Midjourney", "Runway AI", "text-to-video", "text-to-image", "LLM", "AI",
			"Google", "Microsoft", "Meta", "NVIDIA", "Adobe", "Stability AI",
			"Runway", "Jasper AI",
		},
		Exclude: []string{
			"paper", "research paper", "dataset", "loss function", "training method",
			"backpropagation", "gradient descent", "model weights", "benchmark", "arxiv.org",
		},
		High:   []string{"chatgpt", "openai", "claude", "gemini", "sora", "gpt-4", "gpt-5"},
		Medium: []string{"ai", "artificial intelligence", "stable diffusion", "midjourney"},
		Low:    []string{"machine learning", "deep learning", "neural network"},
	}
}

// Filter applies a fixed Keywords configuration. It is safe for concurrent use.
type Filter struct {
	topic      []string // original spelling, reported by ExtractKeywords
	topicLower []string
	exclude    []string
	high       []string
	medium     []string
	low        []string
}

// New builds a Filter. Topic keywords repeated in the configuration are kept
// once (first spelling wins); empty entries are ignored.
func New(k Keywords) *Filter {
	f := &Filter{
		exclude: lowerAll(k.Exclude),
		high:    lowerAll(k.High),
		medium:  lowerAll(k.Medium),
		low:     lowerAll(k.Low),
	}
	seen := make(map[string]struct{}, len(k.Topic))
	for _, kw := range k.Topic {
		l := strings.ToLower(strings.TrimSpace(kw))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		f.topic = append(f.topic, strings.TrimSpace(kw))
		f.topicLower = append(f.topicLower, l)
	}
	return f
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
