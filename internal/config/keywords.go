package config

import (
	"fmt"
	"os"

	"github.com/Krijovnick/ai-news/internal/filter"

	"gopkg.in/yaml.v3"
)

// keywordsFile is the YAML layout of keywords_file:
//
//	topic: [ChatGPT, OpenAI]
//	exclude: [dataset]
//	high: [chatgpt]
type keywordsFile struct {
	filter.Keywords `yaml:",inline"`
}

// LoadKeywords reads a keywords file and overlays its non-empty lists on c.Keywords.
func (c *Config) LoadKeywords(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("keywords file: %w", err)
	}
	defer f.Close()

	var kf keywordsFile
	if err := yaml.NewDecoder(f).Decode(&kf); err != nil {
		return fmt.Errorf("keywords file %s: %w", path, err)
	}
	c.Keywords = mergeKeywords(c.Keywords, kf.Keywords)
	return nil
}
