package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPermittedLanguage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want bool
	}{
		{"latin", "OpenAI releases GPT-5", true},
		{"cyrillic", "Новости ИИ", true},
		{"cjk", "人工智能新闻", false},
		{"emoji", "AI news 🚀", false},
		{"apostrophe", "OpenAI's new model", false},
		{"too short", "AI", false},
		{"exactly three letters", "abc", true},
		{"digits only", "2024 12", false},
		{"empty", "", false},
		{"mixed scripts", "Нейросеть neural", false},
		{"allowed punctuation", "Claude [beta] (v2): #1 @ 50% <fast> / \"ok\"", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPermittedLanguage(tc.text))
		})
	}
}
