package digest

import "strings"

// Labels holds every user-visible string the digest and service messages use.
type Labels struct {
	Header        string // may contain {.CurrentDate}
	NoNews        string
	Source        string
	Untitled      string
	UnknownSource string
	Minutes       string
	Seconds       string

	SummaryTitle  string
	FoundLabel    string
	SourcesLabel  string
	ErrorsLabel   string
	ErrorTitle    string
	TestMessage   string
	ContinuesNote string
	PartLabel     string // fmt verb pair: part index, total
}

// Russian is the default label set.
var Russian = Labels{
	Header:        "📰 <b>AI News Digest — {.CurrentDate}</b>",
	NoNews:        "📰 <b>AI News Digest</b>\n\nНовостей не найдено за последние 24 часа.",
	Source:        "Источник",
	Untitled:      "Без заголовка",
	UnknownSource: "Неизвестный источник",
	Minutes:       "м",
	Seconds:       "с",
	SummaryTitle:  "📊 <b>Сводка работы AI News Aggregator</b>",
	FoundLabel:    "📰 Найдено новостей",
	SourcesLabel:  "🔍 Источники",
	ErrorsLabel:   "⚠️ Ошибки",
	ErrorTitle:    "❌ <b>Ошибка в AI News Aggregator</b>",
	TestMessage:   "🤖 <b>AI News Aggregator</b>\n\nБот успешно запущен и готов к работе!",
	ContinuesNote: "<i>Продолжение следует...</i>",
	PartLabel:     "<i>Продолжение (%d/%d)</i>",
}

var English = Labels{
	Header:        "📰 <b>AI News Digest — {.CurrentDate}</b>",
	NoNews:        "📰 <b>AI News Digest</b>\n\nNo news found in the last 24 hours.",
	Source:        "Source",
	Untitled:      "Untitled",
	UnknownSource: "Unknown source",
	Minutes:       "m",
	Seconds:       "s",
	SummaryTitle:  "📊 <b>AI News Aggregator run summary</b>",
	FoundLabel:    "📰 News found",
	SourcesLabel:  "🔍 Sources",
	ErrorsLabel:   "⚠️ Errors",
	ErrorTitle:    "❌ <b>AI News Aggregator error</b>",
	TestMessage:   "🤖 <b>AI News Aggregator</b>\n\nThe bot is up and ready!",
	ContinuesNote: "<i>To be continued...</i>",
	PartLabel:     "<i>Continued (%d/%d)</i>",
}

// LabelsFor picks a label set by language code; anything but "en" is Russian.
func LabelsFor(lang string) Labels {
	if strings.EqualFold(strings.TrimSpace(lang), "en") {
		return English
	}
	return Russian
}
