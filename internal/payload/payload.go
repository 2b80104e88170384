// Package payload builds the JSON body posted to the translate endpoint.
package payload

import "strings"

// DefaultSourceLang is used when no source language is selected.
const DefaultSourceLang = "en"

// Request is the body of POST /api/translate.
type Request struct {
	SourceLang  string   `json:"source_lang"`
	TargetLangs []string `json:"target_langs"`
	Text        string   `json:"text"`
}

// New builds a Request from raw form values. The source language falls back
// to DefaultSourceLang, target languages are parsed from a comma-separated
// list and the text is trimmed.
func New(sourceLang, targetLangs, text string) Request {
	return Request{
		SourceLang:  SourceLangOrDefault(sourceLang),
		TargetLangs: ParseTargetLangs(targetLangs),
		Text:        strings.TrimSpace(text),
	}
}

func SourceLangOrDefault(raw string) string {
	if lang := strings.TrimSpace(raw); lang != "" {
		return lang
	}
	return DefaultSourceLang
}

// ParseTargetLangs splits raw on commas, trims each segment and drops the
// blank ones. Order and duplicates are kept. The result is never nil.
func ParseTargetLangs(raw string) []string {
	langs := []string{}
	for _, part := range strings.Split(raw, ",") {
		if lang := strings.TrimSpace(part); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// CleanLangs trims every code in langs and drops the blank ones.
func CleanLangs(langs []string) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
