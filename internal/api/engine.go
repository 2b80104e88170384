package api

import (
	"context"
	"fmt"
)

// Engine translates text into every requested target language and returns
// the results keyed by language code.
type Engine interface {
	Translate(ctx context.Context, text, sourceLang string, targetLangs []string) (map[string]string, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, text, sourceLang string, targetLangs []string) (map[string]string, error)

func (f EngineFunc) Translate(ctx context.Context, text, sourceLang string, targetLangs []string) (map[string]string, error) {
	return f(ctx, text, sourceLang, targetLangs)
}

// Placeholder is the engine used when no real translator is configured. It
// echoes the beginning of the text for every target language.
type Placeholder struct{}

func (Placeholder) Translate(_ context.Context, text, _ string, targetLangs []string) (map[string]string, error) {
	snippet := []rune(text)
	if len(snippet) > 20 {
		snippet = snippet[:20]
	}

	out := make(map[string]string, len(targetLangs))
	for _, lang := range targetLangs {
		out[lang] = fmt.Sprintf("[translate not wired: %s...]", string(snippet))
	}
	return out, nil
}
