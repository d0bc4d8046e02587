package ports

import "context"

// Language is a language the translation provider can target.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Translator talks to the external machine translation provider. Inputs
// are HTML. Translate returns one output per input, in order; an empty
// source lets the provider detect it.
type Translator interface {
	Translate(ctx context.Context, texts []string, source, target string) ([]string, error)
	Detect(ctx context.Context, text string) (string, error)
	Languages(ctx context.Context, target string) ([]Language, error)
}
