package ports

import "context"

// TextGenerator produces a free-text reply from an external generative model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
