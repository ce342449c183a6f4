package doccorpus

import "context"

// TokenCounter counts tokens in text for a specific model. Used to
// report how much of a context window the assembled corpus consumes.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
