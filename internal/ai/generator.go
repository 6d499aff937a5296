// Package ai wraps the upstream generative-language provider behind a small
// Generator capability so the chat service can be exercised with a stub.
package ai

import (
	"context"
	"errors"
)

// ErrUpstream wraps any failure of the external generative call: transport
// errors, non-2xx statuses and empty completions all surface as this.
var ErrUpstream = errors.New("upstream generation failed")

// Generator produces a text completion for a fully assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
