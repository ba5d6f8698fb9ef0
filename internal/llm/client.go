package llm

import (
	"context"
	"errors"
)

// ErrNoCandidates is returned when the upstream API answered but produced no
// usable output. Callers treat it as a fatal upstream failure, distinct from
// the judge returning text that merely fails to parse.
var ErrNoCandidates = errors.New("no response candidates or content")

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
