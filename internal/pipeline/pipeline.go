// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline fetches a target URL through an ordered list of
// passthrough intermediaries, returning the first structurally valid
// response body.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-reader/internal/httputil"
	"github.com/pdiddy/arxiv-reader/pkg/types"
)

// ErrExhausted reports that every intermediary was tried without a valid
// response. Callers pair it with fallback data; it is never fatal.
var ErrExhausted = errors.New("all intermediaries exhausted")

// Attempt records the outcome of one intermediary attempt, for diagnostics.
type Attempt struct {
	Intermediary string
	Err          error
}

// Result holds a valid raw payload and which intermediary served it.
type Result struct {
	Body         []byte
	Intermediary string
}

// ExhaustedError carries per-attempt diagnostics when the whole list
// fails. It unwraps to ErrExhausted so callers can match with errors.Is.
type ExhaustedError struct {
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	msgs := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		msgs[i] = fmt.Sprintf("%s: %v", a.Intermediary, a.Err)
	}
	return fmt.Sprintf("all intermediaries exhausted (%d attempts): %s",
		len(e.Attempts), strings.Join(msgs, "; "))
}

func (e *ExhaustedError) Unwrap() error { return ErrExhausted }

// Fetcher issues one request attempt and returns the body. Injected so
// pipeline tests need no real transport; production wiring uses
// httputil.Get via New.
type Fetcher func(ctx context.Context, url string) ([]byte, error)

// Pipeline tries intermediaries strictly in order, one request each, and
// stops at the first body that passes Validate. It never substitutes
// fallback data; that decision belongs to the caller.
type Pipeline struct {
	// Intermediaries is the ordered endpoint list. Must be non-empty.
	Intermediaries []types.Intermediary

	// Fetch issues one attempt.
	Fetch Fetcher

	// Validate rejects bodies that are structurally invalid or carry an
	// embedded API error. A nil Validate accepts any non-empty body.
	Validate func(body []byte) error

	// Logger receives per-attempt diagnostics.
	Logger zerolog.Logger
}

// Run fetches target through the intermediaries in order. The first
// attempt that yields a valid body wins; later intermediaries are not
// contacted. Network errors, non-success statuses, empty bodies, and
// validation failures all count as that attempt's failure and advance to
// the next intermediary. When the list is exhausted Run returns an
// *ExhaustedError wrapping ErrExhausted.
func (p *Pipeline) Run(ctx context.Context, target string) (*Result, error) {
	if len(p.Intermediaries) == 0 {
		return nil, errors.New("no intermediaries configured")
	}

	attempts := make([]Attempt, 0, len(p.Intermediaries))
	for _, im := range p.Intermediaries {
		p.Logger.Debug().Str("intermediary", im.Name).Str("target", target).Msg("attempt")

		body, err := p.attempt(ctx, im, target)
		if err != nil {
			p.Logger.Warn().Str("intermediary", im.Name).Err(err).Msg("attempt failed")
			attempts = append(attempts, Attempt{Intermediary: im.Name, Err: err})
			continue
		}

		p.Logger.Debug().Str("intermediary", im.Name).Int("bytes", len(body)).Msg("attempt succeeded")
		return &Result{Body: body, Intermediary: im.Name}, nil
	}

	err := &ExhaustedError{Attempts: attempts}
	p.Logger.Error().Int("attempts", len(attempts)).Msg("all intermediaries exhausted")
	return nil, err
}

func (p *Pipeline) attempt(ctx context.Context, im types.Intermediary, target string) ([]byte, error) {
	endpoint, err := Expand(im.Template, target)
	if err != nil {
		return nil, err
	}

	body, err := p.Fetch(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if p.Validate != nil {
		if err := p.Validate(body); err != nil {
			return nil, err
		}
	} else if len(body) == 0 {
		return nil, errors.New("empty body")
	}

	return body, nil
}

// Expand substitutes the target URL into an intermediary template: {url}
// takes the query-escaped target, {raw} takes it verbatim. A template
// with neither placeholder is an error.
func Expand(template, target string) (string, error) {
	switch {
	case strings.Contains(template, "{url}"):
		return strings.ReplaceAll(template, "{url}", url.QueryEscape(target)), nil
	case strings.Contains(template, "{raw}"):
		return strings.ReplaceAll(template, "{raw}", target), nil
	default:
		return "", fmt.Errorf("intermediary template %q has no {url} or {raw} placeholder", template)
	}
}

// New builds a Pipeline over an HTTP client using the shared one-shot GET
// helper and the given validator.
func New(client *http.Client, cfg types.FetchConfig, validate func([]byte) error, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Intermediaries: cfg.Intermediaries,
		Fetch: func(ctx context.Context, u string) ([]byte, error) {
			return httputil.Get(ctx, client, u, cfg.UserAgent, cfg.Timeout)
		},
		Validate: validate,
		Logger:   logger,
	}
}
