package engine

import (
	"errors"

	"github.com/stacieblesley-tech/dailyluck/internal/config"
)

// Sentinel errors surfaced to the presentation layer. Callers discriminate
// with errors.Is; everything else wraps one of these.
var (
	// ErrConfigMissing means no Gemini API key is available. Fetch attempts
	// fail fast on it before any network I/O.
	ErrConfigMissing = errors.New(config.ErrAPIKeyMissing)

	// ErrFetchFailed covers network and service-level failures.
	ErrFetchFailed = errors.New(config.ErrFetchFailed)

	// ErrMalformedResponse means the service answered but the payload did
	// not conform to the required structured shape.
	ErrMalformedResponse = errors.New(config.ErrMalformedResponse)

	// ErrNotRegistered rejects fetches for a profile that has not completed
	// onboarding.
	ErrNotRegistered = errors.New(config.ErrNotRegistered)
)
