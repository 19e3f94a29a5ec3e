package syncer

import (
	"errors"
	"fmt"
)

// Fatal error kinds. Each aborts the remaining steps and surfaces as a
// single message with exit code 1. Advisory outcomes (verification,
// diff) are reported as warnings and never produce an error.
var (
	ErrInvalidRequest    = errors.New("invalid sync request")
	ErrDependencyMissing = errors.New("dependency check failed")
	ErrNotARepository    = errors.New("not inside a git repository")
	ErrAuth              = errors.New("GitHub authentication failed")
	ErrBackup            = errors.New("backup failed")
	ErrDownload          = errors.New("download failed")
)

// ErrEmptyDownload marks a 2xx response with a zero-byte body. It wraps
// ErrDownload so callers can treat both kinds uniformly.
var ErrEmptyDownload = fmt.Errorf("%w: empty response body", ErrDownload)
