package catalog

import "errors"

var (
	ErrTruncatedHeader = errors.New("catalog: truncated snapshot header")
	ErrTruncatedEntry  = errors.New("catalog: truncated snapshot entry")
	ErrBadMagic        = errors.New("catalog: not a catalog snapshot")
	ErrDigestMismatch  = errors.New("catalog: registry digest does not match snapshot")
	ErrMissingType     = errors.New("catalog: snapshot fingerprint not present in registry")
)
