package grant

import "errors"

var (
	ErrEmptyField     = errors.New("empty field")
	ErrSigningFailed  = errors.New("unable sign access token")
	ErrInvalidToken   = errors.New("invalid access token")
	ErrMalformedGrant = errors.New("malformed video grant")
)
