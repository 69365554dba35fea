package domain

import "errors"

// Session-token failures. All three are terminal for the request carrying the
// token; the client must re-authenticate.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
)
