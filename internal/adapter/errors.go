package adapter

import "errors"

// Sentinel errors mapped from raindrop.io responses.
var (
	// ErrBadRequest indicates the server rejected the request payload.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates a missing, expired, or revoked API token.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden indicates the token lacks access to the resource.
	ErrForbidden = errors.New("access forbidden")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrTooManyRequests indicates the raindrop.io rate limit was hit.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrInternalServerError indicates a 5xx response from the server.
	ErrInternalServerError = errors.New("internal server error")
	// ErrRequestFailed indicates a 2xx response whose body carried
	// "result": false.
	ErrRequestFailed = errors.New("server reported failure")
	// ErrLocalCollection indicates a collection that exists only in the
	// local cache (untagged, broken) and cannot be requested from the
	// server.
	ErrLocalCollection = errors.New("local-only collection")
)
