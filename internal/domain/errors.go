package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidRequest indicates client input was missing or malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamNotFound indicates the movie API reported no data
	ErrUpstreamNotFound = errors.New("upstream reported no results")

	// ErrUpstreamError indicates a network, parse or unexpected upstream failure
	ErrUpstreamError = errors.New("upstream request failed")

	// ErrRouteNotFound indicates no handler matched the request
	ErrRouteNotFound = errors.New("route not found")
)
