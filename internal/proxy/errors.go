package proxy

import (
	"errors"
	"net/http"

	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/domain"
)

// Machine-readable error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUpstreamNotFound = "UPSTREAM_NOT_FOUND"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeInternal         = "INTERNAL_ERROR"
)

// ValidationError is a client input problem. It matches domain.ErrInvalidRequest.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidRequest }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrorBody is the JSON envelope returned for every failure
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Error is a failure mapped to an HTTP status
type Error struct {
	Status int
	Body   ErrorBody
}

// operation names the user-facing summaries for one route
type operation struct {
	name     string
	notFound string
	failed   string
}

var (
	opSearch   = operation{name: "search", notFound: "No movies found", failed: "Search failed"}
	opDetail   = operation{name: "detail", notFound: "Movie not found", failed: "Failed to fetch movie details"}
	opPopular  = operation{name: "popular", notFound: "No popular movies found", failed: "Failed to fetch popular movies"}
	opYear     = operation{name: "year", notFound: "No movies found for this year", failed: "Failed to fetch movies by year"}
	opFiltered = operation{name: "filtered", notFound: "No movies found with these filters", failed: "Failed to apply filters"}
)

// classify maps a service error onto the error taxonomy
func classify(err error, op operation) *Error {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		return &Error{
			Status: http.StatusBadRequest,
			Body:   ErrorBody{Error: vErr.Message, Code: CodeInvalidRequest},
		}
	case errors.Is(err, domain.ErrInvalidRequest):
		return &Error{
			Status: http.StatusBadRequest,
			Body:   ErrorBody{Error: err.Error(), Code: CodeInvalidRequest},
		}
	case errors.Is(err, domain.ErrUpstreamNotFound):
		return &Error{
			Status: http.StatusNotFound,
			Body:   ErrorBody{Error: op.notFound, Code: CodeUpstreamNotFound, Message: omdb.UpstreamMessage(err)},
		}
	default:
		return &Error{
			Status: http.StatusInternalServerError,
			Body:   ErrorBody{Error: op.failed, Code: CodeUpstreamError, Details: err.Error()},
		}
	}
}

func routeNotFound() *Error {
	return &Error{
		Status: http.StatusNotFound,
		Body:   ErrorBody{Error: "Route not found", Code: CodeRouteNotFound},
	}
}
