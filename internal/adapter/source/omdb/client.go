package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/cinefind/internal/domain"
)

const (
	DefaultBaseURL = "http://www.omdbapi.com/"
	defaultTimeout = 10 * time.Second
	userAgent      = "CineFind/1.0"
)

// APIError is a `Response: "False"` answer. It matches domain.ErrUpstreamNotFound.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return domain.ErrUpstreamNotFound.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return domain.ErrUpstreamNotFound
}

// Query describes a single upstream request
type Query struct {
	Search string           // s=
	ID     string           // i=
	Page   int              // page=
	Year   string           // y=
	Type   domain.MediaType // type=
	Plot   string           // plot= ("short" or "full")
}

// values encodes the query without the API key
func (q Query) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("s", q.Search)
	}
	if q.ID != "" {
		v.Set("i", q.ID)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Year != "" {
		v.Set("y", q.Year)
	}
	if q.Type != "" {
		v.Set("type", string(q.Type))
	}
	if q.Plot != "" {
		v.Set("plot", q.Plot)
	}
	return v
}

// Client talks to the OMDb API. It implements domain.MovieRepository.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	picker     KeywordPicker
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithKeywordPicker replaces the popular keyword picker
func WithKeywordPicker(p KeywordPicker) Option {
	return func(c *Client) { c.picker = p }
}

// NewClient creates a new OMDb API client
func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		picker: NewRandomPicker(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs one upstream request and returns the raw JSON body.
// A `Response: "False"` body yields *APIError; transport, status and
// decode failures wrap domain.ErrUpstreamError.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	values := q.values()
	c.logger.Debug("omdb request", "query", values.Encode())

	values.Set("apikey", c.apiKey)
	reqURL := c.baseURL
	if strings.Contains(reqURL, "?") {
		reqURL += "&" + values.Encode()
	} else {
		reqURL += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrUpstreamError, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", "error", redact(err.Error(), c.apiKey))
		return nil, fmt.Errorf("%w: %s", domain.ErrUpstreamError, redact(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUpstreamError, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: request failed with status code %d", domain.ErrUpstreamError, resp.StatusCode)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrUpstreamError, err)
	}
	if !env.OK() {
		return nil, &APIError{Message: env.Error}
	}

	return body, nil
}

// SearchQuery builds the query for a title search restricted to movies
func SearchQuery(query string, page int) Query {
	return Query{Search: query, Page: page, Type: domain.MediaTypeMovie}
}

// DetailQuery builds the query for a full-plot lookup
func DetailQuery(id string) Query {
	return Query{ID: id, Plot: "full"}
}

// YearQuery builds the query for movies released in a year
func YearQuery(year string, page int) Query {
	return Query{Search: "movie", Year: year, Page: page, Type: domain.MediaTypeMovie}
}

// FilterQuery builds the generic filtered listing query
func FilterQuery(f domain.Filter) Query {
	return Query{Search: "movie", Year: f.Year, Type: f.Type, Page: f.Page}
}

// PopularQuery builds the query for a popular listing from a picked keyword
func (c *Client) PopularQuery(page int) Query {
	return Query{Search: c.picker.Pick(), Page: page, Type: domain.MediaTypeMovie}
}

// SearchMovies returns one page of movies matching the query
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*domain.SearchPage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidRequest)
	}
	return c.fetchPage(ctx, SearchQuery(query, page))
}

// GetPopularMovies searches a picked keyword
func (c *Client) GetPopularMovies(ctx context.Context, page int) (*domain.SearchPage, error) {
	return c.fetchPage(ctx, c.PopularQuery(page))
}

// GetMoviesByYear returns movies released in the given year
func (c *Client) GetMoviesByYear(ctx context.Context, year string, page int) (*domain.SearchPage, error) {
	return c.fetchPage(ctx, YearQuery(year, page))
}

// GetFilteredMovies returns the generic listing narrowed by year and type
func (c *Client) GetFilteredMovies(ctx context.Context, f domain.Filter) (*domain.SearchPage, error) {
	return c.fetchPage(ctx, FilterQuery(f))
}

// GetMovieDetail returns the full record for a movie
func (c *Client) GetMovieDetail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: movie id is required", domain.ErrInvalidRequest)
	}
	body, err := c.Fetch(ctx, DetailQuery(id))
	if err != nil {
		return nil, err
	}
	return DecodeDetail(body)
}

func (c *Client) fetchPage(ctx context.Context, q Query) (*domain.SearchPage, error) {
	body, err := c.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return DecodeSearchPage(body)
}

// DecodeSearchPage parses a search payload into a domain page
func DecodeSearchPage(body []byte) (*domain.SearchPage, error) {
	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse search results: %v", domain.ErrUpstreamError, err)
	}
	if resp.Response == "False" {
		return nil, &APIError{Message: resp.Error}
	}
	return MapSearchPage(&resp), nil
}

// DecodeDetail parses a lookup payload into a domain detail record
func DecodeDetail(body []byte) (*domain.MovieDetail, error) {
	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse movie details: %v", domain.ErrUpstreamError, err)
	}
	if resp.Response == "False" {
		return nil, &APIError{Message: resp.Error}
	}
	return MapDetail(&resp), nil
}

// UpstreamMessage extracts the upstream message from an *APIError, if any
func UpstreamMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// redact removes the API key from error text (url.Error includes the URL)
func redact(s, key string) string {
	if key == "" {
		return s
	}
	return strings.ReplaceAll(s, key, "***")
}
