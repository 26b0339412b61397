package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "CineFind/1.0"
)

// Error is a failure envelope returned by the proxy.
// Error() is the human summary; Unwrap maps the code to a domain sentinel.
type Error struct {
	Status  int
	Code    string `json:"code"`
	Summary string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func (e *Error) Error() string {
	if e.Summary != "" {
		return e.Summary
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

func (e *Error) Unwrap() error {
	switch {
	case e.Code == "INVALID_REQUEST" || e.Status == http.StatusBadRequest:
		return domain.ErrInvalidRequest
	case e.Code == "UPSTREAM_NOT_FOUND":
		return domain.ErrUpstreamNotFound
	case e.Code == "ROUTE_NOT_FOUND":
		return domain.ErrRouteNotFound
	case e.Status == http.StatusNotFound:
		return domain.ErrUpstreamNotFound
	default:
		return domain.ErrUpstreamError
	}
}

// Client talks to cinefind-proxy and implements domain.MovieRepository
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new proxy client
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// doRequest performs a GET against the proxy and returns the body of a 200
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("proxy request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("proxy request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrUpstreamError, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil {
			c.logger.Warn("unreadable error envelope", "status", resp.StatusCode, "error", jsonErr)
		}
		apiErr.Status = resp.StatusCode
		c.logger.Debug("proxy error", "status", resp.StatusCode, "code", apiErr.Code, "error", apiErr.Summary)
		return nil, apiErr
	}

	return body, nil
}

func pageValues(page int) url.Values {
	v := url.Values{}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	return v
}

// SearchMovies returns one page of movies matching the query
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*domain.SearchPage, error) {
	v := pageValues(page)
	v.Set("q", query)
	return c.fetchPage(ctx, "/api/movies/search", v)
}

// GetPopularMovies returns one page of the popular listing
func (c *Client) GetPopularMovies(ctx context.Context, page int) (*domain.SearchPage, error) {
	return c.fetchPage(ctx, "/api/movies/popular", pageValues(page))
}

// GetMoviesByYear returns movies released in year
func (c *Client) GetMoviesByYear(ctx context.Context, year string, page int) (*domain.SearchPage, error) {
	return c.fetchPage(ctx, "/api/movies/year/"+url.PathEscape(year), pageValues(page))
}

// GetFilteredMovies returns the generic listing narrowed by year and type
func (c *Client) GetFilteredMovies(ctx context.Context, f domain.Filter) (*domain.SearchPage, error) {
	v := pageValues(f.Page)
	if f.Year != "" {
		v.Set("year", f.Year)
	}
	if f.Type != "" {
		v.Set("type", string(f.Type))
	}
	return c.fetchPage(ctx, "/api/movies/filtered", v)
}

// GetMovieDetail returns the full record for a movie
func (c *Client) GetMovieDetail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	body, err := c.doRequest(ctx, "/api/movie/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return omdb.DecodeDetail(body)
}

func (c *Client) fetchPage(ctx context.Context, path string, query url.Values) (*domain.SearchPage, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return omdb.DecodeSearchPage(body)
}

// Health is the proxy's /health answer
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Health checks that the proxy is reachable
func (c *Client) Health(ctx context.Context) (*Health, error) {
	body, err := c.doRequest(ctx, "/health", nil)
	if err != nil {
		return nil, err
	}
	var h Health
	if err := json.Unmarshal(body, &h); err != nil {
		return nil, fmt.Errorf("%w: failed to parse health response: %v", domain.ErrUpstreamError, err)
	}
	return &h, nil
}
