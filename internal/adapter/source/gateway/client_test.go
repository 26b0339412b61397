package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/domain"
)

var (
	_ domain.MovieRepository    = (*Client)(nil)
	_ domain.FilteredRepository = (*Client)(nil)
)

const batmanPage = `{"Search":[
	{"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie","Poster":"https://img/bb.jpg"},
	{"Title":"Batman","Year":"1989","imdbID":"tt0096895","Type":"movie","Poster":"N/A"}
],"totalResults":"2","Response":"True"}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, adapter.NullLogger())
}

func TestClient_SearchMovies(t *testing.T) {
	var gotPath, gotQuery, gotPage string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(batmanPage))
	})

	page, err := c.SearchMovies(context.Background(), "batman", 2)
	require.NoError(t, err)

	assert.Equal(t, "/api/movies/search", gotPath)
	assert.Equal(t, "batman", gotQuery)
	assert.Equal(t, "2", gotPage)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, "tt0372784", page.Movies[0].ID)
	assert.False(t, page.Movies[1].HasPoster())
	assert.Equal(t, 2, page.TotalResults)
}

func TestClient_Paths(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.RequestURI())
		_, _ = w.Write([]byte(batmanPage))
	})
	ctx := context.Background()

	_, err := c.GetPopularMovies(ctx, 1)
	require.NoError(t, err)
	_, err = c.GetMoviesByYear(ctx, "1994", 3)
	require.NoError(t, err)
	_, err = c.GetFilteredMovies(ctx, domain.Filter{Year: "2008", Type: domain.MediaTypeSeries, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/movies/popular?page=1",
		"/api/movies/year/1994?page=3",
		"/api/movies/filtered?page=1&type=series&year=2008",
	}, got)
}

func TestClient_GetMovieDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movie/tt0111161", r.URL.Path)
		_, _ = w.Write([]byte(`{"Title":"The Shawshank Redemption","Year":"1994","imdbID":"tt0111161",
			"Type":"movie","Runtime":"142 min","Genre":"Drama","Director":"Frank Darabont",
			"Actors":"Tim Robbins, Morgan Freeman","Plot":"Two imprisoned men bond.","imdbRating":"9.3",
			"Poster":"N/A","Response":"True"}`))
	})

	d, err := c.GetMovieDetail(context.Background(), "tt0111161")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", d.Title)
	assert.Equal(t, "142 min", d.Runtime)
	assert.Equal(t, []string{"Drama"}, d.Genres)
	assert.Equal(t, "9.3", d.FormattedRating())
}

func TestClient_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		message  string
	}{
		{"not found", 404, `{"error":"No movies found","code":"UPSTREAM_NOT_FOUND","message":"Movie not found!"}`, domain.ErrUpstreamNotFound, "No movies found"},
		{"invalid", 400, `{"error":"Search query is required","code":"INVALID_REQUEST"}`, domain.ErrInvalidRequest, "Search query is required"},
		{"upstream", 500, `{"error":"Search failed","code":"UPSTREAM_ERROR","details":"timeout"}`, domain.ErrUpstreamError, "Search failed"},
		{"route", 404, `{"error":"Route not found","code":"ROUTE_NOT_FOUND"}`, domain.ErrRouteNotFound, "Route not found"},
		{"garbage", 502, `<html>bad gateway</html>`, domain.ErrUpstreamError, "request failed with status code 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.SearchMovies(context.Background(), "x", 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.message, err.Error())

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestClient_ProxyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second, adapter.NullLogger())
	_, err := c.GetPopularMovies(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUpstreamError)
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","timestamp":"2024-03-01T12:30:00.000Z","service":"Movie Discovery API (OMDb)"}`))
	})

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", h.Status)
	assert.Equal(t, "Movie Discovery API (OMDb)", h.Service)
}

func TestClient_HealthUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(srv.URL, time.Second, adapter.NullLogger())
	_, err := c.Health(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamError)
}
