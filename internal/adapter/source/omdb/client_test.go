package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/domain"
)

var _ domain.MovieRepository = (*Client)(nil)
var _ domain.FilteredRepository = (*Client)(nil)

const batmanPage = `{"Search":[
 {"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie","Poster":"https://img/bb.jpg"},
 {"Title":"Batman","Year":"1989","imdbID":"tt0096895","Type":"movie","Poster":"N/A"}
],"totalResults":"552","Response":"True"}`

const shawshankDetail = `{"Title":"The Shawshank Redemption","Year":"1994","Rated":"R","Released":"14 Oct 1994",
"Runtime":"142 min","Genre":"Drama","Director":"Frank Darabont","Actors":"Tim Robbins, Morgan Freeman, Bob Gunton",
"Plot":"Two imprisoned men bond.","Language":"English","Country":"United States","Awards":"N/A",
"Poster":"https://img/ss.jpg","Ratings":[{"Source":"Internet Movie Database","Value":"9.3/10"}],
"Metascore":"82","imdbRating":"9.3","imdbVotes":"2,900,000","imdbID":"tt0111161","Type":"movie","Response":"True"}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", "secret-key", adapter.NullLogger(), WithKeywordPicker(FixedPicker("dragon")))
}

func TestSearchMovies_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "secret-key", q.Get("apikey"))
		assert.Equal(t, "batman", q.Get("s"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "movie", q.Get("type"))
		_, _ = w.Write([]byte(batmanPage))
	})

	page, err := client.SearchMovies(context.Background(), "batman", 2)
	require.NoError(t, err)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, 552, page.TotalResults)
	assert.Equal(t, "tt0372784", page.Movies[0].ID)
	assert.Equal(t, "https://img/bb.jpg", page.Movies[0].PosterURL)
	assert.False(t, page.Movies[1].HasPoster(), "N/A poster maps to absent")
	assert.Equal(t, domain.MediaTypeMovie, page.Movies[1].Type)
}

func TestSearchMovies_EmptyQueryNeverCallsUpstream(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.SearchMovies(context.Background(), "   ", 1)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.False(t, called)
}

func TestFetch_ResponseFalse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	_, err := client.SearchMovies(context.Background(), "zzzz", 1)
	require.ErrorIs(t, err, domain.ErrUpstreamNotFound)
	assert.Equal(t, "Movie not found!", UpstreamMessage(err))
}

func TestFetch_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	})

	_, err := client.GetPopularMovies(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrUpstreamError)
	assert.Contains(t, err.Error(), "401")
}

func TestFetch_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.GetMovieDetail(context.Background(), "tt1")
	require.ErrorIs(t, err, domain.ErrUpstreamError)
}

func TestFetch_NetworkFailureRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url+"/", "secret-key", adapter.NullLogger())
	_, err := client.Fetch(context.Background(), SearchQuery("batman", 1))
	require.ErrorIs(t, err, domain.ErrUpstreamError)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestGetPopularMovies_UsesPicker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dragon", r.URL.Query().Get("s"))
		assert.Equal(t, "movie", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(batmanPage))
	})

	page, err := client.GetPopularMovies(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, page.Movies, 2)
}

func TestGetMoviesByYear(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "movie", q.Get("s"))
		assert.Equal(t, "1999", q.Get("y"))
		assert.Equal(t, "movie", q.Get("type"))
		_, _ = w.Write([]byte(batmanPage))
	})

	_, err := client.GetMoviesByYear(context.Background(), "1999", 1)
	require.NoError(t, err)
}

func TestGetFilteredMovies_OmitsEmptyFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "movie", q.Get("s"))
		assert.Equal(t, "series", q.Get("type"))
		assert.False(t, q.Has("y"))
		_, _ = w.Write([]byte(batmanPage))
	})

	_, err := client.GetFilteredMovies(context.Background(), domain.Filter{Type: domain.MediaTypeSeries, Page: 1})
	require.NoError(t, err)
}

func TestGetMovieDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "tt0111161", q.Get("i"))
		assert.Equal(t, "full", q.Get("plot"))
		_, _ = w.Write([]byte(shawshankDetail))
	})

	detail, err := client.GetMovieDetail(context.Background(), "tt0111161")
	require.NoError(t, err)
	assert.Equal(t, "The Shawshank Redemption", detail.Title)
	assert.Equal(t, 9.3, detail.Rating)
	assert.Equal(t, "9.3", detail.FormattedRating())
	assert.Equal(t, []string{"Drama"}, detail.Genres)
	assert.Equal(t, []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}, detail.Cast)
	assert.Empty(t, detail.Awards, "N/A maps to empty")
	require.Len(t, detail.Ratings, 1)
	assert.Equal(t, "Internet Movie Database", detail.Ratings[0].Source)
}

func TestRandomPicker_StaysInVocabulary(t *testing.T) {
	picker := NewRandomPicker()
	for i := 0; i < 50; i++ {
		assert.Contains(t, PopularKeywords, picker.Pick())
	}
}
