package proxy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/proxy/mocks"
)

type routerFixture struct {
	handler  *Handler
	router   http.Handler
	upstream *mocks.MockUpstream
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockUpstream(ctrl)
	logger := adapter.NullLogger()

	svc := NewService(upstream, omdb.FixedPicker("hero"), logger)
	h := NewHandler(svc, "Movie Discovery API (OMDb)", logger)
	return &routerFixture{
		handler:  h,
		router:   NewRouter(h, logger),
		upstream: upstream,
	}
}

func (f *routerFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_SearchRelaysPayload(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().
		Fetch(gomock.Any(), omdb.Query{Search: "batman", Page: 1, Type: domain.MediaTypeMovie}).
		Return([]byte(batmanPayload), nil)

	rec := f.get(t, "/api/movies/search?q=batman")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, batmanPayload, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_SearchMissingQuery(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get(t, "/api/movies/search")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Search query is required", body.Error)
	assert.Equal(t, CodeInvalidRequest, body.Code)
}

func TestRouter_InvalidPage(t *testing.T) {
	f := newRouterFixture(t)

	for _, target := range []string{
		"/api/movies/search?q=batman&page=abc",
		"/api/movies/popular?page=0",
		"/api/movies/year/1999?page=-1",
	} {
		rec := f.get(t, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, CodeInvalidRequest, decodeError(t, rec).Code, target)
	}
}

func TestRouter_SearchNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, &omdb.APIError{Message: "Movie not found!"})

	rec := f.get(t, "/api/movies/search?q=zzzzqqq")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "No movies found", body.Error)
	assert.Equal(t, CodeUpstreamNotFound, body.Code)
	assert.Equal(t, "Movie not found!", body.Message)
}

func TestRouter_UpstreamFailure(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: request failed with status code 401", domain.ErrUpstreamError))

	rec := f.get(t, "/api/movies/search?q=batman")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Search failed", body.Error)
	assert.Equal(t, CodeUpstreamError, body.Code)
	assert.Contains(t, body.Details, "401")
}

func TestRouter_Detail(t *testing.T) {
	f := newRouterFixture(t)
	payload := `{"Title":"The Shawshank Redemption","imdbID":"tt0111161","Response":"True"}`
	f.upstream.EXPECT().
		Fetch(gomock.Any(), omdb.Query{ID: "tt0111161", Plot: "full"}).
		Return([]byte(payload), nil)

	rec := f.get(t, "/api/movie/tt0111161")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, payload, rec.Body.String())
}

func TestRouter_DetailNotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(nil, &omdb.APIError{Message: "Incorrect IMDb ID."})

	rec := f.get(t, "/api/movie/tt0000000")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Movie not found", body.Error)
	assert.Equal(t, "Incorrect IMDb ID.", body.Message)
}

func TestRouter_Popular(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().
		Fetch(gomock.Any(), omdb.Query{Search: "hero", Page: 2, Type: domain.MediaTypeMovie}).
		Return([]byte(batmanPayload), nil)

	rec := f.get(t, "/api/movies/popular?page=2")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ByYear(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().
		Fetch(gomock.Any(), omdb.Query{Search: "movie", Year: "1994", Page: 1, Type: domain.MediaTypeMovie}).
		Return([]byte(batmanPayload), nil)

	rec := f.get(t, "/api/movies/year/1994")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.get(t, "/api/movies/year/nineteen")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Filtered(t *testing.T) {
	f := newRouterFixture(t)
	f.upstream.EXPECT().
		Fetch(gomock.Any(), omdb.Query{Search: "movie", Year: "2008", Type: domain.MediaTypeSeries, Page: 1}).
		Return([]byte(batmanPayload), nil)

	rec := f.get(t, "/api/movies/filtered?year=2008&type=series")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.get(t, "/api/movies/filtered?type=podcast")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)
	f.handler.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	}

	rec := f.get(t, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "2024-03-01T12:30:00.000Z", body.Timestamp)
	assert.Equal(t, "Movie Discovery API (OMDb)", body.Service)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.get(t, "/api/unknown")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	body := decodeError(t, rec)
	assert.Equal(t, "Route not found", body.Error)
	assert.Equal(t, CodeRouteNotFound, body.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/movies/search?q=x", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeRouteNotFound, decodeError(t, rec).Code)
}

func TestRouter_Preflight(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/movies/search", nil)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
}

func TestRouter_RequestIDPropagated(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouter_Metrics(t *testing.T) {
	f := newRouterFixture(t)
	f.get(t, "/health")

	rec := f.get(t, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cinefind_proxy_requests_total")
}

func TestRecovery(t *testing.T) {
	h := Recovery(adapter.NullLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, CodeInternal, decodeError(t, rec).Code)
}
