package proxy

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the proxy routes. CORS, request ids, recovery and
// request logging wrap the whole router so unmatched routes get them too.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(Metrics)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/movies/search", h.Search).Methods(http.MethodGet)
	api.HandleFunc("/movies/popular", h.Popular).Methods(http.MethodGet)
	api.HandleFunc("/movies/filtered", h.Filtered).Methods(http.MethodGet)
	api.HandleFunc("/movies/year/{year}", h.ByYear).Methods(http.MethodGet)
	api.HandleFunc("/movie/{id}", h.Detail).Methods(http.MethodGet)

	notFound := Metrics(http.HandlerFunc(h.NotFound))
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	var handler http.Handler = r
	handler = Logging(logger)(handler)
	handler = Recovery(logger)(handler)
	handler = CORS(handler)
	handler = RequestID(handler)
	return handler
}
