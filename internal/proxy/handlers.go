package proxy

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mmcdole/cinefind/internal/domain"
)

// isoMillis matches the timestamp layout browsers produce with toISOString
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Handler serves the HTTP surface of the proxy
type Handler struct {
	svc         *Service
	serviceName string
	logger      *slog.Logger
	now         func() time.Time
}

// NewHandler creates the HTTP handlers for svc
func NewHandler(svc *Service, serviceName string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:         svc,
		serviceName: serviceName,
		logger:      logger,
		now:         time.Now,
	}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Health reports liveness. It never contacts upstream.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(isoMillis),
		Service:   h.serviceName,
	})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		h.fail(w, r, err, opSearch)
		return
	}
	h.forward(w, r, opSearch, func(ctx context.Context) ([]byte, error) {
		return h.svc.SearchMovies(ctx, r.URL.Query().Get("q"), page)
	})
}

func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	h.forward(w, r, opDetail, func(ctx context.Context) ([]byte, error) {
		return h.svc.GetMovieDetail(ctx, id)
	})
}

func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		h.fail(w, r, err, opPopular)
		return
	}
	h.forward(w, r, opPopular, func(ctx context.Context) ([]byte, error) {
		return h.svc.GetPopularMovies(ctx, page)
	})
}

func (h *Handler) ByYear(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		h.fail(w, r, err, opYear)
		return
	}
	year := mux.Vars(r)["year"]
	h.forward(w, r, opYear, func(ctx context.Context) ([]byte, error) {
		return h.svc.GetMoviesByYear(ctx, year, page)
	})
}

func (h *Handler) Filtered(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		h.fail(w, r, err, opFiltered)
		return
	}
	q := r.URL.Query()
	filter := domain.Filter{
		Year: q.Get("year"),
		Type: domain.MediaType(q.Get("type")),
		Page: page,
	}
	h.forward(w, r, opFiltered, func(ctx context.Context) ([]byte, error) {
		return h.svc.GetFilteredMovies(ctx, filter)
	})
}

// NotFound answers any unmatched route
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	e := routeNotFound()
	writeJSON(w, e.Status, e.Body)
}

// forward runs call and relays its payload unmodified
func (h *Handler) forward(w http.ResponseWriter, r *http.Request, op operation, call func(context.Context) ([]byte, error)) {
	body, err := call(r.Context())
	if err != nil {
		h.fail(w, r, err, op)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write response", "op", op.name, "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, op operation) {
	e := classify(err, op)
	if e.Status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "op", op.name, "path", r.URL.Path, "error", err)
	} else {
		h.logger.Debug("request rejected", "op", op.name, "path", r.URL.Path, "code", e.Body.Code)
	}
	writeJSON(w, e.Status, e.Body)
}

// pageParam reads ?page=, defaulting to 1
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, invalid("Page must be a positive integer")
	}
	return page, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
