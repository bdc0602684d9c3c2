// Package httpapi is the HTTP face of the forum: it buffers request bodies,
// hands (method, path, body) to the dispatcher and writes the result.
package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/mdobak/go-xerrors"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/forum/internal/forum"
	"github.com/SergeyParamoshkin/forum/internal/route"
	"github.com/SergeyParamoshkin/forum/internal/store"
	"github.com/SergeyParamoshkin/forum/internal/telemetry"
)

const maxBodyBytes = 1 << 20

// Saver persists the store after a successful write.
type Saver interface {
	Save(s *store.Store) error
}

type Config struct {
	Dispatcher *forum.Dispatcher
	Store      *store.Store
	// Saver may be nil, which disables persistence.
	Saver   Saver
	Metrics *telemetry.Metrics
	Logger  *zap.SugaredLogger
}

// API adapts the dispatcher to net/http.
type API struct {
	dispatcher *forum.Dispatcher
	store      *store.Store
	saver      Saver
	metrics    *telemetry.Metrics
	known      map[string]bool
}

func NewAPI(cfg Config) *API {
	known := map[string]bool{}
	for _, ep := range cfg.Dispatcher.Endpoints() {
		known[ep.Key] = true
	}

	return &API{
		dispatcher: cfg.Dispatcher,
		store:      cfg.Store,
		saver:      cfg.Saver,
		metrics:    cfg.Metrics,
		known:      known,
	}
}

// NewRouter wires the API behind the standard middleware stack. Every path
// and method reaches the dispatcher; OPTIONS is answered by CORS.
func NewRouter(cfg Config) chi.Router {
	api := NewAPI(cfg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Handle("/*", api)
	r.NotFound(api.ServeHTTP)
	r.MethodNotAllowed(api.ServeHTTP)

	return r
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := LoggerFrom(r.Context())

	var body []byte
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.Debugw("read request body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			a.observe(r, http.StatusBadRequest, start)

			return
		}
	}

	res := a.dispatcher.Dispatch(r.Method, r.URL.Path, body)

	if a.saver != nil && isWrite(r.Method) && res.Status < http.StatusBadRequest {
		if err := a.saver.Save(a.store); err != nil {
			logger.Errorw("save database", "error", err.Error(), "stack", xerrors.Sprint(err))
		}
	}

	a.write(w, r, res)
	a.observe(r, res.Status, start)
}

func (a *API) write(w http.ResponseWriter, r *http.Request, res forum.Result) {
	if res.Body == nil {
		w.WriteHeader(res.Status)

		return
	}

	render.Status(r, res.Status)
	if err := render.Render(w, r, res.Body); err != nil {
		LoggerFrom(r.Context()).Errorw("render response", "error", err)
	}
}

func (a *API) observe(r *http.Request, status int, start time.Time) {
	if a.metrics == nil {
		return
	}

	key := route.Match(r.URL.Path).Key
	if !a.known[key] {
		key = telemetry.Unmatched
	}
	a.metrics.ObserveRequest(r.Context(), key, r.Method, status, time.Since(start))
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}

	return false
}

// DocsRouter mirrors the dispatch table as chi routes, for docgen.
func DocsRouter(cfg Config) chi.Router {
	api := NewAPI(cfg)

	r := chi.NewRouter()
	for _, ep := range cfg.Dispatcher.Endpoints() {
		r.Method(ep.Method, route.Pattern(ep.Key), http.HandlerFunc(api.ServeHTTP))
	}

	return r
}
