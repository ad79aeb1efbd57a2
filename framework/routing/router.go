package routing

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	gohttp "github.com/km-arc/go-options/framework/http"
)

// Router wraps chi.Router with Laravel-style helpers.
type Router struct {
	mux chi.Router
}

// New creates a Router with sane defaults: RealIP, request logging and a
// recoverer, plus JSON 404/405 responses. Requests are logged through the
// given logger, or a stderr logger when none is passed.
func New(logger ...*log.Logger) *Router {
	l := firstLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(l))
	r.Use(Recoverer(l))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).NotFound()
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).Error(http.StatusMethodNotAllowed, "Method not allowed.")
	})
	return &Router{mux: r}
}

func firstLogger(loggers []*log.Logger) *log.Logger {
	if len(loggers) > 0 && loggers[0] != nil {
		return loggers[0]
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "http",
		ReportTimestamp: true,
	})
}

// ── Middleware ───────────────────────────────────────────────────────────────

// RequestLogger logs one line per request: method, path, status, bytes and
// duration. 5xx responses are logged at error level, 4xx at warn.
func RequestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				kv := []any{
					"method", r.Method,
					"path", r.URL.Path,
					"status", status,
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				}
				switch {
				case status >= http.StatusInternalServerError:
					logger.Error("request", kv...)
				case status >= http.StatusBadRequest:
					logger.Warn("request", kv...)
				default:
					logger.Info("request", kv...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Recoverer turns a handler panic into a logged 500 {"message": "Server Error."}.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic", "method", r.Method, "path", r.URL.Path, "panic", rec)
				gohttp.NewResponse(w).ServerError()
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// ── Routes ───────────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc)  { r.mux.Get(pattern, h) }
func (r *Router) Post(pattern string, h http.HandlerFunc) { r.mux.Post(pattern, h) }

// Prefix creates a sub-router with a URL prefix. Laravel: Route::prefix('/api')
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// ServeHTTP implements http.Handler so Router can be passed to http.Server.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
