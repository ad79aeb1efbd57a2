package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/km-arc/go-options/framework/config"
	gohttp "github.com/km-arc/go-options/framework/http"
	"github.com/km-arc/go-options/framework/routing"
)

const shutdownTimeout = 10 * time.Second

// Application is the top-level application, like $app in Laravel's
// bootstrap/app.php.
type Application struct {
	Config *config.Config
	Router *routing.Router
	Logger *log.Logger
}

// New loads configuration and builds the logger and router.
//
//	application, err := app.New()
//	application.Router.Get("/", handler)
//	err = application.Run()
func New(envFiles ...string) (*Application, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing LOG_LEVEL")
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          cfg.App.Name,
		Level:           level,
		ReportTimestamp: true,
	})

	return &Application{
		Config: cfg,
		Router: routing.New(logger.WithPrefix("http")),
		Logger: logger,
	}, nil
}

// Addr is the listen address built from APP_PORT.
func (a *Application) Addr() string {
	return ":" + strconv.Itoa(a.Config.App.Port)
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Serve(ctx)
}

// Serve runs the HTTP server until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Addr(),
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server started", "address", srv.Addr, "env", a.Config.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server error")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("shutdown error", "error", err)
		return errors.Wrap(err, "shutting down server")
	}
	a.Logger.Info("server stopped")
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config.App.Debug }

// ── Controller base ───────────────────────────────────────────────────────────

// Controller is an embeddable base for all controllers,
// providing Req/Res factory methods.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
