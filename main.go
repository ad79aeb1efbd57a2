package main

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/km-arc/go-options/app/controllers"
	"github.com/km-arc/go-options/framework/app"
	gohttp "github.com/km-arc/go-options/framework/http"
)

func main() {
	application, err := app.New() // loads .env and APP_CONFIG_FILE
	if err != nil {
		log.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	r := application.Router

	// ── Basic routes ─────────────────────────────────────────────────────────

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success(map[string]any{"message": "Welcome to Go-Options!"})
	})

	// ── Route prefix (like Route::prefix('api')) ──────────────────────────────

	searchDefaults, _ := application.Config.Options["search"].(map[string]any)
	search := controllers.NewSearchController(searchDefaults)

	// GET  /api/v1/search?q=go&page=2&per_page=25&exact=yes
	// POST /api/v1/search {"q": "go", "page": 2}
	r.Prefix("/api/v1", search.Register)

	if err := application.Run(); err != nil {
		application.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
