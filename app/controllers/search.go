package controllers

import (
	"net/http"
	"strings"

	"github.com/km-arc/go-options/framework/app"
	"github.com/km-arc/go-options/framework/options"
	"github.com/km-arc/go-options/framework/resolver"
	"github.com/km-arc/go-options/framework/routing"
)

const maxPerPage = 100

// SearchController serves /search. Query strings and form fields arrive as
// text (JSON numbers as json.Number), so page, per_page and exact are cast
// before the schema validates them, and unknown keys (utm_*, cache busters)
// are ignored.
type SearchController struct {
	app.Controller

	perPage int
	exact   bool
}

// NewSearchController builds the controller. defaults is the optional
// [search] table of the config file; per_page and exact are read from it.
func NewSearchController(defaults map[string]any) *SearchController {
	c := &SearchController{perPage: 15}

	if v, ok := resolver.TypeCast(resolver.Int).Apply(defaults["per_page"]).(int); ok && v > 0 && v <= maxPerPage {
		c.perPage = v
	}
	if v, ok := resolver.TypeCast(resolver.Bool).Apply(defaults["exact"]).(bool); ok {
		c.exact = v
	}
	return c
}

// Register mounts GET and POST /search. POST takes the same options as a JSON
// or form body, layered over the query string.
func (c *SearchController) Register(r *routing.Router) {
	r.Get("/search", c.Index)
	r.Post("/search", c.Index)
}

// resolver returns a fresh resolver per request; a schema locks once it resolves.
func (c *SearchController) resolver() *resolver.Resolver {
	s := options.New()
	_ = s.SetRequired("q")
	_ = s.SetAllowedTypes("q", options.TypeString)
	_ = s.SetAllowedValues("q", func(v any) bool { return v != "" })

	_ = s.SetDefault("page", 1)
	_ = s.SetAllowedTypes("page", options.TypeInt)
	_ = s.SetAllowedValues("page", func(v any) bool { return v.(int) >= 1 })

	_ = s.SetDefault("per_page", c.perPage)
	_ = s.SetAllowedTypes("per_page", options.TypeInt)
	_ = s.SetAllowedValues("per_page", func(v any) bool {
		n := v.(int)
		return n >= 1 && n <= maxPerPage
	})

	_ = s.SetDefault("exact", c.exact)
	_ = s.SetAllowedTypes("exact", options.TypeBool)

	return resolver.New(s).
		MustSetCast("q", strings.TrimSpace).
		MustSetCast("page", resolver.Int).
		MustSetCast("per_page", resolver.Int).
		MustSetCast("exact", resolver.Bool)
}

// Index resolves the request options (query plus body) and echoes the normalized search.
//
//	GET /api/v1/search?q=go&page=2&per_page=25&exact=yes&utm_source=mail
//	200 {"data": {"q": "go", "page": 2, "per_page": 25, "exact": true, "offset": 25}}
func (c *SearchController) Index(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)

	opts, err := c.Request(r).Resolve(c.resolver(), true)
	if err != nil {
		res.ResolutionError(err)
		return
	}

	page, perPage := opts["page"].(int), opts["per_page"].(int)
	res.Success(map[string]any{
		"q":        opts["q"],
		"page":     page,
		"per_page": perPage,
		"exact":    opts["exact"],
		"offset":   (page - 1) * perPage,
	})
}
