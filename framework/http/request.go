package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/km-arc/go-options/framework/resolver"
)

const maxMemory = 32 << 20 // 32 MB

// Request wraps *http.Request with Laravel-style helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// ── Options ──────────────────────────────────────────────────────────────────

// Options returns all input as an option map ready for a resolver.
// Query-string values come first; a JSON object body (numbers kept as
// json.Number), a multipart form or a urlencoded form overrides them key by key.
func (req *Request) Options() (map[string]any, error) {
	out := flatten(req.raw.URL.Query())

	body, err := req.bodyOptions()
	if err != nil {
		return nil, err
	}
	for k, v := range body {
		out[k] = v
	}
	return out, nil
}

func (req *Request) bodyOptions() (map[string]any, error) {
	ct := req.raw.Header.Get("Content-Type")

	switch {
	case strings.Contains(ct, "application/json"):
		body, err := req.body()
		if err != nil {
			return nil, err
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var fields map[string]any
		if err := dec.Decode(&fields); err != nil {
			return nil, errors.Wrap(err, "decoding JSON options")
		}
		return fields, nil
	case strings.Contains(ct, "multipart/form-data"):
		if err := req.raw.ParseMultipartForm(maxMemory); err != nil {
			return nil, errors.Wrap(err, "parsing multipart form")
		}
		return flatten(req.raw.MultipartForm.Value), nil
	default:
		if err := req.raw.ParseForm(); err != nil {
			return nil, errors.Wrap(err, "parsing form")
		}
		return flatten(req.raw.PostForm), nil
	}
}

func (req *Request) body() ([]byte, error) {
	defer req.raw.Body.Close()
	body, err := io.ReadAll(req.raw.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading request body")
	}
	if len(body) == 0 {
		return nil, errors.New("empty request body")
	}
	return body, nil
}

// flatten turns single-valued keys into strings and keeps repeated keys as []string.
func flatten(values map[string][]string) map[string]any {
	m := make(map[string]any, len(values))
	for k, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			m[k] = vals[0]
		default:
			m[k] = vals
		}
	}
	return m
}

// Resolve runs the request input through r. Pass true to ignore input keys r
// does not declare (tracking parameters, cache busters, ...).
//
//	opts, err := gohttp.NewRequest(r).Resolve(search, true)
//	if err != nil { res.ResolutionError(err); return }
func (req *Request) Resolve(r *resolver.Resolver, allowUndefined ...bool) (map[string]any, error) {
	input, err := req.Options()
	if err != nil {
		return nil, err
	}
	return r.Resolve(input, allowUndefined...)
}
