// Package http provides Laravel-compatible request and response helpers
// centred on option resolution.
//
// # Request
//
// Request.Options collects the whole input as a map[string]any: the query
// string first, then a JSON object, multipart or urlencoded body on top.
// Repeated keys become []string and JSON numbers stay json.Number, so
// resolver casts see the raw text.
//
//	search := resolver.New(schema).MustSetCast("page", resolver.Int)
//
//	opts, err := gohttp.NewRequest(r).Resolve(search, true) // true: ignore undeclared keys
//	if err != nil {
//	    res.ResolutionError(err)
//	    return
//	}
//
// # Response
//
// Response wraps http.ResponseWriter with helpers matching Laravel's
// response() helper and JsonResponse.
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Error(405, "Method not allowed.")
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ServerError()             // 500 {"message": "Server Error."}
//	res.ResolutionError(err)      // 422 {"message": "The given options are invalid.", "errors": {"options": ["..."]}}
package http
