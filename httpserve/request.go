package httpserve

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/activegraph/actionpack/actioncontroller"
)

// ParseRequest parses an HTTP request and returns controller parameters
// that contain all inputs of the request.
//
// Parameters are merged from the URL query, the request body and the path
// segments matched by the router. Body parameters are supported within
// JSON documents and form requests. Path parameters take precedence over
// body parameters, and body parameters over the query.
func ParseRequest(r *http.Request) (actioncontroller.Parameters, error) {
	params := make(actioncontroller.Parameters)

	for key, values := range r.URL.Query() {
		if len(values) == 1 {
			params[key] = values[0]
		} else {
			params[key] = values
		}
	}

	if err := parseBody(r, params); err != nil {
		return nil, err
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			params[key] = rctx.URLParams.Values[i]
		}
	}

	return params, nil
}

func parseBody(r *http.Request, params actioncontroller.Parameters) error {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return nil
	}
	// For server requests body is always non-nil, but client requests
	// can be passed here as well.
	if r.Body == nil {
		return nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "application/json":
		return parseJSON(r, params)
	case "application/x-www-form-urlencoded":
		return parseForm(r, params)
	}
	return nil
}

func parseJSON(r *http.Request, params actioncontroller.Parameters) error {
	var body map[string]interface{}

	err := json.NewDecoder(r.Body).Decode(&body)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to parse request body")
	}

	for key, value := range body {
		params[key] = value
	}
	return nil
}

func parseForm(r *http.Request, params actioncontroller.Parameters) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for key, values := range r.PostForm {
		if len(values) == 1 {
			params[key] = values[0]
		} else {
			params[key] = values
		}
	}
	return nil
}
