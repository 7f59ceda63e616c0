package httpserve

import (
	"encoding/json"
	"net/http"
)

// TextHandler creates an HTTP handler that writes the given string
// and status as a response.
func TextHandler(status int, text string) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rw.WriteHeader(status)
		rw.Write([]byte(text))
	}
}

// JSONHandler creates an HTTP handler that writes the given value
// encoded as JSON and status as a response.
func JSONHandler(status int, val interface{}) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		b, err := json.Marshal(val)
		if err != nil {
			h := TextHandler(http.StatusInternalServerError, err.Error())
			h.ServeHTTP(rw, r)
			return
		}

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)
		rw.Write(b)
	}
}
