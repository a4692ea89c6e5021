package middleware

import (
	"net/http"
)

// MaxRequestSize caps request bodies; oversized uploads fail on read
// with http.MaxBytesError and surface as a 400 from the JSON decoder.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
