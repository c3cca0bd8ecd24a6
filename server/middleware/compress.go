package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress serves gzip-encoded responses to clients that accept them.
func Compress(w http.ResponseWriter, r *http.Request, next http.Handler) {
	gzhttp.GzipHandler(next).ServeHTTP(w, r)
}
