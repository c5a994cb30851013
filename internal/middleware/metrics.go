package middleware

import (
	"net/http"
	"strconv"

	"github.com/mlorentedev/wordsmith/internal/metrics"
)

// knownPaths bounds the path label; everything else is counted as "other".
var knownPaths = map[string]bool{
	"/api/suggest": true,
	"/api/gemini":  true,
	"/api/health":  true,
	"/api/models":  true,
	"/metrics":     true,
}

// Metrics records request count by method, path, and status code.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.RequestsTotal.WithLabelValues(r.Method, pathLabel(r.URL.Path), strconv.Itoa(sw.status)).Inc()
	})
}

func pathLabel(p string) string {
	if knownPaths[p] {
		return p
	}
	return "other"
}
