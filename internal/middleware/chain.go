package middleware

import "net/http"

// maxBodyBytes caps request bodies at 64 KiB.
const maxBodyBytes = 64 * 1024

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Tracing → Logging → Metrics → MaxBytes → mux
func Chain(handler http.Handler) http.Handler {
	h := handler
	h = MaxBytes(maxBodyBytes)(h)
	h = Metrics(h)
	h = Logging(h)
	h = Tracing(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
