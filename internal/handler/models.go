package handler

import (
	"net/http"

	"github.com/mlorentedev/wordsmith/internal/adapter"
)

func Models(models []adapter.ModelInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, models)
	}
}
