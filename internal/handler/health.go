package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mlorentedev/wordsmith/internal/adapter"
	"github.com/mlorentedev/wordsmith/internal/metrics"
)

const probeTimeout = 3 * time.Second

type adapterStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Version  string                   `json:"version"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

// Health probes every adapter concurrently and refreshes the
// availability gauge.
func Health(adapters map[string]adapter.LLMAdapter, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		var mu sync.Mutex
		statuses := make(map[string]adapterStatus, len(adapters))

		g, gctx := errgroup.WithContext(ctx)
		for id, a := range adapters {
			g.Go(func() error {
				s := adapterStatus{Available: a.Available(gctx)}
				if !s.Available {
					s.Reason = unavailableReason(a)
				}
				metrics.AdapterAvailable.WithLabelValues(id).Set(boolToFloat(s.Available))

				mu.Lock()
				statuses[id] = s
				mu.Unlock()
				return nil
			})
		}
		g.Wait()

		writeJSON(w, healthResponse{
			Status:   "ok",
			Version:  version,
			Adapters: statuses,
		})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.GeminiAdapter:
		return "no API key"
	case *adapter.OpenAIAdapter:
		return "server unreachable"
	case *adapter.AnyLLMAdapter:
		return "provider not configured"
	default:
		return "unavailable"
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
