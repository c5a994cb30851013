package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mlorentedev/wordsmith/internal/adapter"
	"github.com/mlorentedev/wordsmith/internal/metrics"
	"github.com/mlorentedev/wordsmith/internal/normalize"
	"github.com/mlorentedev/wordsmith/internal/prompt"
	"github.com/mlorentedev/wordsmith/internal/telemetry"
)

const maxTextLength = 10000

type suggestRequest struct {
	Mode    string `json:"mode"`
	Text    string `json:"text"`
	Context string `json:"context"`
	Style   string `json:"style"`
	ModelID string `json:"model_id"`
}

// Suggest handles fix, rephrase and flirt requests. An empty model_id
// selects defaultModel.
func Suggest(adapters map[string]adapter.LLMAdapter, defaultModel string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req suggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusInternalServerError, "Error: "+err.Error())
			return
		}

		p := prompt.Request{
			Mode:    prompt.Mode(req.Mode),
			Text:    req.Text,
			Context: req.Context,
			Style:   prompt.Style(req.Style),
		}
		if err := p.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if n := utf8.RuneCountInString(req.Text); n > maxTextLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("text too long: %d characters (max %d)", n, maxTextLength))
			return
		}

		modelID := req.ModelID
		if modelID == "" {
			modelID = defaultModel
		}
		a, ok := adapters[modelID]
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown model: %s", modelID))
			return
		}

		instruction, err := prompt.Build(p)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		metrics.InputChars.Observe(float64(utf8.RuneCountInString(req.Text)))

		ctx, span := telemetry.StartSpan(r.Context(), "generate")
		span.SetAttributes(
			attribute.String("wordsmith.model", modelID),
			attribute.String("wordsmith.mode", req.Mode),
		)
		defer span.End()

		start := time.Now()
		raw, err := a.Generate(ctx, instruction)
		elapsed := time.Since(start)
		metrics.GenerateDuration.WithLabelValues(modelID, req.Mode).Observe(elapsed.Seconds())

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "generation failed")
			metrics.UpstreamErrors.WithLabelValues(modelID).Inc()
			slog.ErrorContext(ctx, "generation failed",
				"model", modelID,
				"mode", req.Mode,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, upstreamMessage(err))
			return
		}

		result, err := normalize.Suggestions(raw, p.Mode)
		if err != nil {
			span.SetStatus(codes.Error, "empty output")
			metrics.UpstreamErrors.WithLabelValues(modelID).Inc()
			slog.WarnContext(ctx, "model output normalised to nothing",
				"model", modelID,
				"mode", req.Mode,
				"raw_chars", len(strings.TrimSpace(raw)),
			)
			writeError(w, http.StatusInternalServerError, "Error: "+err.Error())
			return
		}

		span.SetAttributes(attribute.Int("wordsmith.suggestions", len(result)))
		metrics.Suggestions.WithLabelValues(req.Mode).Observe(float64(len(result)))
		slog.InfoContext(ctx, "suggestions generated",
			"model", modelID,
			"mode", req.Mode,
			"count", len(result),
			"elapsed_ms", elapsed.Milliseconds(),
		)

		writeResult(w, http.StatusOK, result)
	}
}

// upstreamMessage renders a generation failure for the client. The missing
// Gemini text case keeps the wording existing clients match on.
func upstreamMessage(err error) string {
	if errors.Is(err, adapter.ErrNoResponseText) {
		return "Error: No response text found from Gemini"
	}
	return "Error: " + err.Error()
}
