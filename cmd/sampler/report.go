package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mlorentedev/wordsmith/internal/prompt"
)

func printTable(w io.Writer, results []result) {
	fmt.Fprintln(w, "| Sample | Mode | Chars | Run | Wall (ms) | Suggestions |")
	fmt.Fprintln(w, "|--------|------|-------|-----|-----------|-------------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "| %-20s | %-8s | %5d | %d | %9s | %11s |\n",
				r.Sample, r.Mode, r.Chars, r.Run, "FAIL", "-")
			continue
		}
		fmt.Fprintf(w, "| %-20s | %-8s | %5d | %d | %9d | %11d |\n",
			r.Sample, r.Mode, r.Chars, r.Run, r.WallMs, len(r.Suggestions))
	}
}

func printQuality(w io.Writer, samples []Sample, results []result) {
	bySample := make(map[string]result, len(results))
	for _, r := range results {
		if _, seen := bySample[r.Sample]; !seen {
			bySample[r.Sample] = r
		}
	}

	for i, s := range samples {
		r := bySample[s.Name]
		fmt.Fprintf(w, "\n--- %d/%d: %s [%s] ---\n", i+1, len(samples), s.Name, s.Mode)
		fmt.Fprintf(w, "IN:  %s\n", s.Text)
		if r.Error != "" {
			fmt.Fprintf(w, "ERR: %s\n", r.Error)
			continue
		}
		for j, out := range r.Suggestions {
			fmt.Fprintf(w, "%2d.  %s\n", j+1, out)
		}
		fmt.Fprintf(w, "     [%dms]\n", r.WallMs)
	}
}

type modeSummary struct {
	Mode   string
	Runs   int
	Failed int
	AvgMs  float64
	MaxMs  int64
	AvgOut float64
}

func summarize(results []result) []modeSummary {
	acc := make(map[string]*modeSummary)
	totals := make(map[string]struct{ ms, out int64 })

	for _, r := range results {
		s, ok := acc[r.Mode]
		if !ok {
			s = &modeSummary{Mode: r.Mode}
			acc[r.Mode] = s
		}
		s.Runs++
		if r.Error != "" {
			s.Failed++
			continue
		}
		t := totals[r.Mode]
		t.ms += r.WallMs
		t.out += int64(len(r.Suggestions))
		totals[r.Mode] = t
		if r.WallMs > s.MaxMs {
			s.MaxMs = r.WallMs
		}
	}

	out := make([]modeSummary, 0, len(acc))
	for mode, s := range acc {
		if ok := s.Runs - s.Failed; ok > 0 {
			s.AvgMs = float64(totals[mode].ms) / float64(ok)
			s.AvgOut = float64(totals[mode].out) / float64(ok)
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mode < out[j].Mode })
	return out
}

func printSummary(w io.Writer, results []result) {
	fmt.Fprintf(w, "\nSummary:\n")
	for _, s := range summarize(results) {
		fmt.Fprintf(w, "- %-8s runs=%d failed=%d avg=%.0fms max=%dms avg_suggestions=%.1f\n",
			s.Mode, s.Runs, s.Failed, s.AvgMs, s.MaxMs, s.AvgOut)
	}
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL, modelID string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Model:     modelID,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// parseModes turns "fix, flirt" into a set and rejects unknown names.
func parseModes(s string) (map[string]bool, error) {
	modes := make(map[string]bool)
	for _, m := range strings.Split(s, ",") {
		m = strings.TrimSpace(strings.ToLower(m))
		if m == "" {
			continue
		}
		if _, err := prompt.ParseMode(m); err != nil {
			return nil, fmt.Errorf("unknown mode %q", m)
		}
		modes[m] = true
	}
	return modes, nil
}
