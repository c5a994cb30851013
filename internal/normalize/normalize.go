// Package normalize turns raw model output into a short list of clean
// suggestions.
//
// Models routinely ignore "no quotes, no emojis, no introductory text"
// instructions, so everything returned by a backend goes through Clean
// before it reaches a client.
package normalize

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mlorentedev/wordsmith/internal/prompt"
)

// MaxSuggestions caps the number of entries returned for list modes.
const MaxSuggestions = 5

// minLength is the shortest line accepted as a suggestion, in runes.
const minLength = 6

// ErrEmptyOutput is returned when nothing usable survives cleaning.
var ErrEmptyOutput = errors.New("no usable text in model response")

// leadIns are applied in order; each is anchored at the start of the text.
var leadIns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here are \d+ flirtatious replies:\s*`),
	regexp.MustCompile(`(?i)^here are \d+ rephrased versions:\s*`),
	regexp.MustCompile(`(?i)^here are \d+ alternatives:\s*`),
	regexp.MustCompile(`(?i)^here are the results:\s*`),
	regexp.MustCompile(`(?i)^here you go:\s*`),
	regexp.MustCompile(`(?i)^certainly! here are \d+.*:\s*`),
	regexp.MustCompile(`(?i)^i've generated \d+.*:\s*`),
	regexp.MustCompile(`(?i)^\d+\.\s*here are.*\n`),
}

// slang is removed term by term; longer phrases come before the words
// they contain.
var slang = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bw rizz\b`),
	regexp.MustCompile(`(?i)\bno cap\b`),
	regexp.MustCompile(`(?i)\bmain character energy\b`),
	regexp.MustCompile(`(?i)\bslaying\b`),
	regexp.MustCompile(`(?i)\bvibes are immaculate\b`),
	regexp.MustCompile(`(?i)\brizz\b`),
	regexp.MustCompile(`(?i)\bhighkey\b`),
	regexp.MustCompile(`(?i)\blowkey\b`),
	regexp.MustCompile(`(?i)\bbet\b`),
	regexp.MustCompile(`(?i)\bslay\b`),
	regexp.MustCompile(`(?i)\bsus\b`),
	regexp.MustCompile(`(?i)\bbased\b`),
	regexp.MustCompile(`(?i)\bfr fr\b`),
}

var emoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26ff, Stride: 1}, // misc symbols
		{Lo: 0x2700, Hi: 0x27bf, Stride: 1}, // dingbats
		{Lo: 0xfe0f, Hi: 0xfe0f, Stride: 1}, // emoji presentation selector
	},
	R32: []unicode.Range32{
		{Lo: 0x1f300, Hi: 0x1f5ff, Stride: 1},
		{Lo: 0x1f600, Hi: 0x1f64f, Stride: 1},
		{Lo: 0x1f680, Hi: 0x1f6ff, Stride: 1},
		{Lo: 0x1f700, Hi: 0x1f77f, Stride: 1},
		{Lo: 0x1f780, Hi: 0x1f7ff, Stride: 1},
		{Lo: 0x1f800, Hi: 0x1f8ff, Stride: 1},
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1},
		{Lo: 0x1fa00, Hi: 0x1fa6f, Stride: 1},
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1},
	},
}

var (
	numberMarker = regexp.MustCompile(`^\d+\.\s*`)
	numberedLead = regexp.MustCompile(`(?i)^\d+\.\s*here are`)
	connectives  = regexp.MustCompile(`(?i)\b(?:thus|hence|therefore|indeed|certainly)\b,?`)
	markerScrub  = regexp.MustCompile(`(?i)here are|rizz|no cap`)
	lineBreaks   = regexp.MustCompile(`\n+`)
)

// listMarkers disqualify a line in list modes.
var listMarkers = []string{
	"here are",
	"certainly",
	"i've generated",
	"replies:",
	"versions:",
	"alternatives:",
	"rizz",
	"no cap",
}

// residualMarkers must never appear in a returned list entry.
var residualMarkers = []string{"here are", "rizz", "no cap"}

// Clean strips lead-ins, double quotes, emoji and slang from text and
// collapses all whitespace to single spaces. Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	for {
		next := cleanOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanOnce(text string) string {
	for _, re := range leadIns {
		text = re.ReplaceAllString(text, "")
	}

	text = strings.Map(func(r rune) rune {
		if r == '"' || unicode.Is(emoji, r) {
			return -1
		}
		return r
	}, text)

	for _, re := range slang {
		text = re.ReplaceAllString(text, "")
	}

	// Removals can leave a base letter next to a combining mark.
	return norm.NFC.String(strings.Join(strings.Fields(text), " "))
}

// Suggestions reduces raw model output to the result list for mode. Fix
// mode yields exactly one entry; the other modes yield between one and
// MaxSuggestions entries.
func Suggestions(raw string, mode prompt.Mode) ([]string, error) {
	if mode == prompt.ModeFix {
		fixed := finish(Clean(raw))
		if fixed == "" {
			return nil, ErrEmptyOutput
		}
		return []string{fixed}, nil
	}

	items := numberedItems(raw)
	if len(items) == 0 {
		items = []string{Clean(raw)}
	}
	if len(items) == 1 && containsFold(items[0], "here are") {
		items = aggressiveItems(raw)
	}

	results := make([]string, 0, len(items))
	for _, item := range items {
		item = finish(item)
		if runeLen(item) < minLength || containsAny(item, residualMarkers) {
			continue
		}
		results = append(results, item)
	}
	if len(results) > 0 {
		return results, nil
	}

	last := scrubMarkers(Clean(raw))
	if runeLen(last) < minLength {
		return nil, ErrEmptyOutput
	}
	return []string{last}, nil
}

// numberedItems cleans raw line by line, strips "N. " markers and keeps
// lines that look like actual suggestions.
func numberedItems(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = Clean(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(numberMarker.ReplaceAllString(line, ""))
		if runeLen(line) < minLength || containsAny(line, listMarkers) {
			continue
		}
		items = append(items, line)
		if len(items) == MaxSuggestions {
			break
		}
	}
	return items
}

// aggressiveItems is the fallback when the first pass produced a single
// lead-in line. It only rejects lines that open with boilerplate.
func aggressiveItems(raw string) []string {
	var items []string
	for _, line := range lineBreaks.Split(raw, -1) {
		line = Clean(line)
		lower := strings.ToLower(line)
		if runeLen(line) < minLength ||
			strings.HasPrefix(lower, "here are") ||
			strings.HasPrefix(lower, "certainly") ||
			strings.HasPrefix(lower, "i've") ||
			numberedLead.MatchString(lower) ||
			strings.Contains(lower, "rizz") ||
			strings.Contains(lower, "no cap") {
			continue
		}
		line = strings.TrimSpace(numberMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		items = append(items, line)
		if len(items) == MaxSuggestions {
			break
		}
	}
	if len(items) == 0 {
		return []string{Clean(raw)}
	}
	return items
}

// finish drops stilted connectives until the line stops changing.
// scrubMarkers deletes marker substrings until none are left. A single
// pass can join the text around a removed marker into a new one.
func scrubMarkers(text string) string {
	for {
		next := finish(Clean(markerScrub.ReplaceAllString(text, "")))
		if next == text {
			return next
		}
		text = next
	}
}

func finish(line string) string {
	for {
		next := Clean(connectives.ReplaceAllString(line, ""))
		if next == line {
			return next
		}
		line = next
	}
}

func containsAny(s string, subs []string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
