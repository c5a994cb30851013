// Package prompt turns a suggestion request into the instruction sent to
// the text-generation backend.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects what the backend is asked to do with the user's text.
type Mode string

const (
	ModeFix      Mode = "fix"
	ModeRephrase Mode = "rephrase"
	ModeFlirt    Mode = "flirt"
)

// Style is a tone preset, only used in flirt mode.
type Style string

const (
	StylePlayful    Style = "playful"
	StyleRomantic   Style = "romantic"
	StyleConfident  Style = "confident"
	StyleMysterious Style = "mysterious"
	StyleCheesy     Style = "cheesy"
)

// Validation errors. Their messages are shown to users as-is.
var (
	ErrEmptyInput  = errors.New("Please enter some text")
	ErrInvalidMode = errors.New("Invalid mode")
)

const defaultStyle = "flirtatious and charming"

var styleDescriptions = map[Style]string{
	StylePlayful:    "playful, fun, and teasing - like a natural flirtatious conversation",
	StyleRomantic:   "romantic, sweet, and heartfelt - genuine and sincere",
	StyleConfident:  "confident, bold, and charismatic - self-assured but not arrogant",
	StyleMysterious: "mysterious, intriguing, and enigmatic - leaves them wanting more",
	StyleCheesy:     "cheesy, funny, and lighthearted - playful and humorous",
}

// Request is the user input a prompt is built from.
type Request struct {
	Mode    Mode
	Text    string
	Context string
	Style   Style
}

// ParseMode validates a raw mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFix, ModeRephrase, ModeFlirt:
		return m, nil
	default:
		return "", ErrInvalidMode
	}
}

// Describe returns the instruction fragment for a style. Unknown or empty
// styles fall back to a generic descriptor.
func (s Style) Describe() string {
	if d, ok := styleDescriptions[s]; ok {
		return d
	}
	return defaultStyle
}

// Validate checks the invariants shared by every mode. Blank text is
// reported before an unknown mode.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyInput
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	return nil
}

// Build returns the instruction for r.
func Build(r Request) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	switch r.Mode {
	case ModeFix:
		return fmt.Sprintf(`Correct this text's grammar and spelling. Return ONLY the corrected text, no explanations, no quotes, no emojis, no introductory text: "%s"`, r.Text), nil
	case ModeRephrase:
		return fmt.Sprintf(`Rephrase this text in 3-5 different ways. Return ONLY a numbered list of rephrased versions (1. 2. 3. etc.), no explanations, no quotes, no emojis, no introductory text: "%s"`, r.Text), nil
	default:
		return buildFlirt(r), nil
	}
}

func buildFlirt(r Request) string {
	var contextText string
	if c := strings.TrimSpace(r.Context); c != "" {
		contextText = fmt.Sprintf("Context: %s. ", c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate 3-5 flirtatious replies to this message. Style: %s. %s\n\n", r.Style.Describe(), contextText)
	b.WriteString("IMPORTANT INSTRUCTIONS:\n")
	for _, line := range flirtInstructions {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nMessage: \"%s\"", r.Text)
	return b.String()
}

var flirtInstructions = []string{
	"Return ONLY a numbered list of replies (1. 2. 3. etc.)",
	"No explanations, no introductory text",
	"Remove ALL double quotes from the responses",
	"Remove ALL emojis",
	"Sound like a real human conversation - natural and authentic",
	"Use subtle, organic slang that doesn't feel forced",
	"Avoid overusing Gen-Z terms - keep it balanced and realistic",
	"Make it flow like actual speech, not like AI-generated text",
	"Focus on being clever and engaging rather than using trendy slang",
}
