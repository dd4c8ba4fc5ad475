// Package quality decides whether generated workout text is usable
package quality

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum trimmed length, in characters, of an acceptable response
const MinLength = 50

var (
	ErrTooShort     = errors.New("response too short")
	ErrEchoedPrompt = errors.New("response echoes the prompt")
	ErrRefusal      = errors.New("response contains a refusal")
)

var refusalPhrases = []string{
	"i cannot",
	"i'm unable",
	"i don't have",
	"sorry, i can't",
	"as an ai",
	"i apologize",
}

// Check returns nil when text is acceptable, or the first rule it breaks.
// Rules are applied in order: length, echo, refusal.
func Check(text, prompt string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinLength {
		return ErrTooShort
	}
	if prompt != "" && strings.Contains(text, prompt) {
		return ErrEchoedPrompt
	}
	lower := strings.ToLower(text)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) {
			return ErrRefusal
		}
	}
	return nil
}

// IsAcceptable reports whether text passes every rule
func IsAcceptable(text, prompt string) bool {
	return Check(text, prompt) == nil
}

// Reason returns a short label for a rejection error, for logs and metrics
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTooShort):
		return "too-short"
	case errors.Is(err, ErrEchoedPrompt):
		return "echoed-prompt"
	case errors.Is(err, ErrRefusal):
		return "refusal-detected"
	default:
		return "rejected"
	}
}
