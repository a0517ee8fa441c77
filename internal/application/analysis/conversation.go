package analysis

import (
	"unicode"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

// TrimConversation keeps the most recent MaxTurns well-formed turns.
// Turns with an unknown role or empty content are dropped silently; a
// malformed history must never fail the request.
func TrimConversation(turns []domain.Turn) []domain.Turn {
	clean := make([]domain.Turn, 0, len(turns))
	for _, t := range turns {
		if t.Role != domain.RoleUser && t.Role != domain.RoleAssistant {
			continue
		}
		if t.Content == "" {
			continue
		}
		clean = append(clean, t)
	}
	if len(clean) > domain.MaxTurns {
		clean = clean[len(clean)-domain.MaxTurns:]
	}
	return clean
}

// CapContents truncates each turn's content to maxLen bytes. Count and
// size are bounded independently: many short turns and one giant turn
// are both payload blow-ups.
func CapContents(turns []domain.Turn, maxLen int) []domain.Turn {
	out := make([]domain.Turn, len(turns))
	for i, t := range turns {
		if len(t.Content) > maxLen {
			t.Content = t.Content[:maxLen]
		}
		out[i] = t
	}
	return out
}

// DetectLanguage returns Hebrew when any rune of the combined prior
// conversation and current message falls in the Hebrew block, English
// otherwise. The classifier keeps JSON keys in English either way and
// localizes only the string values.
func DetectLanguage(turns []domain.Turn, message string) domain.Lang {
	if hasHebrew(message) {
		return domain.LangHebrew
	}
	for _, t := range turns {
		if hasHebrew(t.Content) {
			return domain.LangHebrew
		}
	}
	return domain.LangEnglish
}

func hasHebrew(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hebrew, r) {
			return true
		}
	}
	return false
}
