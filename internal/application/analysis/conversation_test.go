package analysis

import (
	"fmt"
	"strings"
	"testing"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

func TestTrimConversation(t *testing.T) {
	t.Run("keeps last ten of fifteen", func(t *testing.T) {
		var turns []domain.Turn
		for i := 0; i < 15; i++ {
			turns = append(turns, domain.Turn{Role: domain.RoleUser, Content: fmt.Sprintf("msg %d", i)})
		}

		got := TrimConversation(turns)
		if len(got) != domain.MaxTurns {
			t.Fatalf("got %d turns, want %d", len(got), domain.MaxTurns)
		}
		if got[0].Content != "msg 5" || got[len(got)-1].Content != "msg 14" {
			t.Errorf("wrong window: first=%q last=%q", got[0].Content, got[len(got)-1].Content)
		}
	})

	t.Run("drops malformed turns silently", func(t *testing.T) {
		turns := []domain.Turn{
			{Role: domain.RoleUser, Content: "ok"},
			{Role: "system", Content: "not allowed"},
			{Role: "", Content: "no role"},
			{Role: domain.RoleAssistant, Content: ""},
			{Role: domain.RoleAssistant, Content: "also ok"},
		}

		got := TrimConversation(turns)
		if len(got) != 2 {
			t.Fatalf("got %d turns, want 2: %v", len(got), got)
		}
		if got[0].Content != "ok" || got[1].Content != "also ok" {
			t.Errorf("kept wrong turns: %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := TrimConversation(nil); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestCapContents(t *testing.T) {
	turns := []domain.Turn{
		{Role: domain.RoleUser, Content: strings.Repeat("x", domain.MaxTurnLen+500)},
		{Role: domain.RoleAssistant, Content: "short"},
	}

	got := CapContents(turns, domain.MaxTurnLen)
	if len(got[0].Content) != domain.MaxTurnLen {
		t.Errorf("content not capped: len=%d", len(got[0].Content))
	}
	if got[1].Content != "short" {
		t.Errorf("short content changed: %q", got[1].Content)
	}
	// original slice must not be mutated
	if len(turns[0].Content) != domain.MaxTurnLen+500 {
		t.Error("input slice was mutated")
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name    string
		turns   []domain.Turn
		message string
		want    domain.Lang
	}{
		{name: "english message", message: "is this link safe?", want: domain.LangEnglish},
		{name: "hebrew message", message: "האם הקישור הזה בטוח?", want: domain.LangHebrew},
		{name: "hebrew in history only", turns: []domain.Turn{{Role: domain.RoleUser, Content: "שלום"}}, message: "and now?", want: domain.LangHebrew},
		{name: "empty everything", message: "", want: domain.LangEnglish},
		{name: "mixed defaults to hebrew", message: "check זה http://x.test", want: domain.LangHebrew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLanguage(tt.turns, tt.message)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
