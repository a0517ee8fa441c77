package analysis

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain object", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "markdown fences", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around object", raw: `Sure! Here is the JSON: {"a":1} hope that helps`, want: `{"a":1}`},
		{name: "no object", raw: "sorry, I cannot help with that", want: ""},
		{name: "only opening brace", raw: "{", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.raw); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseReport(t *testing.T) {
	t.Run("valid full report", func(t *testing.T) {
		raw := `{
			"version": "1.0",
			"tool": "link_scanner",
			"input": {"url": "https://example.com"},
			"result": {
				"verdict": "malicious",
				"confidence": 90,
				"riskScore": 95,
				"reasons": ["bad tld"],
				"detectedSignals": {"suspiciousTld": true}
			},
			"advice": {"summary": "avoid", "twoQuickSteps": ["a", "b"]},
			"debug": {"assumptions": [], "missingInfo": []}
		}`

		r, err := ParseReport(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Result.Verdict != VerdictMalicious {
			t.Errorf("verdict = %q", r.Result.Verdict)
		}
		if !r.Result.Signals.SuspiciousTLD {
			t.Error("signal lost in parsing")
		}
	})

	t.Run("wrapped in prose still parses", func(t *testing.T) {
		raw := "Here you go:\n```json\n{\"result\":{\"verdict\":\"safe\"}}\n```"
		r, err := ParseReport(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Result.Verdict != VerdictSafe {
			t.Errorf("verdict = %q", r.Result.Verdict)
		}
	})

	t.Run("unparsable text", func(t *testing.T) {
		_, err := ParseReport("not json at all")
		if !errors.Is(err, ErrSchemaViolation) {
			t.Fatalf("expected ErrSchemaViolation, got %v", err)
		}
	})

	t.Run("broken json", func(t *testing.T) {
		_, err := ParseReport(`{"result": {`)
		if !errors.Is(err, ErrSchemaViolation) {
			t.Fatalf("expected ErrSchemaViolation, got %v", err)
		}
	})
}

func TestNormalize(t *testing.T) {
	t.Run("fills partial report", func(t *testing.T) {
		var r Report
		r.Result.Verdict = "weird"
		r.Result.Confidence = -5
		r.Result.RiskScore = 250
		r.Normalize()

		if r.Version != SchemaVersion || r.Tool != ToolName {
			t.Errorf("header not forced: %q %q", r.Version, r.Tool)
		}
		if r.Result.Verdict != VerdictUnknown {
			t.Errorf("verdict = %q, want unknown", r.Result.Verdict)
		}
		if r.Result.Confidence != 0 || r.Result.RiskScore != 100 {
			t.Errorf("clamping failed: %d %d", r.Result.Confidence, r.Result.RiskScore)
		}
		if r.Result.Reasons == nil || r.Debug.Assumptions == nil || r.Debug.MissingInfo == nil {
			t.Error("nil slices survived Normalize")
		}
		if len(r.Advice.TwoQuickSteps) != 2 {
			t.Errorf("twoQuickSteps has %d items, want exactly 2", len(r.Advice.TwoQuickSteps))
		}
	})

	t.Run("truncates extra steps", func(t *testing.T) {
		var r Report
		r.Advice.TwoQuickSteps = []string{"a", "b", "c", "d"}
		r.Normalize()
		if len(r.Advice.TwoQuickSteps) != 2 || r.Advice.TwoQuickSteps[1] != "b" {
			t.Errorf("got %v", r.Advice.TwoQuickSteps)
		}
	})
}

func TestScoreToPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{1, 100},
		{0.5, 50},
		{0.87, 87},
		{-0.2, 0},
		{1.7, 100},
	}
	for _, tt := range tests {
		if got := ScoreToPercent(tt.score); got != tt.want {
			t.Errorf("ScoreToPercent(%v) = %d, want %d", tt.score, got, tt.want)
		}
	}
}
