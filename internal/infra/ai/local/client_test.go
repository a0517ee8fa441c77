package local

import (
	"context"
	"errors"
	"testing"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

func TestBuildReportThresholds(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		wantVerdict domain.Verdict
		wantRisk    int
		wantConf    int
	}{
		{name: "clearly malicious", score: 0.9, wantVerdict: domain.VerdictMalicious, wantRisk: 90, wantConf: 90},
		{name: "at malicious boundary", score: 0.8, wantVerdict: domain.VerdictMalicious, wantRisk: 80, wantConf: 80},
		{name: "suspicious band", score: 0.6, wantVerdict: domain.VerdictSuspicious, wantRisk: 60, wantConf: 60},
		{name: "coin flip", score: 0.5, wantVerdict: domain.VerdictSuspicious, wantRisk: 50, wantConf: 50},
		{name: "clearly safe", score: 0.2, wantVerdict: domain.VerdictSafe, wantRisk: 20, wantConf: 80},
		{name: "zero score", score: 0, wantVerdict: domain.VerdictSafe, wantRisk: 0, wantConf: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport("https://example.com/page", tt.score, domain.LangEnglish)
			if r.Result.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", r.Result.Verdict, tt.wantVerdict)
			}
			if r.Result.RiskScore != tt.wantRisk {
				t.Errorf("riskScore = %d, want %d", r.Result.RiskScore, tt.wantRisk)
			}
			if r.Result.Confidence != tt.wantConf {
				t.Errorf("confidence = %d, want %d", r.Result.Confidence, tt.wantConf)
			}
		})
	}
}

func TestBuildReportShape(t *testing.T) {
	r := BuildReport("http://bit.ly/x", 0.6, domain.LangHebrew)
	if r.Input.URL == nil || *r.Input.URL != "http://bit.ly/x" {
		t.Errorf("input.url = %v", r.Input.URL)
	}
	if len(r.Advice.TwoQuickSteps) != 2 {
		t.Errorf("twoQuickSteps has %d items, want 2", len(r.Advice.TwoQuickSteps))
	}
	if !r.Result.Signals.ShortenedURL {
		t.Error("shortener signal not detected")
	}
	// score reason plus one for the detected signals
	if len(r.Result.Reasons) != 2 {
		t.Errorf("reasons = %v, want 2 entries", r.Result.Reasons)
	}
}

type failingScorer struct{}

func (failingScorer) Score(context.Context, string) (float64, error) {
	return 0, errors.New("scorer exploded")
}

func TestClassifyScorerError(t *testing.T) {
	c := New(failingScorer{})
	_, err := c.Classify(context.Background(), "https://example.com", nil, domain.LangEnglish)
	if !errors.Is(err, domain.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}
