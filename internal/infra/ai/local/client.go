package local

import (
	"context"
	"fmt"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

// Verdict thresholds on the [0,1] scorer output.
const (
	maliciousThreshold  = 0.80
	suspiciousThreshold = 0.50
)

// Client classifies with the local scoring model only: one subprocess
// run, thresholds on its probability, signals computed in-process. The
// scorer's fail-open contract means a broken scorer yields score 0 and
// therefore "safe"; see the runner for why that is deliberate.
type Client struct {
	Scorer domain.Scorer
}

func New(scorer domain.Scorer) *Client {
	return &Client{Scorer: scorer}
}

func (c *Client) Mock() bool { return false }

func (c *Client) Classify(ctx context.Context, url string, _ []domain.Turn, lang domain.Lang) (*domain.Report, error) {
	score, err := c.Scorer.Score(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}
	return BuildReport(url, score, lang), nil
}

// BuildReport maps a scorer probability onto the fixed schema. Shared
// with the hybrid variant's degraded path.
func BuildReport(url string, score float64, lang domain.Lang) *domain.Report {
	texts := domain.TextsFor(lang)
	percent := domain.ScoreToPercent(score)
	signals := domain.DetectSignals(url)

	r := domain.NewReport()
	r.Input.URL = &url
	r.Result.RiskScore = percent
	r.Result.Signals = signals

	switch {
	case score >= maliciousThreshold:
		r.Result.Verdict = domain.VerdictMalicious
		r.Advice.Summary = texts.MaliciousSummary
	case score >= suspiciousThreshold:
		r.Result.Verdict = domain.VerdictSuspicious
		r.Advice.Summary = texts.SuspiciousSummary
	default:
		r.Result.Verdict = domain.VerdictSafe
		r.Advice.Summary = texts.SafeSummary
	}

	// Confidence is distance from the decision boundary, folded onto
	// 50-100: a score of exactly 0.5 is a coin flip.
	conf := score
	if conf < 0.5 {
		conf = 1 - conf
	}
	r.Result.Confidence = domain.ScoreToPercent(conf)

	r.Result.Reasons = append(r.Result.Reasons, fmt.Sprintf(texts.ScoreReason, percent))
	if n := signals.Count(); n > 0 {
		r.Result.Reasons = append(r.Result.Reasons, fmt.Sprintf(texts.SignalReason, n))
	}
	r.Advice.TwoQuickSteps = texts.LocalSteps[:]
	r.Debug.Assumptions = []string{"verdict derived from local model score only"}
	r.Normalize()
	return r
}
