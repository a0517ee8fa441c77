package mock

import (
	"context"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

// Client is the zero-dependency classifier used whenever no real
// credential is configured. Required fallback, not a test stub: the
// whole service must run end-to-end with nothing external set up.
// Pure function of (url, lang), so repeated calls are byte-identical.
type Client struct{}

func New() *Client { return &Client{} }

func (c *Client) Mock() bool { return true }

func (c *Client) Classify(_ context.Context, url string, _ []domain.Turn, lang domain.Lang) (*domain.Report, error) {
	texts := domain.TextsFor(lang)

	r := domain.NewReport()
	r.Input.URL = &url
	r.Result.Verdict = domain.VerdictSuspicious
	r.Result.Confidence = 50
	r.Result.RiskScore = 50
	r.Result.Reasons = texts.MockReasons[:]
	r.Result.Signals = domain.DetectSignals(url)
	r.Advice.Summary = texts.MockSummary
	r.Advice.TwoQuickSteps = texts.MockSteps[:]
	r.Debug.Assumptions = []string{"mock mode: verdict is illustrative, not a real classification"}
	r.Debug.MissingInfo = []string{"classifier credential"}
	r.Normalize()
	return r, nil
}
