package analysis

import (
	"context"
	"fmt"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

// Service implements the analyze use-case: validate the message, pull
// out the first URL, bound the conversation and hand everything to the
// configured classifier. Stateless; safe for concurrent use.
type Service struct {
	Classifier domain.Classifier
}

func NewService(classifier domain.Classifier) *Service {
	return &Service{Classifier: classifier}
}

// Command carries one analyze request.
type Command struct {
	Message      string
	Conversation []domain.Turn
}

// Result wraps the report with the mock flag for the response envelope.
type Result struct {
	Report *domain.Report
	Mock   bool
}

// Analyze runs the full pipeline. Input-shape errors come back before
// any external call; the no-URL case is a successful outcome, not an
// error.
func (s *Service) Analyze(ctx context.Context, cmd Command) (*Result, error) {
	message, err := ValidateMessage(cmd.Message)
	if err != nil {
		return nil, err
	}

	convo := CapContents(TrimConversation(cmd.Conversation), domain.MaxTurnLen)
	lang := DetectLanguage(convo, message)

	urls := ExtractURLs(message)
	if len(urls) == 0 {
		return &Result{Report: noLinkReport(lang), Mock: s.Classifier.Mock()}, nil
	}

	normalized, err := NormalizeURL(urls[0])
	if err != nil {
		return nil, err
	}

	report, err := s.Classifier.Classify(ctx, normalized, convo, lang)
	if err != nil {
		return nil, err
	}

	// The classifier may echo the URL back or leave it empty; the
	// normalized one is authoritative either way.
	report.Input.URL = &normalized
	if len(urls) > 1 {
		report.Debug.Assumptions = append(report.Debug.Assumptions,
			fmt.Sprintf("%s (%d ignored)", domain.TextsFor(lang).ExtraLinksNote, len(urls)-1))
	}
	report.Normalize()

	return &Result{Report: report, Mock: s.Classifier.Mock()}, nil
}

// noLinkReport is the pure, classifier-free branch: a fully-formed safe
// report explaining that there was nothing to scan.
func noLinkReport(lang domain.Lang) *domain.Report {
	texts := domain.TextsFor(lang)

	r := domain.NewReport()
	r.Input.URL = nil
	r.Result.Verdict = domain.VerdictSafe
	r.Result.Confidence = 100
	r.Result.RiskScore = 0
	r.Result.Reasons = []string{texts.NoLinkReason}
	r.Advice.Summary = texts.NoLinkSummary
	r.Advice.TwoQuickSteps = texts.NoLinkSteps[:]
	r.Debug.MissingInfo = []string{"url"}
	r.Normalize()
	return r
}
