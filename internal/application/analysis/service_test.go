package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	domain "github.com/privacyshield/linkscanner/internal/domain/analysis"
)

type stubClassifier struct {
	calls  int
	mock   bool
	report *domain.Report
	err    error
}

func (s *stubClassifier) Mock() bool { return s.mock }

func (s *stubClassifier) Classify(_ context.Context, url string, _ []domain.Turn, _ domain.Lang) (*domain.Report, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	r := s.report
	if r == nil {
		r = domain.NewReport()
		r.Result.Verdict = domain.VerdictSuspicious
	}
	return r, nil
}

func TestAnalyzeNoURL(t *testing.T) {
	stub := &stubClassifier{mock: true}
	svc := NewService(stub)

	res, err := svc.Analyze(context.Background(), Command{Message: "hey how are you"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("classifier called %d times on the no-URL path", stub.calls)
	}

	r := res.Report
	if r.Input.URL != nil {
		t.Errorf("input.url should be null, got %q", *r.Input.URL)
	}
	if r.Result.Verdict != domain.VerdictSafe {
		t.Errorf("verdict = %q, want safe", r.Result.Verdict)
	}
	if r.Result.Confidence != 100 || r.Result.RiskScore != 0 {
		t.Errorf("confidence=%d riskScore=%d, want 100/0", r.Result.Confidence, r.Result.RiskScore)
	}
	if len(r.Result.Reasons) == 0 {
		t.Error("reasons must explain that no link was found")
	}
	if len(r.Advice.TwoQuickSteps) != 2 {
		t.Errorf("twoQuickSteps has %d items, want 2", len(r.Advice.TwoQuickSteps))
	}
	if !res.Mock {
		t.Error("mock flag should follow the classifier")
	}
}

func TestAnalyzeInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr error
	}{
		{name: "empty", message: "", wantErr: domain.ErrEmptyMessage},
		{name: "too long", message: strings.Repeat("a", domain.MaxMessageLen+1), wantErr: domain.ErrMessageTooLong},
		{name: "unparsable url", message: "look http://.", wantErr: domain.ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubClassifier{}
			svc := NewService(stub)

			_, err := svc.Analyze(context.Background(), Command{Message: tt.message})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if stub.calls != 0 {
				t.Errorf("classifier called %d times before validation finished", stub.calls)
			}
		})
	}
}

func TestAnalyzeFirstURLOnly(t *testing.T) {
	stub := &stubClassifier{}
	svc := NewService(stub)

	res, err := svc.Analyze(context.Background(), Command{
		Message: "two links https://first.example/a and https://second.example/b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("classifier called %d times, want 1", stub.calls)
	}
	if res.Report.Input.URL == nil || *res.Report.Input.URL != "https://first.example/a" {
		t.Errorf("analyzed url = %v, want the first link", res.Report.Input.URL)
	}
	if len(res.Report.Debug.Assumptions) == 0 {
		t.Error("ignored links should be noted in debug.assumptions")
	}
}

func TestAnalyzeClassifierFailure(t *testing.T) {
	stub := &stubClassifier{err: domain.ErrAnalysisFailed}
	svc := NewService(stub)

	_, err := svc.Analyze(context.Background(), Command{Message: "check https://example.com"})
	if !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestAnalyzeNormalizesClassifierOutput(t *testing.T) {
	bad := domain.NewReport()
	bad.Result.Verdict = "scary" // outside the enum
	bad.Result.Confidence = 400
	bad.Advice.TwoQuickSteps = []string{"one", "two", "three"}

	svc := NewService(&stubClassifier{report: bad})
	res, err := svc.Analyze(context.Background(), Command{Message: "see https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := res.Report
	if r.Result.Verdict != domain.VerdictUnknown {
		t.Errorf("verdict = %q, want unknown", r.Result.Verdict)
	}
	if r.Result.Confidence != 100 {
		t.Errorf("confidence = %d, want clamped 100", r.Result.Confidence)
	}
	if len(r.Advice.TwoQuickSteps) != 2 {
		t.Errorf("twoQuickSteps has %d items, want 2", len(r.Advice.TwoQuickSteps))
	}
}
