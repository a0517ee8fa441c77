package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON cuts the substring between the first '{' and the last '}'
// of raw. Generative models occasionally wrap the JSON in prose or
// markdown fences; this strips both. Returns "" when no object is
// present.
func ExtractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return ""
	}
	return raw[start : end+1]
}

// ParseReport parses model output text into a Report and normalizes it.
// The error wraps ErrSchemaViolation so callers can decide on a repair
// pass.
func ParseReport(raw string) (*Report, error) {
	body := ExtractJSON(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: no JSON object in output", ErrSchemaViolation)
	}
	var r Report
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	r.Normalize()
	return &r, nil
}

// Normalize forces the report into the fixed shape: constant header
// fields, verdict within the enum, numbers clamped to 0-100, exactly
// two quick steps, no nil slices. Partial objects never reach the
// caller.
func (r *Report) Normalize() {
	r.Version = SchemaVersion
	r.Tool = ToolName

	switch r.Result.Verdict {
	case VerdictSafe, VerdictSuspicious, VerdictMalicious, VerdictUnknown:
	default:
		r.Result.Verdict = VerdictUnknown
	}

	r.Result.Confidence = clampScore(r.Result.Confidence)
	r.Result.RiskScore = clampScore(r.Result.RiskScore)

	if r.Result.Reasons == nil {
		r.Result.Reasons = []string{}
	}
	if r.Debug.Assumptions == nil {
		r.Debug.Assumptions = []string{}
	}
	if r.Debug.MissingInfo == nil {
		r.Debug.MissingInfo = []string{}
	}

	steps := r.Advice.TwoQuickSteps
	for len(steps) < 2 {
		steps = append(steps, "")
	}
	r.Advice.TwoQuickSteps = steps[:2]
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// ScoreToPercent converts a [0,1] model probability to the canonical
// 0-100 integer scale used everywhere past the classifier boundary.
func ScoreToPercent(score float64) int {
	return clampScore(int(score*100 + 0.5))
}
