package python

import (
	"context"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ScorerRunner invokes the local scoring script with the URL as its
// sole argument and reads one float in [0,1] from stdout. One process
// per request, then teardown; no pooling.
//
// Fail-open policy: any failure (spawn, timeout, non-zero exit,
// non-numeric stdout) yields score 0, i.e. "not flagged". That mirrors
// the scorer script's own print(0)-on-error contract and is a product
// decision, not a bug: a broken scorer must not take the whole scanner
// down. The generative path still fails closed.
type ScorerRunner struct {
	PythonBin string
	Script    string
	Timeout   time.Duration
}

func NewScorerRunner(pythonBin, script string, timeout time.Duration) *ScorerRunner {
	return &ScorerRunner{PythonBin: pythonBin, Script: script, Timeout: timeout}
}

func (r *ScorerRunner) Score(ctx context.Context, url string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.PythonBin, r.Script, url)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start).Milliseconds()

	// Diagnostics go to the server log, never into the score.
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		log.Printf("scorer: stderr: %s", msg)
	}

	if err != nil {
		log.Printf("scorer: run failed after %dms, failing open to 0: %v", duration, err)
		return 0, nil
	}

	out := strings.TrimSpace(stdout.String())
	score, perr := strconv.ParseFloat(out, 64)
	if perr != nil {
		log.Printf("scorer: non-numeric output %q, failing open to 0", out)
		return 0, nil
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}
