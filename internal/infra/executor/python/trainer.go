package python

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"
)

// TrainerRunner forwards one (url, label) pair to the retraining
// script. Unlike the scorer this fails closed: a retrain that did not
// run is reported to the caller, there is just no retry.
type TrainerRunner struct {
	PythonBin string
	Script    string
	Timeout   time.Duration
}

func NewTrainerRunner(pythonBin, script string, timeout time.Duration) *TrainerRunner {
	return &TrainerRunner{PythonBin: pythonBin, Script: script, Timeout: timeout}
}

// Train runs the script with the URL and a 1/0 label. Returns the
// trainer's stdout so a JSON ack can be passed through to the client.
func (r *TrainerRunner) Train(ctx context.Context, url string, isMalicious bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	label := "0"
	if isMalicious {
		label = "1"
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, r.PythonBin, r.Script, url, label)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start).Milliseconds()

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		log.Printf("trainer: stderr: %s", msg)
	}
	if err != nil {
		return "", fmt.Errorf("trainer run failed after %dms: %w", duration, err)
	}

	log.Printf("trainer: retrained on %s label=%s in %dms", url, label, duration)
	return stdout.String(), nil
}
