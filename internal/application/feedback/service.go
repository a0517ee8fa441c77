package feedback

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/privacyshield/linkscanner/internal/application"
	domain "github.com/privacyshield/linkscanner/internal/domain/feedback"
)

// Service implements the report use-case: forward one user correction
// to the trainer, optionally persist it and snapshot the dataset.
// Fire-and-forget from the analysis pipeline's perspective; a failed
// report never touches an analysis response already delivered.
type Service struct {
	Trainer     domain.Trainer
	Repo        domain.Repository   // optional audit trail
	Datasets    domain.DatasetStore // optional snapshot target
	DatasetPath string
	Clock       application.Clock
}

// Ack is what the report endpoint returns on success. TrainerOut is the
// trainer's own stdout payload when it printed one, otherwise empty and
// the handler falls back to a generic message.
type Ack struct {
	ID         string `json:"id"`
	TrainerOut string `json:"trainer_out,omitempty"`
}

// Report validates and forwards one (url, label) pair. Trainer failure
// is returned as-is; repository and snapshot failures are logged and
// swallowed, the retrain already happened.
func (s *Service) Report(ctx context.Context, url string, isMalicious bool) (*Ack, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("url is required")
	}

	out, err := s.Trainer.Train(ctx, url, isMalicious)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	if s.Repo != nil {
		rec := &domain.Report{
			ID:          domain.ReportID(id),
			URL:         url,
			IsMalicious: isMalicious,
			TrainerOut:  out,
			CreatedAt:   s.Clock.Now(),
		}
		if err := s.Repo.Save(ctx, rec); err != nil {
			log.Printf("feedback: save failed for %s: %v", id, err)
		}
	}

	if s.Datasets != nil && s.DatasetPath != "" {
		key := fmt.Sprintf("datasets/%s-%s", id, filepath.Base(s.DatasetPath))
		if _, err := s.Datasets.Upload(ctx, s.DatasetPath, key); err != nil {
			log.Printf("feedback: dataset snapshot failed: %v", err)
		}
	}

	return &Ack{ID: id, TrainerOut: strings.TrimSpace(out)}, nil
}
