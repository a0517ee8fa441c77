package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/privacyshield/linkscanner/internal/domain/feedback"
)

type FeedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Save inserts or updates a feedback report row
func (r *FeedbackRepository) Save(ctx context.Context, f *domain.Report) error {
	const q = `
INSERT INTO feedback_reports
  (id, url, is_malicious, trainer_out, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE SET
  url=EXCLUDED.url,
  is_malicious=EXCLUDED.is_malicious,
  trainer_out=EXCLUDED.trainer_out;
`
	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, f.ID, f.URL, f.IsMalicious, f.TrainerOut, createdAt)
	return err
}

// Latest returns the most recent feedback reports
func (r *FeedbackRepository) Latest(ctx context.Context, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, url, is_malicious, trainer_out, created_at
FROM feedback_reports
ORDER BY created_at DESC, id DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Report
	for rows.Next() {
		var f domain.Report
		if err := rows.Scan(&f.ID, &f.URL, &f.IsMalicious, &f.TrainerOut, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}
