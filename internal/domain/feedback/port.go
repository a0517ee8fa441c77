package feedback

import "context"

// Repository port for persisting feedback reports (optional audit trail)
type Repository interface {
	Save(ctx context.Context, r *Report) error
	Latest(ctx context.Context, limit int) ([]*Report, error)
}

// Trainer port: forwards one (url, label) pair to the retraining
// process. Output is whatever the trainer printed on stdout.
type Trainer interface {
	Train(ctx context.Context, url string, isMalicious bool) (string, error)
}

// DatasetStore port for snapshotting the training dataset after a
// successful retrain (optional).
type DatasetStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
}
