package ports

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"

	"NewsScanner/internal/domain"
)

// DocumentFetcher downloads a page and returns its parsed tree.
type DocumentFetcher interface {
	Document(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// CandidateSource collects today's candidates for every configured publisher.
// The outer slice follows the configured publisher order.
type CandidateSource interface {
	CollectDaily(ctx context.Context, day time.Time) ([][]domain.Candidate, error)
}

// RecordWriter persists the snapshot of a run.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []domain.Record) error
}

// Notifier streams a digest of the run to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when pipelines execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
