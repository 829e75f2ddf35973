package usecase

import (
	"context"
	"testing"
	"time"

	"NewsScanner/internal/domain"
)

type immediateDriver struct {
	started, stopped bool
}

func (d *immediateDriver) Start(_ context.Context, job func(time.Time)) error {
	d.started = true
	job(day)
	return nil
}

func (d *immediateDriver) Stop(context.Context) error {
	d.stopped = true
	return nil
}

func TestSchedulerRunsPipeline(t *testing.T) {
	t.Parallel()

	writer := &captureWriter{}
	p := NewPipeline(PipelineDeps{
		Source: stubSource{batches: [][]domain.Candidate{{{Title: "scheduled"}}}},
		Writer: writer,
	})
	driver := &immediateDriver{}
	s := NewScheduler(driver, p, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if !driver.started || writer.calls != 1 {
		t.Fatalf("scheduled job did not run the pipeline")
	}
	if err := s.Stop(context.Background()); err != nil || !driver.stopped {
		t.Fatalf("Stop failed: %v", err)
	}
}
