package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestCronSchedulerRejectsBadSpec(t *testing.T) {
	t.Parallel()

	s := NewCronScheduler("not a cron", nil)
	if err := s.Start(context.Background(), func(time.Time) {}); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop on unstarted scheduler: %v", err)
	}
}

func TestCronSchedulerRunsJob(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BST", 3600)
	s := NewCronScheduler("@every 1s", loc)

	fired := make(chan time.Time, 4)
	if err := s.Start(context.Background(), func(t time.Time) { fired <- t }); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if err := s.Start(context.Background(), func(time.Time) {}); err != nil {
		t.Fatalf("second Start should be a no-op: %v", err)
	}

	select {
	case trigger := <-fired:
		if trigger.Location() != loc {
			t.Fatalf("trigger not in scheduler location: %v", trigger.Location())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("job did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop error: %v", err)
	}
}
