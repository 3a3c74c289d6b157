package scheduler

import (
	"testing"

	"scholarship-tracker-go/internal/config"
	"scholarship-tracker-go/internal/digest"
	"scholarship-tracker-go/internal/metrics"
)

// Prometheus collectors register globally, so the test binary shares one set.
var testMetrics = metrics.NewMetrics()

func testService() *digest.Service {
	// These tests never fire a run, so collaborators stay nil.
	return digest.NewService(nil, nil, nil, nil, testMetrics, 0)
}

func TestSchedulerRestart(t *testing.T) {
	cfg := &config.SchedulerConfig{IntervalHours: 24}
	sched := NewScheduler(cfg, testService())

	if err := sched.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if !sched.IsRunning() {
		t.Fatalf("scheduler should be running after Start")
	}
	if err := sched.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if sched.IsRunning() {
		t.Fatalf("scheduler should not be running after Stop")
	}
	if err := sched.Start(); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if !sched.IsRunning() {
		t.Fatalf("scheduler should be running after second Start")
	}
	// context should be active
	if sched.ctx == nil || sched.ctx.Err() != nil {
		t.Fatalf("scheduler context should be active after restart")
	}
	sched.Stop()
}

func TestSchedulerDoubleStart(t *testing.T) {
	cfg := &config.SchedulerConfig{IntervalHours: 24}
	sched := NewScheduler(cfg, testService())

	if err := sched.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := sched.Start(); err == nil {
		t.Fatalf("second start should fail while running")
	}
	sched.Stop()
}

func TestSchedulerNextRun(t *testing.T) {
	cfg := &config.SchedulerConfig{IntervalHours: 24}
	sched := NewScheduler(cfg, testService())

	if !sched.GetNextRun().IsZero() {
		t.Fatalf("next run should be zero before Start")
	}
	if err := sched.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if sched.GetNextRun().IsZero() {
		t.Fatalf("next run should be scheduled after Start")
	}
	sched.Stop()
}
