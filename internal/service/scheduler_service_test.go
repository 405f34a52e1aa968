package service

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	if _, err := s.ScheduleInterval(0, func() {}); err == nil {
		t.Fatalf("expected an error for a zero interval")
	}
	if _, err := s.ScheduleInterval(-time.Minute, func() {}); err == nil {
		t.Fatalf("expected an error for a negative interval")
	}
}

func TestScheduleIntervalFires(t *testing.T) {
	s := NewSchedulerService(time.UTC)

	var fired atomic.Int32
	if _, err := s.ScheduleInterval(time.Second, func() { fired.Add(1) }); err != nil {
		t.Fatalf("ScheduleInterval: %v", err)
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(3 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatalf("job never fired")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestRemoveDisarmsJob(t *testing.T) {
	s := NewSchedulerService(time.UTC)

	var fired atomic.Int32
	id, err := s.ScheduleInterval(time.Second, func() { fired.Add(1) })
	if err != nil {
		t.Fatalf("ScheduleInterval: %v", err)
	}
	s.Remove(id)

	s.Start()
	defer s.Stop()

	time.Sleep(1500 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("removed job fired %d times", fired.Load())
	}
}
