package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/ecs"
)

type tickSystem struct {
	Counter      ecs.Singleton[Counter]
	ExecuteCount int
	TotalTime    float64
}

func (s *tickSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalTime += frame.DeltaTime
	if c := s.Counter.Get(); c != nil {
		c.Value++
	}
}

type orderSystem struct {
	Log  ecs.Singleton[Log]
	name string
}

func (s *orderSystem) Execute(frame *ecs.UpdateFrame) {
	s.Log.Get().Lines = append(s.Log.Get().Lines, s.name)
}

type slowSystem struct{}

func (s *slowSystem) Execute(frame *ecs.UpdateFrame) {
	time.Sleep(time.Millisecond)
}

func TestScheduler(t *testing.T) {
	t.Run("registration wires singleton fields", func(t *testing.T) {
		storage := ecs.NewStorage()
		storage.AddSingleton(Counter{Value: 10})
		scheduler := ecs.NewScheduler(storage)

		system := &tickSystem{}
		scheduler.Register(system)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		if system.ExecuteCount != 2 {
			t.Errorf("expected 2 executions, got %d", system.ExecuteCount)
		}
		if system.TotalTime != 0.75 {
			t.Errorf("expected total time 0.75, got %f", system.TotalTime)
		}
		if got := ecs.GetSingleton[Counter](storage).Value; got != 12 {
			t.Errorf("expected counter 12, got %d", got)
		}
	})

	t.Run("systems run in registration order", func(t *testing.T) {
		storage := ecs.NewStorage()
		storage.AddSingleton(Log{})
		scheduler := ecs.NewScheduler(storage)

		scheduler.Register(&orderSystem{name: "gravity"})
		scheduler.Register(&orderSystem{name: "input"})
		scheduler.Register(&orderSystem{name: "loss"})

		scheduler.Once(0)

		lines := ecs.GetSingleton[Log](storage).Lines
		want := []string{"gravity", "input", "loss"}
		if len(lines) != len(want) {
			t.Fatalf("expected %v, got %v", want, lines)
		}
		for i := range want {
			if lines[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], lines[i])
			}
		}
	})

	t.Run("run stops on context cancellation", func(t *testing.T) {
		storage := ecs.NewStorage()
		scheduler := ecs.NewScheduler(storage)
		system := &tickSystem{}
		scheduler.Register(system)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, 5*time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after cancellation")
		}

		if system.ExecuteCount == 0 {
			t.Error("expected at least one execution")
		}
	})
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage()
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&tickSystem{})
	scheduler.Register(&slowSystem{})

	stats := scheduler.GetStats()
	if stats.SystemCount != 2 {
		t.Errorf("expected 2 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 executions, got %d", stats.TotalExecutions)
	}

	for i := 0; i < 3; i++ {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	if stats.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", stats.Frames)
	}
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 executions, got %d", stats.TotalExecutions)
	}
	if stats.LastFrame < time.Millisecond {
		t.Errorf("expected last frame to include the slow system, got %v", stats.LastFrame)
	}

	if stats.Systems[0].Name != "tickSystem" {
		t.Errorf("expected tickSystem, got %s", stats.Systems[0].Name)
	}

	slow := stats.Systems[1]
	if slow.Name != "slowSystem" {
		t.Errorf("expected slowSystem, got %s", slow.Name)
	}
	if slow.ExecutionCount != 3 {
		t.Errorf("expected 3 executions, got %d", slow.ExecutionCount)
	}
	if slow.MinDuration < time.Millisecond {
		t.Errorf("min duration too small: %v", slow.MinDuration)
	}
	if slow.MaxDuration < slow.MinDuration {
		t.Errorf("max %v below min %v", slow.MaxDuration, slow.MinDuration)
	}
	if slow.AvgDuration < slow.MinDuration || slow.AvgDuration > slow.MaxDuration {
		t.Errorf("avg %v outside [%v, %v]", slow.AvgDuration, slow.MinDuration, slow.MaxDuration)
	}
	if slow.TotalDuration < 3*time.Millisecond {
		t.Errorf("total duration too small: %v", slow.TotalDuration)
	}
}
