package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats summarizes how long systems have taken to execute.
type SchedulerStats struct {
	SystemCount     int
	Frames          int64
	TotalExecutions int64
	LastFrame       time.Duration
	Systems         []SystemStats
}

// SystemStats holds execution timings for one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTimings struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (t *systemTimings) record(d time.Duration) {
	t.executionCount++
	t.lastDuration = d
	t.totalDuration += d
	if d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

// Scheduler runs systems in registration order, one pass per frame.
type Scheduler struct {
	storage   *Storage
	systems   []System
	timings   []*systemTimings
	frames    int64
	lastFrame time.Duration
}

// NewScheduler creates a scheduler bound to storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
		systems: make([]System, 0),
	}
}

// Register appends system to the run order and wires its Singleton fields.
func (s *Scheduler) Register(system System) {
	s.initializeSingletons(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, &systemTimings{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) initializeSingletons(system System) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		if !strings.HasPrefix(field.Type().Name(), "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on Singleton field: " + systemType.Field(i).Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.storage)})
	}
}

// Once executes every system with delta time dt, then flushes the commands
// they queued.
func (s *Scheduler) Once(dt float64) {
	frameStart := time.Now()
	frame := newUpdateFrame(dt, s.storage)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)

	s.frames++
	s.lastFrame = time.Since(frameStart)
}

// Run calls Once at the given interval until ctx is cancelled. Each pass
// receives the wall-clock time since the previous one.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns a snapshot of execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		LastFrame:   s.lastFrame,
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		var avg time.Duration
		if t.executionCount > 0 {
			avg = t.totalDuration / time.Duration(t.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.executionCount,
			MinDuration:    t.minDuration,
			MaxDuration:    t.maxDuration,
			AvgDuration:    avg,
			LastDuration:   t.lastDuration,
			TotalDuration:  t.totalDuration,
		}
		stats.TotalExecutions += t.executionCount
	}

	return stats
}
