// Package schedule provides one-shot timers dispatched from the tick loop.
// An armed event fires exactly once unless it is rearmed or cancelled
// before it comes due.
package schedule

import (
	"sort"
	"time"
)

type event struct {
	remaining  time.Duration
	generation uint64
	seq        uint64
}

// Scheduler holds at most one pending event per stage key.
type Scheduler[S comparable] struct {
	pending     map[S]*event
	generations map[S]uint64
	seq         uint64
}

// New creates an empty scheduler.
func New[S comparable]() *Scheduler[S] {
	return &Scheduler[S]{
		pending:     make(map[S]*event),
		generations: make(map[S]uint64),
	}
}

// Arm schedules stage to fire after delay, replacing any pending event for
// the same stage. It returns the new generation of the stage.
func (s *Scheduler[S]) Arm(stage S, delay time.Duration) uint64 {
	s.generations[stage]++
	s.seq++
	s.pending[stage] = &event{
		remaining:  delay,
		generation: s.generations[stage],
		seq:        s.seq,
	}
	return s.generations[stage]
}

// Cancel drops the pending event for stage, if any. It reports whether
// something was cancelled.
func (s *Scheduler[S]) Cancel(stage S) bool {
	if _, ok := s.pending[stage]; !ok {
		return false
	}
	delete(s.pending, stage)
	s.generations[stage]++
	return true
}

// CancelAll drops every pending event.
func (s *Scheduler[S]) CancelAll() {
	for stage := range s.pending {
		s.Cancel(stage)
	}
}

// Pending reports whether stage has an event waiting.
func (s *Scheduler[S]) Pending(stage S) bool {
	_, ok := s.pending[stage]
	return ok
}

// Remaining returns the time left before stage fires.
func (s *Scheduler[S]) Remaining(stage S) (time.Duration, bool) {
	e, ok := s.pending[stage]
	if !ok {
		return 0, false
	}
	return e.remaining, true
}

// Generation returns how many times stage has been armed or cancelled.
func (s *Scheduler[S]) Generation(stage S) uint64 {
	return s.generations[stage]
}

// Len returns the number of pending events.
func (s *Scheduler[S]) Len() int {
	return len(s.pending)
}

// Advance moves time forward by dt and returns the stages that came due,
// earliest first. Events that come due at the same moment fire in the
// order they were armed. Fired events are removed.
func (s *Scheduler[S]) Advance(dt time.Duration) []S {
	type due struct {
		stage S
		at    time.Duration
		seq   uint64
	}
	var fired []due
	for stage, e := range s.pending {
		e.remaining -= dt
		if e.remaining <= 0 {
			fired = append(fired, due{stage: stage, at: e.remaining, seq: e.seq})
		}
	}
	if len(fired) == 0 {
		return nil
	}
	sort.Slice(fired, func(i, j int) bool {
		if fired[i].at != fired[j].at {
			return fired[i].at < fired[j].at
		}
		return fired[i].seq < fired[j].seq
	})
	stages := make([]S, len(fired))
	for i, f := range fired {
		delete(s.pending, f.stage)
		stages[i] = f.stage
	}
	return stages
}
