package scheduler

import (
	"maps"
	"time"

	"go.trai.ch/toolbelt/internal/core/domain"
)

// GetTaskStatusMap returns a copy of the internal task status map.
func (s *Scheduler) GetTaskStatusMap() map[domain.InternedString]TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.taskStatus)
}

// SetClock replaces the clock used for build records.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}
