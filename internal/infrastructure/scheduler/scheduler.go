package scheduler

import "time"

type schedulerImpl struct{}

// New создаёт планировщик на базе системных таймеров.
func New() Scheduler {
	return &schedulerImpl{}
}

// AfterFunc запускает f в отдельной горутине по истечении d.
func (s *schedulerImpl) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
