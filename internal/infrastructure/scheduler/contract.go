package scheduler

import "time"

// Scheduler откладывает вызов функции, как time.AfterFunc.
// Абстракция нужна, чтобы в тестах управлять временем вручную.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer позволяет отменить отложенный вызов.
type Timer interface {
	// Stop отменяет вызов и сообщает, был ли он ещё в очереди.
	Stop() bool
}
