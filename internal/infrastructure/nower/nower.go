package nower

import "time"

type systemClock struct{}

// New возвращает системные часы.
func New() Nower {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Func позволяет использовать функцию как Nower.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
