package nower

import "time"

// Nower предоставляет абстракцию для получения текущего времени.
// Колесо считает прошедшее время от старта вращения через эту абстракцию,
// поэтому в тестах время можно подменить виртуальными часами.
type Nower interface {
	Now() time.Time
}

// Since возвращает время, прошедшее с start по часам n.
func Since(n Nower, start time.Time) time.Duration {
	return n.Now().Sub(start)
}
