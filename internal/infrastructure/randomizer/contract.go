package randomizer

// Randomizer предоставляет абстракцию для рандомизации.
type Randomizer interface {
	// Intn возвращает равномерно распределённое число из [0, n).
	Intn(n int) int
}
