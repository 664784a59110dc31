package domain

import "errors"

// Доменные ошибки. Все они относятся к вводу или использованию и не подлежат повтору.
// В HTTP-ответы их преобразует слой обработчиков.
var (
	ErrEmptyParticipants   = errors.New("at least one participant name is required") // Список имён пуст после разбиения.
	ErrMissingTask         = errors.New("task is required")                          // Задача пуста или состоит из пробелов.
	ErrTooManyParticipants = errors.New("too many participants (max 50)")           // Участников больше MaxParticipants.
	ErrInvalidCharacters   = errors.New("input contains disallowed characters")      // Текст нарушает политику символов.
	ErrNamesTooLong        = errors.New("names input too long (max 500 characters)") // Сырая строка имён длиннее MaxNameLength.
	ErrTaskTooLong         = errors.New("task too long (max 200 characters)")        // Задача длиннее MaxTaskLength.
	ErrAlreadySpinning     = errors.New("wheel is already spinning")                 // Start вызван не из Idle.
)

// Field указывает, к какому полю ввода относится ошибка.
type Field string

const (
	FieldNames Field = "names"
	FieldTask  Field = "task"
)

// ValidationError связывает доменную ошибку с полем ввода.
type ValidationError struct {
	Field Field
	Err   error
}

func (e *ValidationError) Error() string {
	return string(e.Field) + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code возвращает стабильный код ошибки для API.
func (e *ValidationError) Code() string {
	return ErrorCode(e.Err)
}

// ErrorCode сопоставляет доменную ошибку с кодом API.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmptyParticipants):
		return "EMPTY_PARTICIPANTS"
	case errors.Is(err, ErrMissingTask):
		return "MISSING_TASK"
	case errors.Is(err, ErrTooManyParticipants):
		return "TOO_MANY_PARTICIPANTS"
	case errors.Is(err, ErrInvalidCharacters):
		return "INVALID_CHARACTERS"
	case errors.Is(err, ErrNamesTooLong):
		return "NAMES_TOO_LONG"
	case errors.Is(err, ErrTaskTooLong):
		return "TASK_TOO_LONG"
	case errors.Is(err, ErrAlreadySpinning):
		return "ALREADY_SPINNING"
	default:
		return "UNKNOWN"
	}
}
