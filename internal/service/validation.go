package service

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jgs61/wheelofchumps/internal/domain"
)

// allowedChars задаёт политику символов для имён и задачи:
// буквы, цифры, пробельные символы, запятая, точка, дефис и апостроф.
var allowedChars = regexp.MustCompile(`^[A-Za-z0-9\s,.'-]*$`)

// Validate превращает сырой ввод в SpinRequest или возвращает *domain.ValidationError.
// Проверка выполняется один раз при отправке: сначала допустимые символы и длина
// обоих полей, затем пустой список, пустая задача и лимит участников.
// Ввод проверяется как есть, без нормализации.
func Validate(rawNames, rawTask string) (domain.SpinRequest, error) {
	if err := checkText(domain.FieldNames, rawNames, domain.MaxNameLength, domain.ErrNamesTooLong); err != nil {
		return domain.SpinRequest{}, err
	}
	if err := checkText(domain.FieldTask, rawTask, domain.MaxTaskLength, domain.ErrTaskTooLong); err != nil {
		return domain.SpinRequest{}, err
	}

	names := SplitNames(rawNames)
	if len(names) == 0 {
		return domain.SpinRequest{}, invalid(domain.FieldNames, domain.ErrEmptyParticipants)
	}
	task := strings.TrimSpace(rawTask)
	if task == "" {
		return domain.SpinRequest{}, invalid(domain.FieldTask, domain.ErrMissingTask)
	}
	if len(names) > domain.MaxParticipants {
		return domain.SpinRequest{}, invalid(domain.FieldNames, domain.ErrTooManyParticipants)
	}
	return domain.NewSpinRequest(names, task), nil
}

// ValidateField проверяет одно поле по тем же правилам, что и Validate.
// Используется для подсказок во время ввода.
func ValidateField(field domain.Field, raw string) error {
	switch field {
	case domain.FieldNames:
		if err := checkText(field, raw, domain.MaxNameLength, domain.ErrNamesTooLong); err != nil {
			return err
		}
		names := SplitNames(raw)
		if len(names) == 0 {
			return invalid(field, domain.ErrEmptyParticipants)
		}
		if len(names) > domain.MaxParticipants {
			return invalid(field, domain.ErrTooManyParticipants)
		}
		return nil
	case domain.FieldTask:
		if err := checkText(field, raw, domain.MaxTaskLength, domain.ErrTaskTooLong); err != nil {
			return err
		}
		if strings.TrimSpace(raw) == "" {
			return invalid(field, domain.ErrMissingTask)
		}
		return nil
	default:
		return ErrUnknownField
	}
}

// SplitNames разбивает строку по запятым, обрезает пробелы и отбрасывает пустые части.
func SplitNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// Suggest предлагает замену для значения, отклонённого политикой символов:
// NFKC-форму (полноширинные буквы, многоточие), если она сама проходит ValidateField.
func Suggest(field domain.Field, raw string) (string, bool) {
	if !errors.Is(ValidateField(field, raw), domain.ErrInvalidCharacters) {
		return "", false
	}
	fixed := norm.NFKC.String(raw)
	if fixed == raw || ValidateField(field, fixed) != nil {
		return "", false
	}
	return fixed, true
}

// checkText проверяет политику символов раньше длины, чтобы код ошибки не зависел от длины.
func checkText(field domain.Field, raw string, maxLen int, tooLong error) error {
	if !allowedChars.MatchString(raw) {
		return invalid(field, domain.ErrInvalidCharacters)
	}
	if utf8.RuneCountInString(raw) > maxLen {
		return invalid(field, tooLong)
	}
	return nil
}

func invalid(field domain.Field, err error) *domain.ValidationError {
	return &domain.ValidationError{Field: field, Err: err}
}
