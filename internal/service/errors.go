package service

import "errors"

var (
	// ErrUnknownField возвращается при проверке поля, которого нет в форме.
	ErrUnknownField = errors.New("unknown input field")
)
