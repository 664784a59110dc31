package logging

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
)

type keyType int

const key = keyType(0)

// logCtx хранит поля запроса и вращения для каждой записи лога.
// Имя ключа задаётся тегом log, пустые поля пропускаются.
type logCtx struct {
	RequestID         string `log:"request_id"`
	Method            string `log:"method"`
	Path              string `log:"path"`
	Status            int    `log:"status"`
	RequestDuration   string `log:"request_duration"`
	SpinID            string `log:"spin_id"`
	Phase             string `log:"phase"`
	ParticipantsCount int    `log:"participants_count"`
}

// attrs возвращает непустые поля в порядке объявления.
func (c logCtx) attrs() []slog.Attr {
	v := reflect.ValueOf(c)
	t := v.Type()

	out := make([]slog.Attr, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if field.IsZero() {
			continue
		}
		out = append(out, slog.Any(t.Field(i).Tag.Get("log"), field.Interface()))
	}
	return out
}

// merge дополняет c непустыми полями from. Уже заданные поля c не меняются.
func (c logCtx) merge(from logCtx) logCtx {
	dst := reflect.ValueOf(&c).Elem()
	src := reflect.ValueOf(from)
	for i := 0; i < dst.NumField(); i++ {
		if dst.Field(i).IsZero() {
			dst.Field(i).Set(src.Field(i))
		}
	}
	return c
}

// LoggerImpl оборачивает slog.Handler и добавляет в запись поля из контекста.
type LoggerImpl struct {
	next slog.Handler
}

func NewLoggerImpl(next slog.Handler) *LoggerImpl {
	return &LoggerImpl{next: next}
}

func (h *LoggerImpl) Enabled(ctx context.Context, rec slog.Level) bool {
	return h.next.Enabled(ctx, rec)
}

// Handle добавляет поля logCtx и место вызова.
func (h *LoggerImpl) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		rec.AddAttrs(c.attrs()...)
	}

	if rec.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := fs.Next()
		rec.AddAttrs(slog.String("source", fmt.Sprintf("%s:%d", f.File, f.Line)))
	}

	return h.next.Handle(ctx, rec)
}

func (h *LoggerImpl) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LoggerImpl{next: h.next.WithAttrs(attrs)}
}

func (h *LoggerImpl) WithGroup(name string) slog.Handler {
	return &LoggerImpl{next: h.next.WithGroup(name)}
}
