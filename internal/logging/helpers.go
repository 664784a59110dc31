package logging

import "context"

// update применяет изменение к logCtx, сохранённому в контексте, или к пустому.
func update(ctx context.Context, apply func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	apply(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return update(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return update(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return update(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogSpinID добавляет идентификатор вращения в контекст.
func WithLogSpinID(ctx context.Context, spinID string) context.Context {
	return update(ctx, func(c *logCtx) { c.SpinID = spinID })
}

// WithLogPhase добавляет текущую фазу вращения в контекст.
func WithLogPhase(ctx context.Context, phase string) context.Context {
	return update(ctx, func(c *logCtx) { c.Phase = phase })
}

// WithLogParticipantsCount добавляет количество участников в контекст.
func WithLogParticipantsCount(ctx context.Context, cnt int) context.Context {
	return update(ctx, func(c *logCtx) { c.ParticipantsCount = cnt })
}
