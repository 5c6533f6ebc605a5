package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent captures one call into the task service.
type UseCaseEvent struct {
	Name      string
	Changed   bool
	Duration  time.Duration
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to w. Calls that changed
// state log at Info; silently rejected calls log at Debug.
func NewLogUseCaseObserver(w io.Writer, level slog.Level, attrs ...any) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"changed", event.Changed,
		"duration_us", event.Duration.Microseconds(),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if !event.Changed {
		o.logger.DebugContext(ctx, "task_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "task_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
