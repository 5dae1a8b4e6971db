package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// Field names shared by every layer.
const (
	FieldLayer     = "layer"
	FieldUseCase   = "usecase"
	FieldAdapter   = "adapter"
	FieldComponent = "component"
	FieldHandler   = "handler"
	FieldEvent     = "event"
	FieldService   = "service"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldCount     = "count"
)

// WithCtx returns a copy of ctx carrying log.
func WithCtx(ctx context.Context, log zerolog.Logger) context.Context {
	return log.WithContext(ctx)
}

// FromCtx returns the logger stored in ctx, or a disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// CtxWithFields returns a copy of ctx whose logger carries the given fields.
func CtxWithFields(ctx context.Context, fields map[string]any) context.Context {
	log := zerolog.Ctx(ctx).With().Fields(fields).Logger()
	return log.WithContext(ctx)
}
