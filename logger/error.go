package logger

import (
	"context"
	"errors"
	"log/slog"
)

// AnnotateError attaches slog key-value pairs to err. When the result is
// logged as an attribute through a handler installed by
// ConfigureLoggingWithOptions, the pairs become attributes of the record:
//
//	return logger.AnnotateError(err, "input", path, "line", lineNo)
//
// It returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	return &annotatedError{err: err, attrs: argsToAttrs(args)}
}

// argsToAttrs turns alternating keys and values into attributes the way
// slog.Logger.Log does, including its !BADKEY handling.
func argsToAttrs(args []any) []slog.Attr {
	var record slog.Record

	record.Add(args...)

	attrs := make([]slog.Attr, 0, record.NumAttrs())

	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return attrs
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string { return a.err.Error() }

func (a *annotatedError) Unwrap() error { return a.err }

// annotationHandler expands annotated errors found among a record's
// attributes before passing the record on.
type annotationHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotationHandler)(nil)

func (h *annotationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle logs an annotated error attribute as the error it wraps, or as the
// wrapping error when the annotation sits deeper in the chain, and appends
// the annotation's attributes after the record's own.
func (h *annotationHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		own     []slog.Attr
		extra   []slog.Attr
		rewrite bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		err, isErr := attr.Value.Any().(error)

		var annotated *annotatedError
		if !isErr || !errors.As(err, &annotated) {
			own = append(own, attr)

			return true
		}

		if err == annotated {
			err = annotated.err
		}

		rewrite = true

		own = append(own, slog.Any(attr.Key, err))
		extra = append(extra, annotated.attrs...)

		return true
	})

	if !rewrite {
		return h.inner.Handle(ctx, record)
	}

	expanded := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	expanded.AddAttrs(own...)
	expanded.AddAttrs(extra...)

	return h.inner.Handle(ctx, expanded)
}

func (h *annotationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotationHandler) WithGroup(name string) slog.Handler {
	return &annotationHandler{inner: h.inner.WithGroup(name)}
}
