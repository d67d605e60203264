// Package logger carries structured context on errors. Decode and snapshot
// failures deep inside a document are annotated with slog attributes (the
// offending key, the element index) at the point of failure; a handler
// decorator surfaces those attributes when the error is eventually logged.
package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Annotate wraps err with slog key-value pairs. The attributes survive
// error wrapping and are extracted into the log record by a logger built
// with NewHandler. Returns nil if err is nil.
//
// Args follow slog conventions: alternating string keys and values.
func Annotate(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var attrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &attrError{
		err:   err,
		attrs: attrs,
	}
}

// Attrs returns the attributes annotated onto err, if any. It looks through
// the error chain for the nearest annotation.
func Attrs(err error) []slog.Attr {
	var ae *attrError

	if errors.As(err, &ae) {
		return ae.attrs
	}

	return nil
}

// attrError is an error carrying slog attributes. It supports unwrapping,
// so errors.Is and errors.As see through it.
type attrError struct {
	err   error
	attrs []slog.Attr
}

func (a *attrError) Error() string {
	return a.err.Error()
}

func (a *attrError) Unwrap() error {
	return a.err
}

var _ error = (*attrError)(nil)

// NewHandler decorates inner so that annotated errors appearing as record
// attributes have their embedded attributes lifted into the record. The
// error attribute itself is replaced with the unwrapped error.
func NewHandler(inner slog.Handler) slog.Handler {
	return &attrHandler{inner: inner}
}

// New is a convenience constructor for a logger whose handler extracts
// annotated-error attributes before delegating to inner.
func New(inner slog.Handler) *slog.Logger {
	return slog.New(NewHandler(inner))
}

type attrHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*attrHandler)(nil)

func (h *attrHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *attrHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		val := attr.Value.Any()

		switch v := val.(type) {
		case error:
			var ae *attrError

			if errors.As(v, &ae) {
				baseAttrs = append(baseAttrs, slog.Attr{
					Key:   attr.Key,
					Value: slog.AnyValue(ae.err),
				})

				errAttrs = append(errAttrs, ae.attrs...)
			} else {
				baseAttrs = append(baseAttrs, attr)
			}
		default:
			baseAttrs = append(baseAttrs, attr)
		}

		return true
	})

	if len(errAttrs) > 0 {
		r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		r.AddAttrs(baseAttrs...)
		r.AddAttrs(errAttrs...)

		return h.inner.Handle(ctx, r)
	}

	return h.inner.Handle(ctx, record)
}

func (h *attrHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *attrHandler) WithGroup(name string) slog.Handler {
	return &attrHandler{inner: h.inner.WithGroup(name)}
}
