//nolint:err113 // tests build throwaway errors inline
package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate_NilError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Annotate(nil, "key", "value"))
}

func TestAnnotate_CarriesAttributes(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("unexpected token")
	annotated := Annotate(baseErr, "key", "age", "index", 3)

	require.Error(t, annotated)
	assert.Equal(t, "unexpected token", annotated.Error())
	require.ErrorIs(t, annotated, baseErr)

	attrs := Attrs(annotated)
	require.Len(t, attrs, 2)
	assert.Equal(t, "key", attrs[0].Key)
	assert.Equal(t, "age", attrs[0].Value.Any())
	assert.Equal(t, "index", attrs[1].Key)
	assert.Equal(t, int64(3), attrs[1].Value.Any())
}

func TestAnnotate_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	inner := Annotate(errors.New("boom"), "key", "name")
	wrapped := errors.Join(errors.New("decoding failed"), inner)

	attrs := Attrs(wrapped)
	require.Len(t, attrs, 1)
	assert.Equal(t, "key", attrs[0].Key)
}

func TestAttrs_PlainError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Attrs(errors.New("plain")))
}

func TestHandler_ExtractsErrorAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(slog.NewJSONHandler(&buf, nil))

	err := Annotate(errors.New("bad value"), "key", "age", "index", 7)
	log.Error("decode failed", "error", err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "decode failed", record["msg"])
	assert.Equal(t, "bad value", record["error"])
	assert.Equal(t, "age", record["key"])
	assert.InDelta(t, 7, record["index"], 0)
}

func TestHandler_PassesPlainRecordsThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := New(slog.NewJSONHandler(&buf, nil))
	log.Info("hello", "n", 1, "error", errors.New("plain"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "hello", record["msg"])
	assert.InDelta(t, 1, record["n"], 0)
	assert.Equal(t, "plain", record["error"])
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := NewHandler(slog.NewJSONHandler(&buf, nil))
	h := base.WithAttrs([]slog.Attr{slog.String("component", "codec")}).WithGroup("detail")

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))

	log := slog.New(h)
	log.Info("grouped", "k", "v")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "codec", record["component"])

	detail, ok := record["detail"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "v", detail["k"])
}

func TestHandler_TestLogger(t *testing.T) {
	t.Parallel()

	log := New(slogt.New(t).Handler())
	log.Info("smoke", "error", Annotate(errors.New("x"), "key", "k"))
}
