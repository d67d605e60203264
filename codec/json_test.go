//nolint:err113 // tests build throwaway errors inline
package codec_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turboMaCk/any-dict/codec"
	"github.com/turboMaCk/any-dict/compare"
	"github.com/turboMaCk/any-dict/dict"
	"github.com/turboMaCk/any-dict/logger"
	"github.com/turboMaCk/any-dict/sortable"
)

func intProject(n int) sortable.Int { return sortable.Int(n) }

func intKeyText(n int) string { return strconv.Itoa(n) }

func intKeyFromText(s string, _ string) (int, error) {
	return strconv.Atoi(s)
}

func encodeString(v string) (json.RawMessage, error) {
	return json.Marshal(v)
}

func decodeString(raw json.RawMessage) (string, error) {
	var s string

	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}

	return s, nil
}

func attrMap(t *testing.T, err error) map[string]any {
	t.Helper()

	attrs := logger.Attrs(err)
	require.NotEmpty(t, attrs)

	out := make(map[string]any, len(attrs))
	for _, attr := range attrs {
		out[attr.Key] = attr.Value.Any()
	}

	return out
}

func TestEncodeObject(t *testing.T) {
	t.Parallel()

	d := dict.New[int, sortable.Int, string](intProject)
	d.Add(2, "b")
	d.Add(1, "a")
	d.Add(10, "j")

	data, err := codec.EncodeObject(d, intKeyText, encodeString)
	require.NoError(t, err)

	// Members come out in ascending sort-key order.
	assert.Equal(t, `{"1":"a","2":"b","10":"j"}`, string(data))
}

func TestEncodeObject_Empty(t *testing.T) {
	t.Parallel()

	d := dict.New[int, sortable.Int, string](intProject)

	data, err := codec.EncodeObject(d, intKeyText, encodeString)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestEncodeObject_ValueError(t *testing.T) {
	t.Parallel()

	d := dict.Singleton(intProject, 7, "x")

	_, err := codec.EncodeObject(d, intKeyText,
		func(string) (json.RawMessage, error) {
			return nil, errors.New("unencodable")
		})

	require.Error(t, err)
	assert.Equal(t, "7", attrMap(t, err)["key"])
}

func TestDecodeObject_RoundTrip(t *testing.T) {
	t.Parallel()

	original := dict.FromPairs(intProject, []dict.Pair[int, string]{
		{Key: 3, Value: "c"},
		{Key: 1, Value: "a"},
		{Key: 2, Value: "b"},
	})

	data, err := codec.EncodeObject(original, intKeyText, encodeString)
	require.NoError(t, err)

	decoded, err := codec.DecodeObject(data, intProject, intKeyFromText, decodeString)
	require.NoError(t, err)

	assert.True(t, original.Equals(decoded, compare.Native[string]()))
}

func TestDecodeObject_NotAnObject(t *testing.T) {
	t.Parallel()

	_, err := codec.DecodeObject([]byte(`[1,2]`), intProject, intKeyFromText, decodeString)
	assert.ErrorIs(t, err, codec.ErrNotObject)
}

func TestDecodeObject_FailFastOnValue(t *testing.T) {
	t.Parallel()

	data := []byte(`{"1":"a","2":42,"3":"c"}`)

	d, err := codec.DecodeObject(data, intProject, intKeyFromText, decodeString)
	require.Error(t, err)
	assert.Nil(t, d)

	attrs := attrMap(t, err)
	assert.Equal(t, "2", attrs["key"])
	assert.Equal(t, int64(1), attrs["index"])
}

func TestDecodeObject_FailFastOnKey(t *testing.T) {
	t.Parallel()

	data := []byte(`{"1":"a","oops":"b"}`)

	d, err := codec.DecodeObject(data, intProject, intKeyFromText, decodeString)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.Equal(t, "oops", attrMap(t, err)["key"])
}

func TestDecodeObject_LaterMemberWins(t *testing.T) {
	t.Parallel()

	data := []byte(`{"1":"first","1":"second"}`)

	d, err := codec.DecodeObject(data, intProject, intKeyFromText, decodeString)
	require.NoError(t, err)

	assert.Equal(t, 1, d.Size())

	v, _ := d.Get(1)
	assert.Equal(t, "second", v)
}

func TestDecodeObject_ValueDependentKey(t *testing.T) {
	t.Parallel()

	// The member name carries only part of the key; the rest lives in the
	// value. The key parser sees both.
	type shardKey struct {
		name  string
		shard int
	}

	project := func(k shardKey) sortable.String {
		return sortable.String(fmt.Sprintf("%s/%d", k.name, k.shard))
	}

	data := []byte(`{"alice":5,"bob":9}`)

	d, err := codec.DecodeObject(data, project,
		func(name string, shard int) (shardKey, error) {
			return shardKey{name: name, shard: shard}, nil
		},
		func(raw json.RawMessage) (int, error) {
			var n int

			return n, json.Unmarshal(raw, &n)
		})
	require.NoError(t, err)

	assert.True(t, d.Contains(shardKey{name: "alice", shard: 5}))
	assert.False(t, d.Contains(shardKey{name: "alice", shard: 6}))
}

func TestDecodeObjectSimple(t *testing.T) {
	t.Parallel()

	data := []byte(`{"b":"2","a":"1"}`)

	d, err := codec.DecodeObjectSimple(data,
		func(s string) sortable.String { return sortable.String(s) },
		func(name string) string { return name },
		decodeString)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, d.Keys())
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func pointProject(p point) sortable.String {
	return sortable.String(fmt.Sprintf("%09d/%09d", p.X, p.Y))
}

func encodePoint(p point) (json.RawMessage, error) {
	return json.Marshal(p)
}

func decodePoint(raw json.RawMessage, _ string) (point, error) {
	var p point

	return p, json.Unmarshal(raw, &p)
}

func TestEncodeList_DecodeList_RoundTrip(t *testing.T) {
	t.Parallel()

	original := dict.New[point, sortable.String, string](pointProject)
	original.Add(point{X: 2, Y: 0}, "east")
	original.Add(point{X: 0, Y: 1}, "north")

	data, err := codec.EncodeList(original, encodePoint, encodeString)
	require.NoError(t, err)

	assert.Equal(t,
		`[[{"x":0,"y":1},"north"],[{"x":2,"y":0},"east"]]`,
		string(data))

	decoded, err := codec.DecodeList(data, pointProject, decodePoint, decodeString)
	require.NoError(t, err)

	assert.True(t, original.Equals(decoded, compare.Native[string]()))
}

func TestDecodeList_NotAList(t *testing.T) {
	t.Parallel()

	_, err := codec.DecodeList([]byte(`{}`), pointProject, decodePoint, decodeString)
	assert.ErrorIs(t, err, codec.ErrNotList)
}

func TestDecodeList_BadEntryShape(t *testing.T) {
	t.Parallel()

	data := []byte(`[[{"x":0,"y":0},"ok"],[{"x":1,"y":1}]]`)

	_, err := codec.DecodeList(data, pointProject, decodePoint, decodeString)
	require.ErrorIs(t, err, codec.ErrBadListEntry)
	assert.Equal(t, int64(1), attrMap(t, err)["index"])
}

func TestDecodeList_FailFastOnValue(t *testing.T) {
	t.Parallel()

	data := []byte(`[[{"x":0,"y":0},"ok"],[{"x":1,"y":1},7]]`)

	d, err := codec.DecodeList(data, pointProject, decodePoint, decodeString)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.Equal(t, int64(1), attrMap(t, err)["index"])
}
