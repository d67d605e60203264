package project_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turboMaCk/any-dict/dict"
	"github.com/turboMaCk/any-dict/project"
	"github.com/turboMaCk/any-dict/sortable"
)

func TestFold(t *testing.T) {
	t.Parallel()

	assert.Equal(t, project.Fold("HELLO"), project.Fold("hello"))
	assert.Equal(t, project.Fold("Straße"), project.Fold("STRASSE"))
	assert.NotEqual(t, project.Fold("hello"), project.Fold("world"))
}

func TestFold_AsDictionaryProjection(t *testing.T) {
	t.Parallel()

	d := dict.New[string, sortable.String, int](project.Fold)
	d.Add("Frank", 1)

	v, ok := d.Get("fRANK")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	k, _ := d.GetKey("frank")
	assert.Equal(t, "Frank", k)
}

func TestNorm(t *testing.T) {
	t.Parallel()

	// Composed U+00E9 vs decomposed "e" + U+0301.
	composed := "café"
	decomposed := "café"

	assert.Equal(t, project.Norm(composed), project.Norm(decomposed))
	// Norm stays case-sensitive.
	assert.NotEqual(t, project.Norm("Café"), project.Norm("café"))
}

func TestText(t *testing.T) {
	t.Parallel()

	u1, err := url.Parse("https://example.com/a")
	require.NoError(t, err)

	u2, err := url.Parse("https://example.com/b")
	require.NoError(t, err)

	assert.True(t, project.Text(u1).LessThan(project.Text(u2)))
	assert.True(t, project.Text(u1).Equals(project.Text(u1)))
}

func TestHash64(t *testing.T) {
	t.Parallel()

	// Deterministic across calls.
	assert.Equal(t, project.Hash64([]byte("key")), project.Hash64([]byte("key")))
	assert.Equal(t, project.Hash64([]byte("key")), project.Hash64String("key"))
	assert.NotEqual(t, project.Hash64String("key"), project.Hash64String("other"))
}
