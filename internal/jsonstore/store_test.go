package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestCollection(t *testing.T) *Collection[record] {
	t.Helper()
	c, err := Open[record](filepath.Join(t.TempDir(), "records.json"),
		func(r record) string { return r.ID })
	require.NoError(t, err)
	return c
}

func TestReadAllMissingFile(t *testing.T) {
	c := openTestCollection(t)

	items := c.ReadAll()
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReadAllCorruptFile(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, os.WriteFile(c.Path(), []byte("{not json"), 0o644))

	items := c.ReadAll()
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAppendAndReadAll(t *testing.T) {
	c := openTestCollection(t)

	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))
	require.NoError(t, c.Append(record{ID: "2", Name: "two"}))

	items := c.ReadAll()
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)
}

func TestReplace(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))

	matched, err := c.Replace(record{ID: "1", Name: "uno"})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, "uno", c.ReadAll()[0].Name)
}

func TestReplaceUnmatched(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))

	matched, err := c.Replace(record{ID: "404", Name: "none"})
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Len(t, c.ReadAll(), 1)
}

func TestRemove(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))
	require.NoError(t, c.Append(record{ID: "2", Name: "two"}))

	require.NoError(t, c.Remove("1"))

	items := c.ReadAll()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)

	// absent id is not an error
	require.NoError(t, c.Remove("404"))
	assert.Len(t, c.ReadAll(), 1)
}

func TestClear(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))

	require.NoError(t, c.Clear())
	assert.Empty(t, c.ReadAll())

	// file now holds the empty collection, not nothing
	data, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSize(t *testing.T) {
	c := openTestCollection(t)
	require.NoError(t, c.Append(record{ID: "1", Name: "one"}))

	n, bytes := c.Size()
	assert.Equal(t, 1, n)
	assert.Greater(t, bytes, int64(0))
}
