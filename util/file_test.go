package util

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFileCreatesParents(t *testing.T) {
	p := path.Join(t.TempDir(), "nested", "out.txt")
	require.NoError(t, WriteToFile(p, "a", "b"))

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", string(bs))
}

func TestAppendToFile(t *testing.T) {
	p := path.Join(t.TempDir(), "out.txt")
	require.NoError(t, AppendToFile(p, "a"))
	require.NoError(t, AppendToFile(p, "b"))

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(bs))
}
