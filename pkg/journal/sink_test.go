package journal

import (
	"strings"
	"testing"

	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFileSink(t *testing.T) {
	fs := vfs.NewMem()

	sink, err := CreateFileSink(fs, "data/journal")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sink.Path(), FileExtension))

	n, err := sink.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.NoError(t, sink.Sync())
	require.NoError(t, sink.Close())

	file, err := fs.Open(sink.Path())
	require.NoError(t, err)
	defer file.Close()

	buf := make([]byte, 5)
	_, err = file.ReadAt(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), buf)
}

func TestListFiles(t *testing.T) {
	fs := vfs.NewMem()

	var created []string
	for i := 0; i < 3; i++ {
		sink, err := CreateFileSink(fs, "journal")
		require.NoError(t, err)
		require.NoError(t, sink.Close())
		created = append(created, sink.Path())
	}

	// A stray non-journal file must be filtered out.
	other, err := fs.Create(fs.PathJoin("journal", "notes.txt"))
	require.NoError(t, err)
	require.NoError(t, other.Close())

	files, err := ListFiles(fs, "journal")
	require.NoError(t, err)
	assert.ElementsMatch(t, created, files)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, FileExtension))
	}
}

func TestListFiles_MissingDir(t *testing.T) {
	fs := vfs.NewMem()

	_, err := ListFiles(fs, "does-not-exist")
	assert.Error(t, err)
}
