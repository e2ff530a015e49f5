package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"", "paste"},
		{"-", "paste"},
		{"notes.html", "notes"},
		{"/tmp/clip board.htm", "clip_board"},
		{"https://example.com", "example_com"},
		{"https://example.com/docs/intro/", "example_com_docs_intro"},
		{"https://example.com/blog/post.html?x=1", "example_com_blog_post"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.source))
		})
	}
}

func TestWriteToStdout(t *testing.T) {
	var stdout bytes.Buffer
	w, err := New("", &stdout)
	require.NoError(t, err)
	assert.True(t, w.ToStdout())

	path, err := w.Write("notes.html", []byte("# Hi\n"), ".md")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "# Hi\n", stdout.String())
}

func TestWriteToDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	var stdout bytes.Buffer

	w, err := New(dir, &stdout)
	require.NoError(t, err)
	assert.False(t, w.ToStdout())

	path, err := w.Write("https://example.com/docs", []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_docs.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
	assert.Zero(t, stdout.Len())
}
