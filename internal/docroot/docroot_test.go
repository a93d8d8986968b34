package docroot

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	root := New(OS{}, "/srv/www/", "index.html")

	tcs := []struct {
		Path, Want string
	}{
		{"/", "/srv/www/index.html"},
		{"/index.html", "/srv/www/index.html"},
		{"/docs/", "/srv/www/docs/index.html"},
		{"/docs", "/srv/www/docs"},
		{"/my file.txt", "/srv/www/my file.txt"},
		{"relative.txt", "/srv/www/relative.txt"},
		{"", "/srv/www/index.html"},
		{"/..hidden/a..b", "/srv/www/..hidden/a..b"},
	}

	for _, tc := range tcs {
		name, ok := root.Resolve(tc.Path)
		require.True(t, ok, tc.Path)
		require.Equal(t, tc.Want, name)
	}
}

func TestTraversal(t *testing.T) {
	root := New(OS{}, ".", "index.html")

	for _, path := range []string{"/..", "/../etc/passwd", "/a/../../b", "/a/..", `/a\..\b`, ".."} {
		_, ok := root.Resolve(path)
		require.False(t, ok, path)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello"), 0o644))
	root := New(OS{}, dir, "index.html")

	t.Run("existing", func(t *testing.T) {
		name, ok := root.Resolve("/hello.txt")
		require.True(t, ok)
		require.True(t, root.Exists(name))

		file, err := root.Open(name)
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "hello", string(content))
	})

	t.Run("missing", func(t *testing.T) {
		name, ok := root.Resolve("/nope.txt")
		require.True(t, ok)
		require.False(t, root.Exists(name))
	})

	t.Run("missing default file", func(t *testing.T) {
		name, ok := root.Resolve("/")
		require.True(t, ok)
		require.False(t, root.Exists(name))
	})
}
