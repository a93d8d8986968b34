package docroot

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// FS is what the server needs from a filesystem
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// OS is the FS backed by the operating system
type OS struct{}

func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (OS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Root maps request paths onto files under a fixed directory.
type Root struct {
	fs          FS
	dir         string
	defaultFile string
}

func New(fsys FS, dir, defaultFile string) *Root {
	return &Root{
		fs:          fsys,
		dir:         strings.TrimRight(dir, "/"),
		defaultFile: defaultFile,
	}
}

// Resolve concatenates the root and the path verbatim, appending the default file
// to paths ending with a slash. Paths not starting with a slash get one. Paths
// containing a ".." segment would escape the root, so they are refused.
func (r *Root) Resolve(path string) (name string, ok bool) {
	if !isSafe(path) {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(r.dir) + 1 + len(path) + len(r.defaultFile))
	b.WriteString(r.dir)
	if len(path) == 0 || path[0] != '/' {
		b.WriteByte('/')
	}

	b.WriteString(path)
	if len(path) == 0 || path[len(path)-1] == '/' {
		b.WriteString(r.defaultFile)
	}

	return b.String(), true
}

// Exists returns false only if the file definitely doesn't exist. Any other failure
// leaves it to Open to find out what's wrong.
func (r *Root) Exists(name string) bool {
	_, err := r.fs.Stat(name)
	return !errors.Is(err, fs.ErrNotExist)
}

func (r *Root) Open(name string) (io.ReadCloser, error) {
	return r.fs.Open(name)
}

// isSafe checks for path traversal, looking for ".." segments. Both slashes are
// separators, as some systems accept backslashes too
func isSafe(path string) bool {
	for len(path) > 0 {
		sep := strings.IndexAny(path, `/\`)
		segment := path
		if sep == -1 {
			path = ""
		} else {
			segment, path = path[:sep], path[sep+1:]
		}

		if segment == ".." {
			return false
		}
	}

	return true
}
