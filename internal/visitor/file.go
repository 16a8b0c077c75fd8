package visitor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores the visitor id in a single local file, the
// terminal-client analog of the browser's localStorage key.
type FileBackend struct {
	Path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// DefaultPath places the id under the user config dir, falling back to
// the working directory when the config dir cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".shopfront_visitor"
	}
	return filepath.Join(dir, "shopfront", "visitor_id")
}

func (f *FileBackend) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *FileBackend) Save(id string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(id+"\n"), 0o600)
}
