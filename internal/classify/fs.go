package classify

import (
	"io"
	"os"
	"path/filepath"
)

// FS is the minimal filesystem capability the classifier needs. Keeping the
// surface this small lets tests drive the walk against a fake without real
// archives.
type FS interface {
	// Walk visits every regular file under root, at any depth.
	Walk(root string, fn func(path string) error) error
	ReadFile(path string) ([]byte, error)
	MkdirAll(dir string) error
	// Move relocates a file; the source must not remain afterwards.
	Move(src, dst string) error
}

// OSFS implements FS against the real filesystem.
type OSFS struct{}

func (OSFS) Walk(root string, fn func(path string) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		return fn(path)
	})
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSFS) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// Move renames src to dst, falling back to copy+delete when rename fails
// (cross-device moves between scratch and workspace).
func (OSFS) Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
