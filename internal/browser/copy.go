package browser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// safeCopy copies a SQLite cookie store (and its -wal and -shm companions if
// present) to a temporary directory, so the browser that owns the database
// never sees a competing lock.
//
// The caller must invoke cleanup when done with the copy.
func safeCopy(srcPath string) (tempDir string, cleanup func(), err error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", nil, fmt.Errorf("browser: cookie store not found: %s", srcPath)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("browser: %s is a directory, expected a cookie store file", srcPath)
	}
	if info.Size() == 0 {
		return "", nil, fmt.Errorf("browser: cookie store at %s is empty", srcPath)
	}

	tempDir, err = os.MkdirTemp("", "cookiejar-import-*")
	if err != nil {
		return "", nil, fmt.Errorf("browser: cannot create temp directory: %w", err)
	}
	cleanup = func() {
		os.RemoveAll(tempDir)
	}

	baseName := filepath.Base(srcPath)
	if err := copyFile(srcPath, filepath.Join(tempDir, baseName)); err != nil {
		cleanup()
		return "", nil, err
	}

	// WAL and SHM copies are best-effort.
	for _, suffix := range []string{"-wal", "-shm"} {
		companion := srcPath + suffix
		if _, err := os.Stat(companion); err == nil {
			_ = copyFile(companion, filepath.Join(tempDir, baseName+suffix))
		}
	}

	return tempDir, cleanup, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("browser: cannot open source file %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("browser: cannot create destination file %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("browser: cannot copy file: %w", err)
	}
	return nil
}
