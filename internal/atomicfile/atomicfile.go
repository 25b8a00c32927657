// Package atomicfile replaces files so that readers see either the old or the
// new content, never a partial write.
package atomicfile

import (
	"os"

	"github.com/google/renameio"
)

// WriteFile atomically replaces path with b. The file ends up with mode perm
// regardless of umask.
func WriteFile(path string, b []byte, perm os.FileMode) error {
	out, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer out.Cleanup()
	// renameio creates the temporary file with mode 0600.
	if err := out.Chmod(perm); err != nil {
		return err
	}
	if _, err := out.Write(b); err != nil {
		return err
	}
	return out.CloseAtomicallyReplace()
}
