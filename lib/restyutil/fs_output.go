package restyutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FilesystemOutput writes one file per http exchange under a fixed
// directory, named by message id.
type FilesystemOutput struct {
	dir string
}

// NewFilesystemOutput clears out whatever a previous run left under
// dir and recreates it empty.
func NewFilesystemOutput(dir string) (FilesystemOutput, error) {
	err := os.RemoveAll(dir)
	if err != nil {
		return FilesystemOutput{}, fmt.Errorf("clear dump directory: %w", err)
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return FilesystemOutput{}, fmt.Errorf("create dump directory: %w", err)
	}
	return FilesystemOutput{dir: dir}, nil
}

// Write is best-effort, a failed dump only warns since debug output
// should never break the request it describes.
func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.dir, id+".txt"), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write message info file", "id", id, "err", err)
	}
}
