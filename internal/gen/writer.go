package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files under baseDir, each into its own Dir.
// An absolute Dir is used as is. Missing directories are created.
func WriteFiles(files []GeneratedFile, baseDir string) error {
	for _, file := range files {
		dir := file.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}

		if err := os.WriteFile(filepath.Join(dir, file.Filename), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// FileEmitter writes each emitted file to disk as it arrives.
type FileEmitter struct {
	// BaseDir is joined with each file's Dir; empty means the working directory.
	BaseDir string
}

// Emit writes file.
func (e *FileEmitter) Emit(file *GeneratedFile) error {
	return WriteFiles([]GeneratedFile{*file}, e.BaseDir)
}
