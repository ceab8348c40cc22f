package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteTree writes tree into a staging directory next to outDir, then swaps
// it into place. Whatever outDir held before is removed. On failure the
// previous contents are left untouched.
func WriteTree(tree *Tree, outDir string) error {
	outDir = filepath.Clean(outDir)
	parent := filepath.Dir(outDir)

	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("creating output parent %s: %w", parent, err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(outDir)+".staging-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	if err := writeFiles(tree.Files, staging); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	if err := os.Chmod(staging, dirPerm); err != nil {
		_ = os.RemoveAll(staging)
		return fmt.Errorf("setting permissions on %s: %w", staging, err)
	}

	return swapDir(staging, outDir)
}

func writeFiles(files []File, root string) error {
	for _, file := range files {
		outputPath := filepath.Join(root, filepath.FromSlash(file.Path))

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}

// swapDir renames staging to outDir, moving any existing outDir aside first
// and restoring it if the final rename fails.
func swapDir(staging, outDir string) error {
	backup := ""

	_, err := os.Lstat(outDir)

	switch {
	case err == nil:
		backup = staging + ".old"
		if err := os.Rename(outDir, backup); err != nil {
			_ = os.RemoveAll(staging)
			return fmt.Errorf("moving aside %s: %w", outDir, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		_ = os.RemoveAll(staging)
		return fmt.Errorf("inspecting %s: %w", outDir, err)
	}

	if err := os.Rename(staging, outDir); err != nil {
		if backup != "" {
			_ = os.Rename(backup, outDir)
		}

		_ = os.RemoveAll(staging)

		return fmt.Errorf("replacing %s: %w", outDir, err)
	}

	if backup != "" {
		if err := os.RemoveAll(backup); err != nil {
			return fmt.Errorf("removing previous output %s: %w", backup, err)
		}
	}

	return nil
}
