package catalogfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hap-catalog-generator/internal/catalog"
)

// LoadFile decodes the catalog at path. The returned count is the number of
// dropped records.
func LoadFile(path string) (*catalog.Catalog, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	dec := NewDecoder(f)

	c, err := dec.Decode()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return c, dec.Dropped, nil
}

// WriteFile encodes c to path. The previous file is replaced only once the
// new content is fully written.
func WriteFile(path string, c *catalog.Catalog) (err error) {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync catalog %s: %w", path, err)
	}

	if err = errors.Join(tmp.Close(), os.Chmod(tmp.Name(), 0o644)); err != nil {
		return fmt.Errorf("failed to finalize catalog %s: %w", path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace catalog %s: %w", path, err)
	}

	return nil
}
