package gen

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WriteDebugUnformatted writes source that failed formatting to a sidecar
// file under dir, mirroring its tree path. This is best-effort and should
// never make generation fail harder.
func WriteDebugUnformatted(dir, filePath string, content []byte) error {
	if dir == "" || filePath == "" {
		return nil
	}

	// Keep the extension so editors can syntax highlight.
	ext := path.Ext(filePath)
	debugName := strings.TrimSuffix(filePath, ext) + ".unformatted" + ext
	p := filepath.Join(dir, filepath.FromSlash(debugName))

	if err := os.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return err
	}

	return os.WriteFile(p, content, filePerm)
}
