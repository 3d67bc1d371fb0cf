package tftsync

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

// writeDocument persists one output document as pretty-printed UTF-8 JSON
// with forward slashes left unescaped. The write is atomic (temp file plus
// rename) so a failed stage never leaves a truncated document behind.
func writeDocument(dir, name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrapf(err, "writer: encode %s", name)
	}

	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return eris.Wrapf(err, "writer: create temp for %s", name)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return eris.Wrapf(err, "writer: write %s", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrapf(err, "writer: close %s", name)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return eris.Wrapf(err, "writer: rename %s", name)
	}
	return nil
}
