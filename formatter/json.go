package formatter

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"os"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// prettyIndent matches the four-space indentation of the simulator's own
// sample inputs.
const prettyIndent = "    "

// Options selects the on-disk representation of output documents.
type Options struct {
	Pretty bool // indent with four spaces
	Gzip   bool // write .json.gz instead of .json
}

// Marshal renders v as JSON, indented when pretty is set.
func Marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", prettyIndent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON persists v at pathStem with the extension implied by opts
// (".json" or ".json.gz") and returns the path actually written. Failures
// surface as *WriteError.
func WriteJSON(pathStem string, v any, opts Options) (string, error) {
	path := pathStem + ".json"
	if opts.Gzip {
		path += ".gz"
	}

	data, err := Marshal(v, opts.Pretty)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	if opts.Gzip {
		zw := gzip.NewWriter(f)
		_, werr := zw.Write(data)
		if cerr := zw.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			f.Close()
			return "", &WriteError{Path: path, Err: werr}
		}
	} else if _, err := f.Write(data); err != nil {
		f.Close()
		return "", &WriteError{Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}
	return path, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	return nil
}
