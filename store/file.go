package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// File stores each key as <key>.json in a folder. Writes are serialised and atomic: a
// document is written to a temporary file and renamed.
type File struct {
	folder string
	mu     sync.Mutex
}

// NewFile opens the folder, creating it if needed. An empty folder is the current
// directory.
func NewFile(folder string) (*File, error) {
	if folder == "" {
		folder = "."
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", folder, err)
	}
	return &File{folder: folder}, nil
}

func (f *File) filename(key string) string { return filepath.Join(f.folder, key+".json") }

func (f *File) Load(key string, v any) error {
	name := f.filename(key)
	raw, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot read %q: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("load error: invalid file %q: %w", name, err)
	}
	return nil
}

func (f *File) Save(key string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("persist error: cannot encode %q: %w", key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	name := f.filename(key)
	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, name); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", name, err)
	}
	log.Printf("save-document name=%q", name)
	return nil
}

func (f *File) Close() error { return nil }
