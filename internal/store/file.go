package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// fileStore keeps the mapping in memory and mirrors it to a JSON file.
type fileStore struct {
	path string
	mem  *memory
}

// NewFileStore loads path (a missing file is an empty store) and persists every
// Put back to it.
func NewFileStore(path string) (CustomGames, error) {
	seed := map[string]string{}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	case len(b) > 0:
		if err := json.Unmarshal(b, &seed); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	log.Info().Str("path", path).Int("games", len(seed)).Msg("custom games loaded")
	return &fileStore{path: path, mem: newMemory(seed)}, nil
}

func (f *fileStore) Get(ctx context.Context, code string) (string, error) {
	return f.mem.Get(ctx, code)
}

func (f *fileStore) Put(_ context.Context, code, key string) error {
	f.mem.mu.Lock()
	defer f.mem.mu.Unlock()

	cur := *f.mem.games.Load()
	next, err := f.mem.put(code, key)
	if err != nil {
		return err
	}
	if err := f.write(next); err != nil {
		f.mem.games.Store(&cur)
		return err
	}
	return nil
}

// write replaces the file atomically via a temp file and rename.
func (f *fileStore) write(games map[string]string) error {
	b, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".custom_games-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("rename to %s: %w", f.path, err)
	}
	return nil
}
