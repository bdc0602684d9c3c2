package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mdobak/go-xerrors"
)

// FilePersister saves and loads store snapshots as a JSON file.
type FilePersister struct {
	mu   sync.Mutex
	path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

func (p *FilePersister) Path() string {
	return p.path
}

// Load restores s from the file. A missing file is not an error.
func (p *FilePersister) Load(s *Store) error {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return xerrors.Newf("read snapshot %s: %w", p.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return xerrors.Newf("decode snapshot %s: %w", p.path, err)
	}
	s.Restore(snap)

	return nil
}

// Save writes the current contents of s. The file is replaced atomically.
// Saves are serialized from snapshot to rename, so the file always holds
// the latest snapshot taken.
func (p *FilePersister) Save(s *Store) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return xerrors.Newf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.path), filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return xerrors.Newf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return xerrors.Newf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return xerrors.Newf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return xerrors.Newf("replace snapshot %s: %w", p.path, err)
	}

	return nil
}
