package snapshot

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

func NewStore(dir string) (*Store, error) {
	s := &Store{}

	if dir == "" {
		return s, nil
	}

	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, fmt.Errorf("create store failed: %w", err)
	} else if !exists {
		return nil, errors.New("dir not exists")
	}

	s.fs = afero.NewBasePathFs(fs, dir)
	return s, nil
}

// Store persists BMP snapshots on disk. A Store without a directory is
// a no-op sink.
type Store struct {
	fs afero.Fs
}

// Save writes the BMP bytes under a fresh id and returns the filename.
func (s *Store) Save(bs []byte) (string, error) {
	if s.fs == nil {
		return "", errors.New("no store dir configured")
	}

	name := xid.New().String() + ".bmp"
	if err := afero.WriteFile(s.fs, name, bs, 0644); err != nil {
		return "", err
	}

	return name, nil
}

// List returns stored snapshot names, oldest first (xid sorts by time).
func (s *Store) List() ([]string, error) {
	if s.fs == nil {
		return nil, nil
	}

	infos, err := afero.ReadDir(s.fs, ".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, info := range infos {
		if !info.IsDir() {
			names = append(names, info.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}
