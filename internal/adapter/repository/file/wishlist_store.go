package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
)

const DefaultFileName = "wishlist.json"

// WishlistStore keeps the wishlist as a JSON array in a single file. Saves
// go through a temporary file in the same directory followed by a rename, so
// readers see either the old or the new document.
type WishlistStore struct {
	fs   afero.Fs
	path string
}

func NewWishlistStore(fsys afero.Fs, path string) *WishlistStore {
	return &WishlistStore{fs: fsys, path: path}
}

func (s *WishlistStore) Path() string {
	return s.path
}

func (s *WishlistStore) Load(ctx context.Context) ([]domain.Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Attraction{}, nil
		}
		return nil, domain.FileOperationFailed(err)
	}

	var attractions []domain.Attraction
	if err := json.Unmarshal(data, &attractions); err != nil {
		return nil, domain.DecodingFailed(err)
	}

	if attractions == nil {
		attractions = []domain.Attraction{}
	}

	return attractions, nil
}

func (s *WishlistStore) Save(ctx context.Context, attractions []domain.Attraction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if attractions == nil {
		attractions = []domain.Attraction{}
	}

	data, err := json.MarshalIndent(attractions, "", "  ")
	if err != nil {
		return domain.EncodingFailed(err)
	}

	if err := s.writeAtomic(data); err != nil {
		return domain.FileOperationFailed(err)
	}

	return nil
}

func (s *WishlistStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create wishlist directory: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = s.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temporary file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temporary file: %w", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace wishlist file: %w", err)
	}

	committed = true
	return nil
}
