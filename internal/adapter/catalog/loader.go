package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/platform/validator"
)

//go:embed data/*.json
var bundle embed.FS

const (
	bundleDir = "data"
	extension = ".json"
)

// Loader reads catalog documents named "<name>.json" from a directory.
// Every call reads and decodes the document again.
type Loader struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger
}

func NewLoader(fsys afero.Fs, dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{
		fs:     fsys,
		dir:    filepath.ToSlash(dir),
		logger: logger,
	}
}

// NewBundledLoader serves the catalog compiled into the binary.
func NewBundledLoader(logger *zap.Logger) *Loader {
	return NewLoader(afero.FromIOFS{FS: bundle}, bundleDir, logger)
}

func (l *Loader) LoadAttractions(ctx context.Context, name string) ([]domain.Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !validName(name) {
		return nil, domain.InvalidData(fmt.Sprintf("invalid catalog name %q", name))
	}

	data, err := l.read(name)
	if err != nil {
		l.logger.Error("Failed to read catalog", zap.String("catalog", name), zap.Error(err))
		return nil, err
	}

	var response domain.OfferingsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		l.logger.Error("Failed to decode catalog", zap.String("catalog", name), zap.Error(err))
		return nil, domain.DecodingFailed(err)
	}

	if err := validator.Validate(response); err != nil {
		l.logger.Error("Catalog does not match the offerings shape", zap.String("catalog", name), zap.Error(err))
		return nil, domain.DecodingFailed(err)
	}

	attractions := domain.MapToAttractions(response.Responses())

	if id, ok := firstDuplicateID(attractions); ok {
		return nil, domain.InvalidData(fmt.Sprintf("duplicate attraction id %q in catalog %q", id, name))
	}

	l.logger.Debug("Catalog decoded", zap.String("catalog", name), zap.Int("count", len(attractions)))

	return attractions, nil
}

func (l *Loader) read(name string) ([]byte, error) {
	f, err := l.fs.Open(path.Join(l.dir, name+extension))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ResourceNotFound(name)
		}
		return nil, domain.ReadFailed(name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domain.ReadFailed(name, err)
	}

	return data, nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func firstDuplicateID(attractions []domain.Attraction) (string, bool) {
	seen := make(map[string]struct{}, len(attractions))
	for _, a := range attractions {
		if _, ok := seen[a.ID]; ok {
			return a.ID, true
		}
		seen[a.ID] = struct{}{}
	}
	return "", false
}
