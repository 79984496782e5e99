package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
	"github.com/srgjo27/attraction_wishlist/internal/core/ports"
)

// CatalogService keeps the most recently loaded catalog for browsing.
type CatalogService struct {
	loader ports.CatalogLoader
	name   string
	logger *zap.Logger

	mu          sync.RWMutex
	attractions []domain.Attraction
	lastErr     error
}

func NewCatalogService(loader ports.CatalogLoader, name string, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogService{
		loader: loader,
		name:   name,
		logger: logger,
	}
}

// Load reads the catalog again. A failure keeps the previously loaded
// attractions and is reported through LastError as well.
func (s *CatalogService) Load(ctx context.Context) ([]domain.Attraction, error) {
	attractions, err := s.loader.LoadAttractions(ctx, s.name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = err
		s.logger.Error("Could not load catalog", zap.String("catalog", s.name), zap.Error(err))
		return nil, err
	}

	s.attractions = attractions
	s.lastErr = nil
	s.logger.Info("Catalog loaded", zap.String("catalog", s.name), zap.Int("count", len(attractions)))

	return cloneAttractions(attractions), nil
}

func (s *CatalogService) Attractions() []domain.Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAttractions(s.attractions)
}

func (s *CatalogService) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

func (s *CatalogService) Filter(filter domain.Filter) []domain.Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filter.Apply(s.attractions)
}

func (s *CatalogService) Types() []domain.AttractionType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.DistinctTypes(s.attractions)
}

func (s *CatalogService) Find(id string) (domain.Attraction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.attractions {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Attraction{}, false
}
