package ports

import (
	"context"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
)

// WishlistStore persists the wishlist document. Load returns an empty list
// when nothing has been saved yet.
type WishlistStore interface {
	Load(ctx context.Context) ([]domain.Attraction, error)
	Save(ctx context.Context, attractions []domain.Attraction) error
}

// CatalogLoader resolves a logical catalog name to mapped attractions.
type CatalogLoader interface {
	LoadAttractions(ctx context.Context, name string) ([]domain.Attraction, error)
}
