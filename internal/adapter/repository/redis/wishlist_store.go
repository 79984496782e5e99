package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
)

const DefaultKey = "wishlist:attractions"

// WishlistStore keeps the wishlist document under a single key. SET replaces
// the value atomically.
type WishlistStore struct {
	client goredis.Cmdable
	key    string
}

func NewWishlistStore(client goredis.Cmdable, key string) *WishlistStore {
	if key == "" {
		key = DefaultKey
	}
	return &WishlistStore{client: client, key: key}
}

func (s *WishlistStore) Load(ctx context.Context) ([]domain.Attraction, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
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
	if attractions == nil {
		attractions = []domain.Attraction{}
	}

	data, err := json.Marshal(attractions)
	if err != nil {
		return domain.EncodingFailed(err)
	}

	if err := s.client.Set(ctx, s.key, string(data), 0).Err(); err != nil {
		return domain.FileOperationFailed(err)
	}

	return nil
}
