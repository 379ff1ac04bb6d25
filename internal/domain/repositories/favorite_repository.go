package repositories

import (
	"context"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/google/uuid"
)

type FavoriteRepository interface {
	// Add is idempotent: saving an already saved listing is not an error.
	Add(ctx context.Context, favorite *entities.Favorite) error
	// Remove reports whether a favorite was deleted.
	Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	ListProperties(ctx context.Context, userID uuid.UUID) ([]*entities.Property, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
