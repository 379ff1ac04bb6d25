package repositories

import (
	"context"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/google/uuid"
)

// PropertyFilter selects active listings. Zero values mean "no filter";
// the set filters are combined with AND.
type PropertyFilter struct {
	PropertyType entities.PropertyType
	ListingType  entities.ListingType
	MinPrice     float64
	MaxPrice     float64
	MinBedrooms  int
	MinBathrooms int
	Offset       int
	Limit        int
}

// PropertyRepository only ever reads rows with is_active = true. Finders
// return (nil, nil) when no row matches.
type PropertyRepository interface {
	Create(ctx context.Context, property *entities.Property) (*entities.Property, error)
	FindActiveById(ctx context.Context, id uuid.UUID) (*entities.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]*entities.Property, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error)
	Patch(ctx context.Context, id uuid.UUID, patch entities.PropertyPatch) (*entities.Property, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	DeactivateByOwner(ctx context.Context, ownerID uuid.UUID) error
}
