package entities

import (
	"time"

	"github.com/google/uuid"
)

// Favorite records that a user saved a listing.
type Favorite struct {
	UserId     uuid.UUID
	PropertyId uuid.UUID
	CreatedAt  time.Time
}

func NewFavorite(userID, propertyID uuid.UUID) *Favorite {
	return &Favorite{
		UserId:     userID,
		PropertyId: propertyID,
		CreatedAt:  time.Now().UTC(),
	}
}
