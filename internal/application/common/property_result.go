package common

import (
	"time"

	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

type PropertyResult struct {
	Id           uuid.UUID             `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Address      string                `json:"address"`
	Price        float64               `json:"price"`
	Bedrooms     int                   `json:"bedrooms"`
	Bathrooms    int                   `json:"bathrooms"`
	Size         float64               `json:"size"`
	PropertyType entities.PropertyType `json:"property_type"`
	ListingType  entities.ListingType  `json:"listing_type"`
	Features     []string              `json:"features"`
	Amenities    []string              `json:"amenities"`
	Images       []string              `json:"images"`
	Lat          *float64              `json:"lat"`
	Lng          *float64              `json:"lng"`
	OwnerId      uuid.UUID             `json:"owner_id"`
	ContactName  string                `json:"contact_name"`
	ContactPhone string                `json:"contact_phone"`
	ContactEmail string                `json:"contact_email"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	IsActive     bool                  `json:"is_active"`
}
