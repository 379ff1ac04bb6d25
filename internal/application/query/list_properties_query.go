package query

import (
	"github.com/benjaminhze/cribhunter/internal/application/validation"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListPropertiesQuery mirrors the listing query string. Zero-valued
// filters are treated as absent.
type ListPropertiesQuery struct {
	PropertyType string  `query:"property_type" validate:"omitempty,oneof=hdb condo landed"`
	ListingType  string  `query:"listing_type" validate:"omitempty,oneof=rent sale"`
	MinPrice     float64 `query:"min_price" validate:"gte=0,finite"`
	MaxPrice     float64 `query:"max_price" validate:"gte=0,finite"`
	Bedrooms     int     `query:"bedrooms" validate:"gte=0"`
	Bathrooms    int     `query:"bathrooms" validate:"gte=0"`
	Skip         int     `query:"skip" validate:"gte=0"`
	Limit        int     `query:"limit" validate:"min=1,max=100"`
}

func NewListPropertiesQuery() *ListPropertiesQuery {
	return &ListPropertiesQuery{Limit: DefaultLimit}
}

func (q *ListPropertiesQuery) Validate() error {
	return validation.Struct(q)
}

func (q *ListPropertiesQuery) ToFilter() repositories.PropertyFilter {
	return repositories.PropertyFilter{
		PropertyType: entities.PropertyType(q.PropertyType),
		ListingType:  entities.ListingType(q.ListingType),
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		MinBedrooms:  q.Bedrooms,
		MinBathrooms: q.Bathrooms,
		Offset:       q.Skip,
		Limit:        q.Limit,
	}
}
