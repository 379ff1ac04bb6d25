package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeHDB    PropertyType = "hdb"
	PropertyTypeCondo  PropertyType = "condo"
	PropertyTypeLanded PropertyType = "landed"
)

func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeHDB, PropertyTypeCondo, PropertyTypeLanded:
		return true
	}
	return false
}

type ListingType string

const (
	ListingTypeRent ListingType = "rent"
	ListingTypeSale ListingType = "sale"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeRent || t == ListingTypeSale
}

type Property struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string
	Description  string
	Address      string
	Price        float64
	Bedrooms     int
	Bathrooms    int
	Size         float64
	PropertyType PropertyType
	ListingType  ListingType
	Features     []string
	Amenities    []string
	Images       []string
	Lat          *float64
	Lng          *float64
	ContactName  string
	ContactPhone string
	ContactEmail string
	IsActive     bool
}

// NewProperty returns an active listing owned by ownerID. Nil lists are
// normalised to empty ones.
func NewProperty(ownerID uuid.UUID) *Property {
	now := time.Now().UTC()
	return &Property{
		Id:        uuid.New(),
		OwnerId:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
		Features:  []string{},
		Amenities: []string{},
		Images:    []string{},
		IsActive:  true,
	}
}

func (p *Property) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerId == userID
}

func (p *Property) Validate() error {
	if p.OwnerId == uuid.Nil {
		return errors.New("owner_id must not be empty")
	}
	if p.Title == "" || p.Description == "" || p.Address == "" {
		return errors.New("title, description and address must not be empty")
	}
	if p.Price <= 0 {
		return errors.New("price must be greater than 0")
	}
	if p.Size <= 0 {
		return errors.New("size must be greater than 0")
	}
	if p.Bedrooms < 0 || p.Bathrooms < 0 {
		return errors.New("bedrooms and bathrooms must not be negative")
	}
	if !p.PropertyType.IsValid() {
		return errors.New("property_type must be one of hdb, condo, landed")
	}
	if !p.ListingType.IsValid() {
		return errors.New("listing_type must be rent or sale")
	}
	if p.ContactName == "" || p.ContactPhone == "" || p.ContactEmail == "" {
		return errors.New("contact details must not be empty")
	}
	return nil
}

// PropertyPatch holds a partial update. Nil fields are absent and leave
// the stored value unchanged; lists replace the stored list wholesale.
type PropertyPatch struct {
	Title        *string
	Description  *string
	Address      *string
	Price        *float64
	Bedrooms     *int
	Bathrooms    *int
	Size         *float64
	PropertyType *PropertyType
	ListingType  *ListingType
	Features     []string
	Amenities    []string
	Images       []string
	Lat          *float64
	Lng          *float64
	ContactName  *string
	ContactPhone *string
	ContactEmail *string
}

func (pp PropertyPatch) IsEmpty() bool {
	return pp.Title == nil && pp.Description == nil && pp.Address == nil &&
		pp.Price == nil && pp.Bedrooms == nil && pp.Bathrooms == nil && pp.Size == nil &&
		pp.PropertyType == nil && pp.ListingType == nil &&
		pp.Features == nil && pp.Amenities == nil && pp.Images == nil &&
		pp.Lat == nil && pp.Lng == nil &&
		pp.ContactName == nil && pp.ContactPhone == nil && pp.ContactEmail == nil
}

// Apply copies the present fields of the patch onto p.
func (p *Property) Apply(pp PropertyPatch) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Address != nil {
		p.Address = *pp.Address
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Bedrooms != nil {
		p.Bedrooms = *pp.Bedrooms
	}
	if pp.Bathrooms != nil {
		p.Bathrooms = *pp.Bathrooms
	}
	if pp.Size != nil {
		p.Size = *pp.Size
	}
	if pp.PropertyType != nil {
		p.PropertyType = *pp.PropertyType
	}
	if pp.ListingType != nil {
		p.ListingType = *pp.ListingType
	}
	if pp.Features != nil {
		p.Features = pp.Features
	}
	if pp.Amenities != nil {
		p.Amenities = pp.Amenities
	}
	if pp.Images != nil {
		p.Images = pp.Images
	}
	if pp.Lat != nil {
		p.Lat = pp.Lat
	}
	if pp.Lng != nil {
		p.Lng = pp.Lng
	}
	if pp.ContactName != nil {
		p.ContactName = *pp.ContactName
	}
	if pp.ContactPhone != nil {
		p.ContactPhone = *pp.ContactPhone
	}
	if pp.ContactEmail != nil {
		p.ContactEmail = *pp.ContactEmail
	}
	p.UpdatedAt = time.Now().UTC()
}
