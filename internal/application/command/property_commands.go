package command

import (
	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/validation"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

type CreatePropertyCommand struct {
	Title        string                `json:"title" validate:"required,max=200"`
	Description  string                `json:"description" validate:"required,max=2000"`
	Address      string                `json:"address" validate:"required,max=500"`
	Price        float64               `json:"price" validate:"gt=0,finite"`
	Bedrooms     *int                  `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms    *int                  `json:"bathrooms" validate:"required,gte=0"`
	Size         float64               `json:"size" validate:"gt=0,finite"`
	PropertyType entities.PropertyType `json:"property_type" validate:"required,oneof=hdb condo landed"`
	ListingType  entities.ListingType  `json:"listing_type" validate:"required,oneof=rent sale"`
	Features     []string              `json:"features,omitempty"`
	Amenities    []string              `json:"amenities,omitempty"`
	Images       []string              `json:"images,omitempty"`
	Lat          *float64              `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng          *float64              `json:"lng,omitempty" validate:"omitempty,longitude"`
	ContactName  string                `json:"contact_name" validate:"required,max=100"`
	ContactPhone string                `json:"contact_phone" validate:"required,len=8,number"`
	ContactEmail string                `json:"contact_email" validate:"required,email"`
}

func (c *CreatePropertyCommand) Validate() error {
	return validation.Struct(c)
}

// ToEntity builds a new active listing owned by ownerID.
func (c *CreatePropertyCommand) ToEntity(ownerID uuid.UUID) *entities.Property {
	property := entities.NewProperty(ownerID)
	property.Title = c.Title
	property.Description = c.Description
	property.Address = c.Address
	property.Price = c.Price
	property.Bedrooms = *c.Bedrooms
	property.Bathrooms = *c.Bathrooms
	property.Size = c.Size
	property.PropertyType = c.PropertyType
	property.ListingType = c.ListingType
	if c.Features != nil {
		property.Features = c.Features
	}
	if c.Amenities != nil {
		property.Amenities = c.Amenities
	}
	if c.Images != nil {
		property.Images = c.Images
	}
	property.Lat = c.Lat
	property.Lng = c.Lng
	property.ContactName = c.ContactName
	property.ContactPhone = c.ContactPhone
	property.ContactEmail = c.ContactEmail
	return property
}

// UpdatePropertyCommand carries a partial update. Absent and null fields
// are both ignored; lists that are present replace the stored list.
type UpdatePropertyCommand struct {
	PropertyId   uuid.UUID              `json:"-"`
	Title        *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string                `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Address      *string                `json:"address,omitempty" validate:"omitempty,min=1,max=500"`
	Price        *float64               `json:"price,omitempty" validate:"omitempty,gt=0,finite"`
	Bedrooms     *int                   `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int                   `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Size         *float64               `json:"size,omitempty" validate:"omitempty,gt=0,finite"`
	PropertyType *entities.PropertyType `json:"property_type,omitempty" validate:"omitempty,oneof=hdb condo landed"`
	ListingType  *entities.ListingType  `json:"listing_type,omitempty" validate:"omitempty,oneof=rent sale"`
	Features     []string               `json:"features,omitempty"`
	Amenities    []string               `json:"amenities,omitempty"`
	Images       []string               `json:"images,omitempty"`
	Lat          *float64               `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng          *float64               `json:"lng,omitempty" validate:"omitempty,longitude"`
	ContactName  *string                `json:"contact_name,omitempty" validate:"omitempty,min=1,max=100"`
	ContactPhone *string                `json:"contact_phone,omitempty" validate:"omitempty,len=8,number"`
	ContactEmail *string                `json:"contact_email,omitempty" validate:"omitempty,email"`
}

func (c *UpdatePropertyCommand) Validate() error {
	return validation.Struct(c)
}

func (c *UpdatePropertyCommand) ToPatch() entities.PropertyPatch {
	return entities.PropertyPatch{
		Title:        c.Title,
		Description:  c.Description,
		Address:      c.Address,
		Price:        c.Price,
		Bedrooms:     c.Bedrooms,
		Bathrooms:    c.Bathrooms,
		Size:         c.Size,
		PropertyType: c.PropertyType,
		ListingType:  c.ListingType,
		Features:     c.Features,
		Amenities:    c.Amenities,
		Images:       c.Images,
		Lat:          c.Lat,
		Lng:          c.Lng,
		ContactName:  c.ContactName,
		ContactPhone: c.ContactPhone,
		ContactEmail: c.ContactEmail,
	}
}

type PropertyCommandResult struct {
	Result *common.PropertyResult `json:"result"`
}
