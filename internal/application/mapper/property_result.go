package mapper

import (
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

func NewPropertyResultFromEntity(property *entities.Property) *common.PropertyResult {
	return &common.PropertyResult{
		Id:           property.Id,
		Title:        property.Title,
		Description:  property.Description,
		Address:      property.Address,
		Price:        property.Price,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Size:         property.Size,
		PropertyType: property.PropertyType,
		ListingType:  property.ListingType,
		Features:     emptyIfNil(property.Features),
		Amenities:    emptyIfNil(property.Amenities),
		Images:       emptyIfNil(property.Images),
		Lat:          property.Lat,
		Lng:          property.Lng,
		OwnerId:      property.OwnerId,
		ContactName:  property.ContactName,
		ContactPhone: property.ContactPhone,
		ContactEmail: property.ContactEmail,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
		IsActive:     property.IsActive,
	}
}

func NewPropertyResultsFromEntities(properties []*entities.Property) []*common.PropertyResult {
	results := make([]*common.PropertyResult, 0, len(properties))
	for _, property := range properties {
		results = append(results, NewPropertyResultFromEntity(property))
	}
	return results
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
