package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) repositories.PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&PropertyModel{}).Where("is_active = ?", true)
}

func (r *PropertyRepository) Create(ctx context.Context, property *entities.Property) (*entities.Property, error) {
	propertyModel := mapPropertyToModel(property)

	if err := r.db.WithContext(ctx).Create(&propertyModel).Error; err != nil {
		return nil, err
	}

	return r.FindActiveById(ctx, propertyModel.Id)
}

func (r *PropertyRepository) FindActiveById(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	var propertyModel PropertyModel
	if err := r.active(ctx).Where("id = ?", id).First(&propertyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapPropertyToEntity(&propertyModel), nil
}

// List applies every set filter with AND. Results carry no explicit order.
func (r *PropertyRepository) List(ctx context.Context, filter repositories.PropertyFilter) ([]*entities.Property, error) {
	query := r.active(ctx)

	if filter.PropertyType != "" {
		query = query.Where("property_type = ?", string(filter.PropertyType))
	}
	if filter.ListingType != "" {
		query = query.Where("listing_type = ?", string(filter.ListingType))
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.MinBedrooms > 0 {
		query = query.Where("bedrooms >= ?", filter.MinBedrooms)
	}
	if filter.MinBathrooms > 0 {
		query = query.Where("bathrooms >= ?", filter.MinBathrooms)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var propertyModels []PropertyModel
	if err := query.Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	return mapPropertiesToEntities(propertyModels), nil
}

func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Property, error) {
	var propertyModels []PropertyModel
	if err := r.active(ctx).Where("owner_id = ?", ownerID).Find(&propertyModels).Error; err != nil {
		return nil, err
	}

	return mapPropertiesToEntities(propertyModels), nil
}

// Patch writes only the columns present in patch and returns the stored row.
func (r *PropertyRepository) Patch(ctx context.Context, id uuid.UUID, patch entities.PropertyPatch) (*entities.Property, error) {
	updates := patchColumns(patch)
	updates["updated_at"] = r.db.NowFunc()

	if err := r.active(ctx).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindActiveById(ctx, id)
}

// Deactivate hides a listing. The row itself is kept.
func (r *PropertyRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&PropertyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": r.db.NowFunc()}).Error
}

func (r *PropertyRepository) DeactivateByOwner(ctx context.Context, ownerID uuid.UUID) error {
	return r.active(ctx).
		Where("owner_id = ?", ownerID).
		Updates(map[string]any{"is_active": false, "updated_at": r.db.NowFunc()}).Error
}

func patchColumns(patch entities.PropertyPatch) map[string]any {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Bedrooms != nil {
		updates["bedrooms"] = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		updates["bathrooms"] = *patch.Bathrooms
	}
	if patch.Size != nil {
		updates["size"] = *patch.Size
	}
	if patch.PropertyType != nil {
		updates["property_type"] = string(*patch.PropertyType)
	}
	if patch.ListingType != nil {
		updates["listing_type"] = string(*patch.ListingType)
	}
	if patch.Features != nil {
		updates["features"] = datatypes.NewJSONSlice(patch.Features)
	}
	if patch.Amenities != nil {
		updates["amenities"] = datatypes.NewJSONSlice(patch.Amenities)
	}
	if patch.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(patch.Images)
	}
	if patch.Lat != nil {
		updates["lat"] = *patch.Lat
	}
	if patch.Lng != nil {
		updates["lng"] = *patch.Lng
	}
	if patch.ContactName != nil {
		updates["contact_name"] = *patch.ContactName
	}
	if patch.ContactPhone != nil {
		updates["contact_phone"] = *patch.ContactPhone
	}
	if patch.ContactEmail != nil {
		updates["contact_email"] = *patch.ContactEmail
	}
	return updates
}

func mapPropertyToModel(property *entities.Property) PropertyModel {
	return PropertyModel{
		Id:           property.Id,
		OwnerId:      property.OwnerId,
		CreatedAt:    property.CreatedAt,
		UpdatedAt:    property.UpdatedAt,
		Title:        property.Title,
		Description:  property.Description,
		Address:      property.Address,
		Price:        property.Price,
		Bedrooms:     property.Bedrooms,
		Bathrooms:    property.Bathrooms,
		Size:         property.Size,
		PropertyType: string(property.PropertyType),
		ListingType:  string(property.ListingType),
		Features:     datatypes.NewJSONSlice(nonNil(property.Features)),
		Amenities:    datatypes.NewJSONSlice(nonNil(property.Amenities)),
		Images:       datatypes.NewJSONSlice(nonNil(property.Images)),
		Lat:          property.Lat,
		Lng:          property.Lng,
		ContactName:  property.ContactName,
		ContactPhone: property.ContactPhone,
		ContactEmail: property.ContactEmail,
		IsActive:     property.IsActive,
	}
}

func mapPropertyToEntity(propertyModel *PropertyModel) *entities.Property {
	return &entities.Property{
		Id:           propertyModel.Id,
		OwnerId:      propertyModel.OwnerId,
		CreatedAt:    propertyModel.CreatedAt,
		UpdatedAt:    propertyModel.UpdatedAt,
		Title:        propertyModel.Title,
		Description:  propertyModel.Description,
		Address:      propertyModel.Address,
		Price:        propertyModel.Price,
		Bedrooms:     propertyModel.Bedrooms,
		Bathrooms:    propertyModel.Bathrooms,
		Size:         propertyModel.Size,
		PropertyType: entities.PropertyType(propertyModel.PropertyType),
		ListingType:  entities.ListingType(propertyModel.ListingType),
		Features:     nonNil(propertyModel.Features),
		Amenities:    nonNil(propertyModel.Amenities),
		Images:       nonNil(propertyModel.Images),
		Lat:          propertyModel.Lat,
		Lng:          propertyModel.Lng,
		ContactName:  propertyModel.ContactName,
		ContactPhone: propertyModel.ContactPhone,
		ContactEmail: propertyModel.ContactEmail,
		IsActive:     propertyModel.IsActive,
	}
}

func mapPropertiesToEntities(propertyModels []PropertyModel) []*entities.Property {
	properties := make([]*entities.Property, 0, len(propertyModels))
	for i := range propertyModels {
		properties = append(properties, mapPropertyToEntity(&propertyModels[i]))
	}
	return properties
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
