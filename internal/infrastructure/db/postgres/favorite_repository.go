package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) repositories.FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *entities.Favorite) error {
	favoriteModel := FavoriteModel{
		UserId:     favorite.UserId,
		PropertyId: favorite.PropertyId,
		CreatedAt:  favorite.CreatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favoriteModel).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&FavoriteModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListProperties returns the user's saved listings that are still active,
// most recently saved first.
func (r *FavoriteRepository) ListProperties(ctx context.Context, userID uuid.UUID) ([]*entities.Property, error) {
	var propertyModels []PropertyModel
	err := r.db.WithContext(ctx).
		Model(&PropertyModel{}).
		Select("properties.*").
		Joins("JOIN favorites ON favorites.property_id = properties.id").
		Where("favorites.user_id = ? AND properties.is_active = ?", userID, true).
		Order("favorites.created_at DESC").
		Find(&propertyModels).Error
	if err != nil {
		return nil, err
	}

	return mapPropertiesToEntities(propertyModels), nil
}

func (r *FavoriteRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&FavoriteModel{}).Error
}
