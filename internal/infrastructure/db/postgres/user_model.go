package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string  `gorm:"size:100;not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	UserType     string  `gorm:"size:16;not null"`
	Phone        *string `gorm:"size:8"`
	AgentLicense *string `gorm:"size:50"`
	PasswordHash string  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type PropertyModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerId      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string  `gorm:"size:200;not null"`
	Description  string  `gorm:"size:2000;not null"`
	Address      string  `gorm:"size:500;not null"`
	Price        float64 `gorm:"not null;index"`
	Bedrooms     int     `gorm:"not null"`
	Bathrooms    int     `gorm:"not null"`
	Size         float64 `gorm:"not null"`
	PropertyType string  `gorm:"size:16;not null"`
	ListingType  string  `gorm:"size:16;not null"`
	Features     datatypes.JSONSlice[string]
	Amenities    datatypes.JSONSlice[string]
	Images       datatypes.JSONSlice[string]
	Lat          *float64
	Lng          *float64
	ContactName  string `gorm:"size:100;not null"`
	ContactPhone string `gorm:"size:8;not null"`
	ContactEmail string `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true;index"`
}

func (PropertyModel) TableName() string {
	return "properties"
}

type FavoriteModel struct {
	UserId     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PropertyId uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

func (FavoriteModel) TableName() string {
	return "favorites"
}

// AutoMigrate creates the tables for local sqlite runs and tests. The
// managed Postgres store owns its schema and is never migrated from here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserModel{}, &PropertyModel{}, &FavoriteModel{})
}
