package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

func newAgent(t *testing.T, email string) *entities.ValidatedUser {
	t.Helper()
	u := entities.NewUser("Alice Tan", email, entities.UserTypeAgent, "91234567", "R123456A")
	u.PasswordHash = "hash"
	vu, err := entities.NewValidatedUser(u)
	require.NoError(t, err)
	return vu
}

func newListing(ownerID uuid.UUID, pt entities.PropertyType, lt entities.ListingType, price float64, beds int) *entities.Property {
	p := entities.NewProperty(ownerID)
	p.Title = "Listing"
	p.Description = "Bright unit"
	p.Address = "1 Orchard Road"
	p.Price = price
	p.Bedrooms = beds
	p.Bathrooms = 1
	p.Size = 80
	p.PropertyType = pt
	p.ListingType = lt
	p.Features = []string{"balcony"}
	p.ContactName = "Alice"
	p.ContactPhone = "91234567"
	p.ContactEmail = "alice@example.com"
	return p
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(ctx, newAgent(t, "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "R123456A", created.AgentLicense)

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.Id, byEmail.Id)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	missing, err := repo.FindById(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Create(ctx, newAgent(t, "dup@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newAgent(t, "dup@example.com"))
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestUserRepository_HunterFieldsStoredAsNull(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)

	u := entities.NewUser("Bob", "bob@example.com", entities.UserTypeHunter, "", "")
	u.PasswordHash = "hash"
	vu, err := entities.NewValidatedUser(u)
	require.NoError(t, err)
	_, err = repo.Create(ctx, vu)
	require.NoError(t, err)

	var model UserModel
	require.NoError(t, gdb.First(&model, "email = ?", "bob@example.com").Error)
	assert.Nil(t, model.Phone)
	assert.Nil(t, model.AgentLicense)
}

func TestUserRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	created, err := repo.Create(ctx, newAgent(t, "carol@example.com"))
	require.NoError(t, err)

	name := "Carol Lim"
	created.UpdateProfile(&name, nil, nil)
	vu, err := entities.NewValidatedUser(created)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, vu)
	require.NoError(t, err)
	assert.Equal(t, "Carol Lim", updated.Name)
	assert.Equal(t, "carol@example.com", updated.Email)

	require.NoError(t, repo.Delete(ctx, created.Id))
	gone, err := repo.FindById(ctx, created.Id)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRepository_Ping(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	assert.NoError(t, repo.Ping(context.Background()))
}

func TestPropertyRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository(newTestDB(t))
	owner := uuid.New()

	seed := []*entities.Property{
		newListing(owner, entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2),
		newListing(owner, entities.PropertyTypeCondo, entities.ListingTypeRent, 4200, 3),
		newListing(owner, entities.PropertyTypeCondo, entities.ListingTypeSale, 1500000, 4),
		newListing(owner, entities.PropertyTypeLanded, entities.ListingTypeSale, 4000000, 5),
	}
	for _, p := range seed {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter repositories.PropertyFilter
		want   int
	}{
		{"no filter", repositories.PropertyFilter{}, 4},
		{"property type", repositories.PropertyFilter{PropertyType: entities.PropertyTypeCondo}, 2},
		{"listing type", repositories.PropertyFilter{ListingType: entities.ListingTypeSale}, 2},
		{"price range", repositories.PropertyFilter{MinPrice: 3000, MaxPrice: 2000000}, 2},
		{"min bedrooms", repositories.PropertyFilter{MinBedrooms: 4}, 2},
		{"combined", repositories.PropertyFilter{PropertyType: entities.PropertyTypeCondo, ListingType: entities.ListingTypeRent}, 1},
		{"limit", repositories.PropertyFilter{Limit: 3}, 3},
		{"offset", repositories.PropertyFilter{Offset: 3, Limit: 10}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestPropertyRepository_PatchOnlyTouchesPresentFields(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository(newTestDB(t))
	owner := uuid.New()

	created, err := repo.Create(ctx, newListing(owner, entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2))
	require.NoError(t, err)

	price := 2800.0
	lat := 1.3
	patched, err := repo.Patch(ctx, created.Id, entities.PropertyPatch{
		Price:  &price,
		Lat:    &lat,
		Images: []string{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2800.0, patched.Price)
	require.NotNil(t, patched.Lat)
	assert.Equal(t, 1.3, *patched.Lat)
	assert.Nil(t, patched.Lng)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, patched.Images)
	assert.Equal(t, []string{"balcony"}, patched.Features)
	assert.Equal(t, "Listing", patched.Title)
	assert.False(t, patched.UpdatedAt.Before(created.UpdatedAt))
}

func TestPropertyRepository_DeactivateHidesButKeepsRow(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	repo := NewPropertyRepository(gdb)
	owner := uuid.New()

	created, err := repo.Create(ctx, newListing(owner, entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2))
	require.NoError(t, err)

	require.NoError(t, repo.Deactivate(ctx, created.Id))

	found, err := repo.FindActiveById(ctx, created.Id)
	assert.NoError(t, err)
	assert.Nil(t, found)

	var model PropertyModel
	require.NoError(t, gdb.First(&model, "id = ?", created.Id).Error)
	assert.False(t, model.IsActive)
}

func TestPropertyRepository_DeactivateByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewPropertyRepository(newTestDB(t))
	owner, other := uuid.New(), uuid.New()

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, newListing(owner, entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, newListing(other, entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2))
	require.NoError(t, err)

	require.NoError(t, repo.DeactivateByOwner(ctx, owner))

	mine, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := repo.ListByOwner(ctx, other)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestFavoriteRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	properties := NewPropertyRepository(gdb)
	favorites := NewFavoriteRepository(gdb)
	user := uuid.New()

	first, err := properties.Create(ctx, newListing(uuid.New(), entities.PropertyTypeHDB, entities.ListingTypeRent, 2500, 2))
	require.NoError(t, err)
	second, err := properties.Create(ctx, newListing(uuid.New(), entities.PropertyTypeCondo, entities.ListingTypeSale, 900000, 3))
	require.NoError(t, err)

	require.NoError(t, favorites.Add(ctx, entities.NewFavorite(user, first.Id)))
	require.NoError(t, favorites.Add(ctx, entities.NewFavorite(user, first.Id)))
	require.NoError(t, favorites.Add(ctx, &entities.Favorite{UserId: user, PropertyId: second.Id, CreatedAt: time.Now().UTC().Add(time.Second)}))

	saved, err := favorites.ListProperties(ctx, user)
	require.NoError(t, err)
	assert.Len(t, saved, 2)

	require.NoError(t, properties.Deactivate(ctx, second.Id))
	saved, err = favorites.ListProperties(ctx, user)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, first.Id, saved[0].Id)

	removed, err := favorites.Remove(ctx, user, first.Id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = favorites.Remove(ctx, user, first.Id)
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, favorites.DeleteByUser(ctx, user))
}
