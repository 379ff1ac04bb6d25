package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/query"
	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db/postgres"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/messaging"
)

func TestCreateProperty_AgentOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	agent := f.register(t, "agent@example.com", entities.UserTypeAgent)
	hunter := f.register(t, "hunter@example.com", entities.UserTypeHunter)

	_, err := f.property.CreateProperty(ctx, hunter, validCreateCommand())
	require.Error(t, err)
	assert.Equal(t, domain.KindAuthorization, domain.KindOf(err))
	assert.Equal(t, "Only agents can create properties", domain.MessageOf(err))

	created, err := f.property.CreateProperty(ctx, agent, validCreateCommand())
	require.NoError(t, err)
	assert.Equal(t, agent.Id, created.Result.OwnerId)
	assert.True(t, created.Result.IsActive)
	assert.Equal(t, []string{"aircon"}, created.Result.Features)
	assert.Equal(t, []string{}, created.Result.Amenities)
	assert.Contains(t, f.events.Subjects(), messaging.SubjectPropertyCreated)
}

func TestCreateProperty_SchemaViolations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	agent := f.register(t, "agent@example.com", entities.UserTypeAgent)

	tests := []struct {
		name   string
		mutate func(c *command.CreatePropertyCommand)
	}{
		{"zero price", func(c *command.CreatePropertyCommand) { c.Price = 0 }},
		{"negative bedrooms", func(c *command.CreatePropertyCommand) { c.Bedrooms = intPtr(-1) }},
		{"missing bathrooms", func(c *command.CreatePropertyCommand) { c.Bathrooms = nil }},
		{"unknown property type", func(c *command.CreatePropertyCommand) { c.PropertyType = "castle" }},
		{"bad contact phone", func(c *command.CreatePropertyCommand) { c.ContactPhone = "12ab5678" }},
		{"empty title", func(c *command.CreatePropertyCommand) { c.Title = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tt.mutate(cmd)
			_, err := f.property.CreateProperty(ctx, agent, cmd)
			require.Error(t, err)
			assert.Equal(t, domain.KindUnprocessable, domain.KindOf(err))
		})
	}
}

func TestUpdateProperty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", entities.UserTypeAgent)
	other := f.register(t, "other@example.com", entities.UserTypeAgent)

	created, err := f.property.CreateProperty(ctx, owner, validCreateCommand())
	require.NoError(t, err)
	id := created.Result.Id

	price := 3100.0
	_, err = f.property.UpdateProperty(ctx, other, &command.UpdatePropertyCommand{PropertyId: id, Price: &price})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "Property not found or you don't have permission to update it", domain.MessageOf(err))

	updated, err := f.property.UpdateProperty(ctx, owner, &command.UpdatePropertyCommand{
		PropertyId: id,
		Price:      &price,
		Amenities:  []string{"pool", "gym"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3100.0, updated.Result.Price)
	assert.Equal(t, []string{"pool", "gym"}, updated.Result.Amenities)
	assert.Equal(t, "Bright 3-room flat", updated.Result.Title)
	assert.Contains(t, f.events.Subjects(), messaging.SubjectPropertyUpdated)

	unchanged, err := f.property.UpdateProperty(ctx, owner, &command.UpdatePropertyCommand{PropertyId: id})
	require.NoError(t, err)
	assert.Equal(t, 3100.0, unchanged.Result.Price)

	badPrice := -1.0
	_, err = f.property.UpdateProperty(ctx, owner, &command.UpdatePropertyCommand{PropertyId: id, Price: &badPrice})
	assert.Equal(t, domain.KindUnprocessable, domain.KindOf(err))
}

func TestDeleteProperty_SoftDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", entities.UserTypeAgent)
	other := f.register(t, "other@example.com", entities.UserTypeHunter)

	created, err := f.property.CreateProperty(ctx, owner, validCreateCommand())
	require.NoError(t, err)
	id := created.Result.Id

	_, err = f.property.DeleteProperty(ctx, other, id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	result, err := f.property.DeleteProperty(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, "Property deleted successfully", result.Message)

	_, err = f.property.GetProperty(ctx, id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	// Deleting again reports the listing as missing.
	_, err = f.property.DeleteProperty(ctx, owner, id)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	var row postgres.PropertyModel
	require.NoError(t, f.gdb.First(&row, "id = ?", id).Error)
	assert.False(t, row.IsActive)
}

func TestUpdateProperty_DeletedListingIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := f.register(t, "owner@example.com", entities.UserTypeAgent)

	created, err := f.property.CreateProperty(ctx, owner, validCreateCommand())
	require.NoError(t, err)
	id := created.Result.Id
	_, err = f.property.DeleteProperty(ctx, owner, id)
	require.NoError(t, err)

	price := 3000.0
	_, err = f.property.UpdateProperty(ctx, owner, &command.UpdatePropertyCommand{PropertyId: id, Price: &price})
	require.Error(t, err)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	assert.Equal(t, "Property not found or you don't have permission to update it", domain.MessageOf(err))

	var row postgres.PropertyModel
	require.NoError(t, f.gdb.First(&row, "id = ?", id).Error)
	assert.Equal(t, 2800.0, row.Price)
	assert.False(t, row.IsActive)
}

func TestListProperties(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	agent := f.register(t, "agent@example.com", entities.UserTypeAgent)

	for i := 0; i < 12; i++ {
		cmd := validCreateCommand()
		if i%2 == 0 {
			cmd.PropertyType = entities.PropertyTypeCondo
			cmd.ListingType = entities.ListingTypeSale
			cmd.Price = 900000
		}
		_, err := f.property.CreateProperty(ctx, agent, cmd)
		require.NoError(t, err)
	}

	defaults, err := f.property.ListProperties(ctx, query.NewListPropertiesQuery())
	require.NoError(t, err)
	assert.Len(t, defaults.Result, 10)

	q := query.NewListPropertiesQuery()
	q.PropertyType = "condo"
	q.ListingType = "sale"
	q.MinPrice = 500000
	q.Limit = 100
	combined, err := f.property.ListProperties(ctx, q)
	require.NoError(t, err)
	assert.Len(t, combined.Result, 6)
	for _, p := range combined.Result {
		assert.Equal(t, entities.PropertyTypeCondo, p.PropertyType)
		assert.Equal(t, entities.ListingTypeSale, p.ListingType)
	}

	paged := query.NewListPropertiesQuery()
	paged.Skip = 10
	paged.Limit = 5
	page, err := f.property.ListProperties(ctx, paged)
	require.NoError(t, err)
	assert.Len(t, page.Result, 2)

	tooMany := query.NewListPropertiesQuery()
	tooMany.Limit = 101
	_, err = f.property.ListProperties(ctx, tooMany)
	assert.Equal(t, domain.KindUnprocessable, domain.KindOf(err))
}

func TestListOwnerProperties(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	agent := f.register(t, "agent@example.com", entities.UserTypeAgent)

	first, err := f.property.CreateProperty(ctx, agent, validCreateCommand())
	require.NoError(t, err)
	_, err = f.property.CreateProperty(ctx, agent, validCreateCommand())
	require.NoError(t, err)
	_, err = f.property.DeleteProperty(ctx, agent, first.Result.Id)
	require.NoError(t, err)

	owned, err := f.property.ListOwnerProperties(ctx, agent.Id)
	require.NoError(t, err)
	assert.Len(t, owned.Result, 1)

	none, err := f.property.ListOwnerProperties(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none.Result)
}
