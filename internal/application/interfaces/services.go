package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/query"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Refresh(ctx context.Context, user *entities.User) (*common.TokenResult, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error)
	UpdateProfile(ctx context.Context, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) (*common.MessageResult, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) (*query.PropertyQueryListResult, error)
	AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*common.MessageResult, error)
	RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*common.MessageResult, error)
}

// PropertyService takes the caller's identity explicitly; nil means an
// anonymous caller.
type PropertyService interface {
	ListProperties(ctx context.Context, listQuery *query.ListPropertiesQuery) (*query.PropertyQueryListResult, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*query.PropertyQueryResult, error)
	ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) (*query.PropertyQueryListResult, error)
	CreateProperty(ctx context.Context, identity *entities.User, createCommand *command.CreatePropertyCommand) (*command.PropertyCommandResult, error)
	UpdateProperty(ctx context.Context, identity *entities.User, updateCommand *command.UpdatePropertyCommand) (*command.PropertyCommandResult, error)
	DeleteProperty(ctx context.Context, identity *entities.User, id uuid.UUID) (*common.MessageResult, error)
}
