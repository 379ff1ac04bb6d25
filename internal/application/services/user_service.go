package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/application/mapper"
	"github.com/benjaminhze/cribhunter/internal/application/policy"
	"github.com/benjaminhze/cribhunter/internal/application/query"
	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/messaging"
)

type UserService struct {
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
	favoriteRepo repositories.FavoriteRepository
	cache        interfaces.ProfileCache
	events       interfaces.EventPublisher
	logger       *logging.Logger
}

func NewUserService(
	userRepo repositories.UserRepository,
	propertyRepo repositories.PropertyRepository,
	favoriteRepo repositories.FavoriteRepository,
	cache interfaces.ProfileCache,
	events interfaces.EventPublisher,
	logger *logging.Logger,
) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
		events:       events,
		logger:       logger.With("component", "user_service"),
	}
}

func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error) {
	// First, try to get the profile from the cache
	cachedUser, err := s.cache.GetProfile(ctx, id.String())
	if err != nil {
		s.logger.Warn("profile cache read failed", "user_id", id.String(), "error", err)
	}
	if cachedUser != nil {
		return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(cachedUser)}, nil
	}

	user, err := s.loadUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProfile(ctx, user); err != nil {
		s.logger.Warn("profile cache write failed", "user_id", id.String(), "error", err)
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

// UpdateProfile applies a partial update. Hunters cannot gain agent
// fields, and agents cannot clear theirs.
func (s *UserService) UpdateProfile(ctx context.Context, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	if err := updateCommand.Validate(); err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, updateCommand.UserId)
	if err != nil {
		return nil, err
	}

	user.UpdateProfile(updateCommand.Name, updateCommand.Phone, updateCommand.AgentLicense)
	if err := policy.ApplyUserTypeRules(user); err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, domain.NewStoreError("Failed to update profile", err)
	}
	if updatedUser == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	s.invalidate(ctx, updatedUser.Id)

	return &command.UpdateProfileCommandResult{Result: mapper.NewUserResultFromEntity(updatedUser)}, nil
}

// DeleteProfile hides the user's listings, forgets their favorites and
// removes the user record. Tokens issued earlier stop resolving.
func (s *UserService) DeleteProfile(ctx context.Context, id uuid.UUID) (*common.MessageResult, error) {
	if _, err := s.loadUser(ctx, id); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.DeactivateByOwner(ctx, id); err != nil {
		return nil, domain.NewStoreError("Failed to delete profile", err)
	}
	if err := s.favoriteRepo.DeleteByUser(ctx, id); err != nil {
		return nil, domain.NewStoreError("Failed to delete profile", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, domain.NewStoreError("Failed to delete profile", err)
	}

	s.invalidate(ctx, id)
	s.logger.Info("user deleted", "user_id", id.String())
	if err := s.events.Publish(ctx, messaging.SubjectUserDeleted, map[string]string{"id": id.String()}); err != nil {
		s.logger.Warn("failed to publish event", "subject", messaging.SubjectUserDeleted, "error", err)
	}

	return common.NewMessageResult("User profile deleted successfully"), nil
}

func (s *UserService) ListFavorites(ctx context.Context, userID uuid.UUID) (*query.PropertyQueryListResult, error) {
	properties, err := s.favoriteRepo.ListProperties(ctx, userID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch favorites", err)
	}
	return &query.PropertyQueryListResult{Result: mapper.NewPropertyResultsFromEntities(properties)}, nil
}

func (s *UserService) AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*common.MessageResult, error) {
	property, err := s.propertyRepo.FindActiveById(ctx, propertyID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to save favorite", err)
	}
	if property == nil {
		return nil, domain.NewNotFoundError("Property not found")
	}

	if err := s.favoriteRepo.Add(ctx, entities.NewFavorite(userID, propertyID)); err != nil {
		return nil, domain.NewStoreError("Failed to save favorite", err)
	}
	return common.NewMessageResult("Property added to favorites"), nil
}

func (s *UserService) RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*common.MessageResult, error) {
	removed, err := s.favoriteRepo.Remove(ctx, userID, propertyID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to remove favorite", err)
	}
	if !removed {
		return nil, domain.NewNotFoundError("Favorite not found")
	}
	return common.NewMessageResult("Property removed from favorites"), nil
}

// loadUser reads from the store, never the cache, so the password hash is
// present for validation.
func (s *UserService) loadUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *UserService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.InvalidateProfile(ctx, id.String()); err != nil {
		s.logger.Warn("profile cache invalidation failed", "user_id", id.String(), "error", err)
	}
}
