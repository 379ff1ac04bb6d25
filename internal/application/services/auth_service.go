package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/application/mapper"
	"github.com/benjaminhze/cribhunter/internal/application/policy"
	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/messaging"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgEmailRegistered    = "Email already registered"
)

type AuthService struct {
	userRepo repositories.UserRepository
	hasher   interfaces.PasswordHasher
	tokens   interfaces.TokenService
	cache    interfaces.ProfileCache
	events   interfaces.EventPublisher
	mailer   interfaces.Mailer
	logger   *logging.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher interfaces.PasswordHasher,
	tokens interfaces.TokenService,
	cache interfaces.ProfileCache,
	events interfaces.EventPublisher,
	mailer interfaces.Mailer,
	logger *logging.Logger,
) interfaces.AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		cache:    cache,
		events:   events,
		mailer:   mailer,
		logger:   logger.With("component", "auth_service"),
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if err := registerCommand.Validate(); err != nil {
		return nil, err
	}

	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, domain.NewStoreError("Registration failed", err)
	}
	if existingUser != nil {
		return nil, domain.NewConflictError(msgEmailRegistered)
	}

	newUser := entities.NewUser(
		registerCommand.Name,
		registerCommand.Email,
		registerCommand.UserType,
		deref(registerCommand.Phone),
		deref(registerCommand.AgentLicense),
	)
	if err := policy.ApplyUserTypeRules(newUser); err != nil {
		return nil, err
	}

	newUser.PasswordHash, err = s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, err
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, domain.NewConflictError(msgEmailRegistered)
		}
		return nil, domain.NewStoreError("Registration failed", err)
	}

	s.logger.Info("user registered", "user_id", createdUser.Id.String(), "user_type", string(createdUser.UserType))

	result := mapper.NewUserResultFromEntity(createdUser)
	s.publish(ctx, messaging.SubjectUserRegistered, result)
	if err := s.mailer.SendWelcome(ctx, createdUser); err != nil {
		s.logger.Warn("failed to send welcome email", "user_id", createdUser.Id.String(), "error", err)
	}

	return &command.RegisterUserCommandResult{Result: result}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if err := loginCommand.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, domain.NewStoreError("Login failed", err)
	}
	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil || !s.hasher.Verify(loginCommand.Password, user.PasswordHash) {
		return nil, domain.NewAuthenticationError(msgInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{Result: token}, nil
}

func (s *AuthService) Refresh(_ context.Context, user *entities.User) (*common.TokenResult, error) {
	return s.issueToken(user)
}

// Authenticate verifies token and loads its subject, through the profile
// cache when one is configured.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid token")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domain.NewAuthenticationError("Invalid token")
	}

	cachedUser, err := s.cache.GetProfile(ctx, userID.String())
	if err != nil {
		s.logger.Warn("profile cache read failed", "user_id", userID.String(), "error", err)
	}
	if cachedUser != nil {
		return cachedUser, nil
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to load user", err)
	}
	if user == nil {
		return nil, domain.NewAuthenticationError("User not found")
	}

	if err := s.cache.SetProfile(ctx, user); err != nil {
		s.logger.Warn("profile cache write failed", "user_id", userID.String(), "error", err)
	}
	return user, nil
}

func (s *AuthService) issueToken(user *entities.User) (*common.TokenResult, error) {
	ttl := s.tokens.DefaultTTL()
	token, err := s.tokens.Issue(user.Id.String(), ttl)
	if err != nil {
		return nil, err
	}
	return &common.TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl.Seconds()),
	}, nil
}

func (s *AuthService) publish(ctx context.Context, subject string, data any) {
	if err := s.events.Publish(ctx, subject, data); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
