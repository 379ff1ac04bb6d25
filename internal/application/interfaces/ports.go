package interfaces

import (
	"context"
	"time"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type TokenService interface {
	Issue(subjectID string, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
	DefaultTTL() time.Duration
}

// ProfileCache fronts user lookups. GetProfile returns (nil, nil) on a miss.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID string) (*entities.User, error)
	SetProfile(ctx context.Context, user *entities.User) error
	InvalidateProfile(ctx context.Context, userID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, subject string, data any) error
}

type Mailer interface {
	SendWelcome(ctx context.Context, user *entities.User) error
}
