package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/benjaminhze/cribhunter/internal/application/command"
	"github.com/benjaminhze/cribhunter/internal/application/interfaces"
	"github.com/benjaminhze/cribhunter/internal/config"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
	"github.com/benjaminhze/cribhunter/internal/domain/repositories"
	"github.com/benjaminhze/cribhunter/internal/infrastructure"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/db/postgres"
	"github.com/benjaminhze/cribhunter/internal/infrastructure/logging"
)

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return p.err
}

func (p *recordingPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, user *entities.User) error {
	m.sent = append(m.sent, user.Email)
	return m.err
}

// memoryCache is a ProfileCache backed by a map.
type memoryCache struct {
	profiles map[string]*entities.User
	readErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{profiles: map[string]*entities.User{}}
}

func (c *memoryCache) GetProfile(_ context.Context, userID string) (*entities.User, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.profiles[userID], nil
}

func (c *memoryCache) SetProfile(_ context.Context, user *entities.User) error {
	cached := *user
	cached.PasswordHash = ""
	c.profiles[user.Id.String()] = &cached
	return nil
}

func (c *memoryCache) InvalidateProfile(_ context.Context, userID string) error {
	delete(c.profiles, userID)
	return nil
}

type fixture struct {
	gdb        *gorm.DB
	users      repositories.UserRepository
	properties repositories.PropertyRepository
	favorites  repositories.FavoriteRepository
	tokens     *infrastructure.JWTService
	cache      *memoryCache
	events     *recordingPublisher
	mailer     *recordingMailer

	auth     interfaces.AuthService
	user     interfaces.UserService
	property interfaces.PropertyService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, err := db.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(gdb))
	t.Cleanup(func() { _ = db.Close(gdb) })

	f := &fixture{
		gdb:        gdb,
		users:      postgres.NewUserRepository(gdb),
		properties: postgres.NewPropertyRepository(gdb),
		favorites:  postgres.NewFavoriteRepository(gdb),
		tokens:     infrastructure.NewJWTService("test-secret", 30*time.Minute),
		cache:      newMemoryCache(),
		events:     &recordingPublisher{},
		mailer:     &recordingMailer{},
	}
	logger := logging.Discard()
	f.auth = NewAuthService(f.users, infrastructure.NewBcryptHasher(bcrypt.MinCost), f.tokens, f.cache, f.events, f.mailer, logger)
	f.user = NewUserService(f.users, f.properties, f.favorites, f.cache, f.events, logger)
	f.property = NewPropertyService(f.properties, f.events, logger)
	return f
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func (f *fixture) register(t *testing.T, email string, userType entities.UserType) *entities.User {
	t.Helper()
	cmd := &command.RegisterUserCommand{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
		UserType: userType,
	}
	if userType == entities.UserTypeAgent {
		cmd.Phone = strPtr("91234567")
		cmd.AgentLicense = strPtr("R123456A")
	}
	result, err := f.auth.Register(context.Background(), cmd)
	require.NoError(t, err)

	user, err := f.users.FindById(context.Background(), result.Result.Id)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func validCreateCommand() *command.CreatePropertyCommand {
	return &command.CreatePropertyCommand{
		Title:        "Bright 3-room flat",
		Description:  "Close to MRT",
		Address:      "10 Tampines Ave",
		Price:        2800,
		Bedrooms:     intPtr(3),
		Bathrooms:    intPtr(2),
		Size:         70,
		PropertyType: entities.PropertyTypeHDB,
		ListingType:  entities.ListingTypeRent,
		Features:     []string{"aircon"},
		ContactName:  "Alice",
		ContactPhone: "91234567",
		ContactEmail: "alice@example.com",
	}
}

var errBoom = errors.New("boom")
