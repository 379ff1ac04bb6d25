package common

import (
	"time"

	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

// UserResult is the public view of a user. Optional fields are null,
// not empty strings, when unset.
type UserResult struct {
	Id           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	UserType     entities.UserType `json:"user_type"`
	Phone        *string           `json:"phone"`
	AgentLicense *string           `json:"agent_license"`
	CreatedAt    time.Time         `json:"created_at"`
}

type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type MessageResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func NewMessageResult(message string) *MessageResult {
	return &MessageResult{Message: message, Success: true}
}
