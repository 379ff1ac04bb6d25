package mapper

import (
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:           user.Id,
		Name:         user.Name,
		Email:        user.Email,
		UserType:     user.UserType,
		Phone:        optional(user.Phone),
		AgentLicense: optional(user.AgentLicense),
		CreatedAt:    user.CreatedAt,
	}
}

func NewUserResultFromValidatedEntity(validatedUser *entities.ValidatedUser) *common.UserResult {
	return NewUserResultFromEntity(validatedUser.GetUser())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
