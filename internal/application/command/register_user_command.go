package command

import (
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/validation"
	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

type RegisterUserCommand struct {
	Name         string            `json:"name" validate:"required,max=100"`
	Email        string            `json:"email" validate:"required,email"`
	Password     string            `json:"password" validate:"required,min=8"`
	UserType     entities.UserType `json:"user_type" validate:"required,oneof=hunter agent"`
	Phone        *string           `json:"phone,omitempty" validate:"omitempty,len=8,number"`
	AgentLicense *string           `json:"agent_license,omitempty" validate:"omitempty,max=50"`
}

// Validate checks the payload shape. Whether agent fields are present is
// a registration rule and is enforced later.
func (c *RegisterUserCommand) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	if len(c.Password) > maxPasswordBytes {
		return domain.NewUnprocessableError("password: must be at most 72 bytes")
	}
	return nil
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
