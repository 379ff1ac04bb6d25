package command

import (
	"github.com/google/uuid"

	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/validation"
)

// UpdateProfileCommand is a partial update; nil fields are left unchanged.
// An empty agent_license passes here and is judged by the user type rules.
type UpdateProfileCommand struct {
	UserId       uuid.UUID `json:"-"`
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,len=8,number"`
	AgentLicense *string   `json:"agent_license,omitempty" validate:"omitempty,max=50"`
}

func (c *UpdateProfileCommand) Validate() error {
	return validation.Struct(c)
}

type UpdateProfileCommandResult struct {
	Result *common.UserResult `json:"result"`
}
