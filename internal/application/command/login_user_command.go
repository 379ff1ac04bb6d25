package command

import (
	"github.com/benjaminhze/cribhunter/internal/application/common"
	"github.com/benjaminhze/cribhunter/internal/application/validation"
)

type LoginUserCommand struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *LoginUserCommand) Validate() error {
	return validation.Struct(c)
}

type LoginUserCommandResult struct {
	Result *common.TokenResult `json:"result"`
}
