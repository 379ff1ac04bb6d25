// Package policy holds the authorization rules for listing operations and
// the registration rules that depend on the user type.
package policy

import (
	"fmt"

	"github.com/benjaminhze/cribhunter/internal/domain"
	"github.com/benjaminhze/cribhunter/internal/domain/entities"
)

type Operation string

const (
	PropertyCreate Operation = "property:create"
	PropertyRead   Operation = "property:read"
	PropertyUpdate Operation = "property:update"
	PropertyDelete Operation = "property:delete"
)

// Rule decides whether identity may perform an operation on target.
// identity is nil for anonymous callers; target is nil when the operation
// has no existing resource or the resource could not be found.
type Rule func(identity *entities.User, target *entities.Property) error

var rules = map[Operation]Rule{
	PropertyCreate: agentOnly,
	PropertyRead:   allowAll,
	PropertyUpdate: ownerOnly("update"),
	PropertyDelete: ownerOnly("delete"),
}

// Evaluate applies the rule registered for op. Unknown operations are denied.
func Evaluate(op Operation, identity *entities.User, target *entities.Property) error {
	rule, ok := rules[op]
	if !ok {
		return &domain.Error{Kind: domain.KindInternal, Message: fmt.Sprintf("no policy for %s", op)}
	}
	return rule(identity, target)
}

func allowAll(*entities.User, *entities.Property) error {
	return nil
}

func agentOnly(identity *entities.User, _ *entities.Property) error {
	if identity == nil {
		return domain.NewAuthenticationError("Not authenticated")
	}
	if !identity.IsAgent() {
		return domain.NewAuthorizationError("Only agents can create properties")
	}
	return nil
}

// ownerOnly reports a foreign listing as missing so callers cannot probe
// for listings they do not own.
func ownerOnly(action string) Rule {
	return func(identity *entities.User, target *entities.Property) error {
		if identity == nil {
			return domain.NewAuthenticationError("Not authenticated")
		}
		if target == nil || !target.IsOwnedBy(identity.Id) {
			return domain.NewNotFoundError(fmt.Sprintf("Property not found or you don't have permission to %s it", action))
		}
		return nil
	}
}

// ApplyUserTypeRules enforces the agent/hunter field invariant on user:
// agents need a phone and a licence, hunters never keep either.
func ApplyUserTypeRules(user *entities.User) error {
	if user.IsAgent() {
		if user.Phone == "" || user.AgentLicense == "" {
			return domain.NewValidationError("Phone number and agent license are required for agents")
		}
		return nil
	}
	user.Phone = ""
	user.AgentLicense = ""
	return nil
}
