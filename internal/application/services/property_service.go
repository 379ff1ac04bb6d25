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

type PropertyService struct {
	propertyRepo repositories.PropertyRepository
	events       interfaces.EventPublisher
	logger       *logging.Logger
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	events interfaces.EventPublisher,
	logger *logging.Logger,
) interfaces.PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		events:       events,
		logger:       logger.With("component", "property_service"),
	}
}

func (s *PropertyService) ListProperties(ctx context.Context, listQuery *query.ListPropertiesQuery) (*query.PropertyQueryListResult, error) {
	if err := listQuery.Validate(); err != nil {
		return nil, err
	}

	properties, err := s.propertyRepo.List(ctx, listQuery.ToFilter())
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch properties", err)
	}

	return &query.PropertyQueryListResult{Result: mapper.NewPropertyResultsFromEntities(properties)}, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*query.PropertyQueryResult, error) {
	property, err := s.propertyRepo.FindActiveById(ctx, id)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch property", err)
	}
	if property == nil {
		return nil, domain.NewNotFoundError("Property not found")
	}

	return &query.PropertyQueryResult{Result: mapper.NewPropertyResultFromEntity(property)}, nil
}

func (s *PropertyService) ListOwnerProperties(ctx context.Context, ownerID uuid.UUID) (*query.PropertyQueryListResult, error) {
	properties, err := s.propertyRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch user properties", err)
	}

	return &query.PropertyQueryListResult{Result: mapper.NewPropertyResultsFromEntities(properties)}, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, identity *entities.User, createCommand *command.CreatePropertyCommand) (*command.PropertyCommandResult, error) {
	if err := policy.Evaluate(policy.PropertyCreate, identity, nil); err != nil {
		return nil, err
	}
	if err := createCommand.Validate(); err != nil {
		return nil, err
	}

	property := createCommand.ToEntity(identity.Id)
	if err := property.Validate(); err != nil {
		return nil, domain.NewUnprocessableError(err.Error())
	}

	createdProperty, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		return nil, domain.NewStoreError("Failed to create property", err)
	}
	if createdProperty == nil {
		return nil, domain.NewStoreError("Failed to create property", nil)
	}

	s.logger.Info("property created", "property_id", createdProperty.Id.String(), "owner_id", identity.Id.String())

	result := mapper.NewPropertyResultFromEntity(createdProperty)
	s.publish(ctx, messaging.SubjectPropertyCreated, result)

	return &command.PropertyCommandResult{Result: result}, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, identity *entities.User, updateCommand *command.UpdatePropertyCommand) (*command.PropertyCommandResult, error) {
	if err := updateCommand.Validate(); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindActiveById(ctx, updateCommand.PropertyId)
	if err != nil {
		return nil, domain.NewStoreError("Failed to update property", err)
	}
	if err := policy.Evaluate(policy.PropertyUpdate, identity, property); err != nil {
		return nil, err
	}

	patch := updateCommand.ToPatch()
	if patch.IsEmpty() {
		return &command.PropertyCommandResult{Result: mapper.NewPropertyResultFromEntity(property)}, nil
	}

	updatedProperty, err := s.propertyRepo.Patch(ctx, property.Id, patch)
	if err != nil {
		return nil, domain.NewStoreError("Failed to update property", err)
	}
	if updatedProperty == nil {
		return nil, domain.NewStoreError("Failed to update property", nil)
	}

	result := mapper.NewPropertyResultFromEntity(updatedProperty)
	s.publish(ctx, messaging.SubjectPropertyUpdated, result)

	return &command.PropertyCommandResult{Result: result}, nil
}

// DeleteProperty only flips is_active; the row stays in the store.
func (s *PropertyService) DeleteProperty(ctx context.Context, identity *entities.User, id uuid.UUID) (*common.MessageResult, error) {
	property, err := s.propertyRepo.FindActiveById(ctx, id)
	if err != nil {
		return nil, domain.NewStoreError("Failed to delete property", err)
	}
	if err := policy.Evaluate(policy.PropertyDelete, identity, property); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Deactivate(ctx, property.Id); err != nil {
		return nil, domain.NewStoreError("Failed to delete property", err)
	}

	s.logger.Info("property deleted", "property_id", property.Id.String(), "owner_id", identity.Id.String())
	s.publish(ctx, messaging.SubjectPropertyDeleted, map[string]string{"id": property.Id.String()})

	return common.NewMessageResult("Property deleted successfully"), nil
}

func (s *PropertyService) publish(ctx context.Context, subject string, data any) {
	if err := s.events.Publish(ctx, subject, data); err != nil {
		s.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
