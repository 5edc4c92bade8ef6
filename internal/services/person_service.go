package services

import (
	"context"
	"errors"
	"strings"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/result"

	"github.com/google/uuid"
)

const (
	msgPersonsListed   = "persons listed successfully"
	msgPersonRetrieved = "person retrieved successfully"
	msgPersonCreated   = "person created successfully"
	msgPersonUpdated   = "person updated successfully"
	msgPersonDeleted   = "person deleted successfully"
	entityPerson       = "person"
	operationCreated   = "created"
	operationUpdated   = "updated"
	operationDeleted   = "deleted"
)

type personService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	metrics       MetricsRecorderInterface
	financeLogger FinanceLoggerInterface
}

func NewPersonService(
	newUnitOfWork repositories.UnitOfWorkFactory,
	metrics MetricsRecorderInterface,
	financeLogger FinanceLoggerInterface,
) PersonServiceInterface {
	return &personService{
		newUnitOfWork: newUnitOfWork,
		metrics:       metrics,
		financeLogger: financeLogger,
	}
}

func (s *personService) ListPersons(ctx context.Context) result.Result[[]dto.PersonResponse] {
	persons, err := s.newUnitOfWork().Persons().ListAll(ctx)
	if err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "list_persons", err)
		return result.Fail[[]dto.PersonResponse](apperrors.Persistence(err))
	}

	responses := make([]dto.PersonResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, dto.NewPersonResponse(&persons[i]))
	}

	return result.Ok(msgPersonsListed, responses)
}

func (s *personService) GetPerson(ctx context.Context, id uuid.UUID) result.Result[dto.PersonResponse] {
	person, appErr := s.findPerson(ctx, s.newUnitOfWork(), id)
	if appErr != nil {
		return result.Fail[dto.PersonResponse](appErr)
	}

	return result.Ok(msgPersonRetrieved, dto.NewPersonResponse(person))
}

// CreatePerson registers a new person and returns its id
func (s *personService) CreatePerson(ctx context.Context, req dto.CreatePersonRequest) result.Result[uuid.UUID] {
	if req.Age == nil {
		return result.Fail[uuid.UUID](apperrors.Validation("age is required"))
	}

	person := &models.Person{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
		Age:  *req.Age,
	}
	if err := person.Validate(); err != nil {
		return result.Fail[uuid.UUID](apperrors.Validation(err.Error()))
	}

	uow := s.newUnitOfWork()
	uow.Persons().Add(person)
	if err := uow.Commit(ctx); err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "create_person", err)
		return result.Fail[uuid.UUID](apperrors.Persistence(err))
	}

	s.metrics.IncrementCounter("entity.changed", map[string]string{"entity": entityPerson, "operation": operationCreated})
	s.financeLogger.LogEntityCreated(ctx, entityPerson, person.ID)

	return result.Ok(msgPersonCreated, person.ID)
}

// UpdatePerson replaces the name and age of an existing person.
// Transactions already recorded are not re-checked against a new age.
func (s *personService) UpdatePerson(ctx context.Context, id uuid.UUID, req dto.UpdatePersonRequest) result.Result[dto.PersonResponse] {
	if req.Age == nil {
		return result.Fail[dto.PersonResponse](apperrors.Validation("age is required"))
	}

	uow := s.newUnitOfWork()
	person, appErr := s.findPerson(ctx, uow, id)
	if appErr != nil {
		return result.Fail[dto.PersonResponse](appErr)
	}

	person.Name = strings.TrimSpace(req.Name)
	person.Age = *req.Age
	if err := person.Validate(); err != nil {
		return result.Fail[dto.PersonResponse](apperrors.Validation(err.Error()))
	}

	uow.Persons().Update(person)
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repositories.ErrPersonNotFound) {
			return result.Fail[dto.PersonResponse](apperrors.NotFound(apperrors.PersonNotFound, msgPersonNotFound))
		}
		s.financeLogger.LogPersistenceFailure(ctx, "update_person", err)
		return result.Fail[dto.PersonResponse](apperrors.Persistence(err))
	}

	s.metrics.IncrementCounter("entity.changed", map[string]string{"entity": entityPerson, "operation": operationUpdated})
	s.financeLogger.LogEntityUpdated(ctx, entityPerson, person.ID)

	return result.Ok(msgPersonUpdated, dto.NewPersonResponse(person))
}

// DeletePerson removes a person together with all of their transactions
func (s *personService) DeletePerson(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID] {
	uow := s.newUnitOfWork()
	if _, appErr := s.findPerson(ctx, uow, id); appErr != nil {
		return result.Fail[uuid.UUID](appErr)
	}

	uow.Persons().Delete(id)
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repositories.ErrPersonNotFound) {
			return result.Fail[uuid.UUID](apperrors.NotFound(apperrors.PersonNotFound, msgPersonNotFound))
		}
		s.financeLogger.LogPersistenceFailure(ctx, "delete_person", err)
		return result.Fail[uuid.UUID](apperrors.Persistence(err))
	}

	s.metrics.IncrementCounter("entity.changed", map[string]string{"entity": entityPerson, "operation": operationDeleted})
	s.financeLogger.LogEntityDeleted(ctx, entityPerson, id)

	return result.Ok(msgPersonDeleted, id)
}

func (s *personService) findPerson(ctx context.Context, uow repositories.UnitOfWork, id uuid.UUID) (*models.Person, *apperrors.Error) {
	person, err := uow.Persons().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPersonNotFound) {
			return nil, apperrors.NotFound(apperrors.PersonNotFound, msgPersonNotFound)
		}
		s.financeLogger.LogPersistenceFailure(ctx, "find_person", err)
		return nil, apperrors.Persistence(err)
	}
	if person == nil {
		return nil, apperrors.NotFound(apperrors.PersonNotFound, msgPersonNotFound)
	}
	return person, nil
}
