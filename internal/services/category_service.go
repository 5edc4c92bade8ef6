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
	msgCategoriesListed  = "categories listed successfully"
	msgCategoryRetrieved = "category retrieved successfully"
	msgCategoryCreated   = "category created successfully"
	msgCategoryDeleted   = "category deleted successfully"
	entityCategory       = "category"
)

type categoryService struct {
	newUnitOfWork repositories.UnitOfWorkFactory
	metrics       MetricsRecorderInterface
	financeLogger FinanceLoggerInterface
}

func NewCategoryService(
	newUnitOfWork repositories.UnitOfWorkFactory,
	metrics MetricsRecorderInterface,
	financeLogger FinanceLoggerInterface,
) CategoryServiceInterface {
	return &categoryService{
		newUnitOfWork: newUnitOfWork,
		metrics:       metrics,
		financeLogger: financeLogger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) result.Result[[]dto.CategoryResponse] {
	categories, err := s.newUnitOfWork().Categories().ListAll(ctx)
	if err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "list_categories", err)
		return result.Fail[[]dto.CategoryResponse](apperrors.Persistence(err))
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, dto.NewCategoryResponse(&categories[i]))
	}

	return result.Ok(msgCategoriesListed, responses)
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) result.Result[dto.CategoryResponse] {
	category, appErr := s.findCategory(ctx, s.newUnitOfWork(), id)
	if appErr != nil {
		return result.Fail[dto.CategoryResponse](appErr)
	}

	return result.Ok(msgCategoryRetrieved, dto.NewCategoryResponse(category))
}

// CreateCategory registers a new category and returns its id
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) result.Result[uuid.UUID] {
	category := &models.Category{
		ID:          uuid.New(),
		Description: strings.TrimSpace(req.Description),
		Purpose:     models.ParsePurpose(req.Purpose),
	}
	if err := category.Validate(); err != nil {
		return result.Fail[uuid.UUID](apperrors.Validation(err.Error()))
	}

	uow := s.newUnitOfWork()
	uow.Categories().Add(category)
	if err := uow.Commit(ctx); err != nil {
		s.financeLogger.LogPersistenceFailure(ctx, "create_category", err)
		return result.Fail[uuid.UUID](apperrors.Persistence(err))
	}

	s.metrics.IncrementCounter("entity.changed", map[string]string{"entity": entityCategory, "operation": operationCreated})
	s.financeLogger.LogEntityCreated(ctx, entityCategory, category.ID)

	return result.Ok(msgCategoryCreated, category.ID)
}

// DeleteCategory removes a category together with every transaction filed under it
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) result.Result[uuid.UUID] {
	uow := s.newUnitOfWork()
	if _, appErr := s.findCategory(ctx, uow, id); appErr != nil {
		return result.Fail[uuid.UUID](appErr)
	}

	uow.Categories().Delete(id)
	if err := uow.Commit(ctx); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return result.Fail[uuid.UUID](apperrors.NotFound(apperrors.CategoryNotFound, msgCategoryNotFound))
		}
		s.financeLogger.LogPersistenceFailure(ctx, "delete_category", err)
		return result.Fail[uuid.UUID](apperrors.Persistence(err))
	}

	s.metrics.IncrementCounter("entity.changed", map[string]string{"entity": entityCategory, "operation": operationDeleted})
	s.financeLogger.LogEntityDeleted(ctx, entityCategory, id)

	return result.Ok(msgCategoryDeleted, id)
}

func (s *categoryService) findCategory(ctx context.Context, uow repositories.UnitOfWork, id uuid.UUID) (*models.Category, *apperrors.Error) {
	category, err := uow.Categories().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound(apperrors.CategoryNotFound, msgCategoryNotFound)
		}
		s.financeLogger.LogPersistenceFailure(ctx, "find_category", err)
		return nil, apperrors.Persistence(err)
	}
	if category == nil {
		return nil, apperrors.NotFound(apperrors.CategoryNotFound, msgCategoryNotFound)
	}
	return category, nil
}
