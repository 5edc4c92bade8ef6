package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/result"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockCategoryServiceInterface
	handler     *CategoryHandler
	echo        *echo.Echo
}

func (s *CategoryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockService)
	s.echo = newTestEcho()
}

func (s *CategoryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerSuite))
}

func (s *CategoryHandlerSuite) TestCreateCategory() {
	id := uuid.New()
	s.mockService.EXPECT().
		CreateCategory(gomock.Any(), dto.CreateCategoryRequest{Description: "Salary", Purpose: "income"}).
		Return(result.Ok("category created successfully", id))

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/categories", map[string]interface{}{"description": "Salary", "purpose": "income"})
	s.Require().NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(id.String(), decodeBody(rec)["data"])
}

func (s *CategoryHandlerSuite) TestCreateCategory_InvalidPurpose() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/categories", map[string]interface{}{"description": "Salary", "purpose": "savings"})
	s.Require().NoError(s.handler.CreateCategory(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", errorCode(rec))
}

func (s *CategoryHandlerSuite) TestListCategories() {
	s.mockService.EXPECT().ListCategories(gomock.Any()).Return(
		result.Ok("categories listed successfully", []dto.CategoryResponse{
			{ID: uuid.New(), Description: "Food", Purpose: models.PurposeExpense},
		}),
	)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/categories", nil)
	s.Require().NoError(s.handler.ListCategories(c))

	s.Equal(http.StatusOK, rec.Code)
	data := decodeBody(rec)["data"].([]interface{})
	s.Len(data, 1)
}

func (s *CategoryHandlerSuite) TestGetCategory_InvalidID() {
	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/categories/xyz", nil)
	c.SetParamNames("id")
	c.SetParamValues("xyz")
	s.Require().NoError(s.handler.GetCategory(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATEGORY_002", errorCode(rec))
}

func (s *CategoryHandlerSuite) TestDeleteCategory_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().DeleteCategory(gomock.Any(), id).Return(
		result.Fail[uuid.UUID](apperrors.NotFound(apperrors.CategoryNotFound, "category not found")),
	)

	c, rec := newTestContext(s.echo, http.MethodDelete, "/api/v1/categories/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	s.Require().NoError(s.handler.DeleteCategory(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", errorCode(rec))
}
