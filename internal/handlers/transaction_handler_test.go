package handlers

import (
	"net/http"
	"testing"

	"finance-tracker/internal/dto"
	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/result"
	"finance-tracker/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// TransactionHandlerSuite defines the test suite for TransactionHandler
type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)
	s.echo = newTestEcho()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) validBody() map[string]interface{} {
	return map[string]interface{}{
		"description": gofakeit.Sentence(4),
		"value":       "89.90",
		"type":        "expense",
		"person_id":   uuid.New().String(),
		"category_id": uuid.New().String(),
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	id := uuid.New()
	body := s.validBody()

	s.mockService.EXPECT().
		RecordTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req dto.CreateTransactionRequest) result.Result[uuid.UUID] {
			s.Equal("89.9", req.Value.String())
			s.Equal(body["person_id"], req.PersonID.String())
			return result.Ok("transaction created successfully", id)
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", body)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusCreated, rec.Code)
	resp := decodeBody(rec)
	s.Equal("transaction created successfully", resp["message"])
	s.Equal(id.String(), resp["data"])
}

func (s *TransactionHandlerSuite) TestCreateTransaction_DomainRuleViolation() {
	s.mockService.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Return(
		result.Fail[uuid.UUID](apperrors.DomainRule(apperrors.TransactionMinorRestricted, "minors restricted to expenses")),
	)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", s.validBody())
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("TRANSACTION_001", errorCode(rec))
	errBody := decodeBody(rec)["error"].(map[string]interface{})
	s.Equal("minors restricted to expenses", errBody["message"])
	s.Equal("test-trace", errBody["trace_id"])
}

func (s *TransactionHandlerSuite) TestCreateTransaction_NotFound() {
	s.mockService.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Return(
		result.Fail[uuid.UUID](apperrors.NotFound(apperrors.CategoryNotFound, "category not found")),
	)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", s.validBody())
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CATEGORY_001", errorCode(rec))
}

func (s *TransactionHandlerSuite) TestCreateTransaction_PersistenceFailureHidesCause() {
	s.mockService.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Return(
		result.Fail[uuid.UUID](apperrors.Persistence(errTestDatabase)),
	)

	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", s.validBody())
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), errTestDatabase.Error())
}

func (s *TransactionHandlerSuite) TestCreateTransaction_InvalidBodies() {
	tests := []struct {
		name   string
		mutate func(b map[string]interface{})
	}{
		{name: "zero value", mutate: func(b map[string]interface{}) { b["value"] = "0" }},
		{name: "three decimals", mutate: func(b map[string]interface{}) { b["value"] = "1.005" }},
		{name: "unknown type", mutate: func(b map[string]interface{}) { b["type"] = "transfer" }},
		{name: "missing description", mutate: func(b map[string]interface{}) { delete(b, "description") }},
		{name: "missing person", mutate: func(b map[string]interface{}) { delete(b, "person_id") }},
		{name: "malformed person id", mutate: func(b map[string]interface{}) { b["person_id"] = "not-a-uuid" }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := s.validBody()
			tt.mutate(body)

			c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", body)
			s.Require().NoError(s.handler.CreateTransaction(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", errorCode(rec))
		})
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_MalformedJSON() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/api/v1/transactions", `{"value":`)
	s.Require().NoError(s.handler.CreateTransaction(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions() {
	s.mockService.EXPECT().ListTransactions(gomock.Any()).Return(
		result.Ok("transactions listed successfully", []dto.TransactionResponse{}),
	)

	c, rec := newTestContext(s.echo, http.MethodGet, "/api/v1/transactions", nil)
	s.Require().NoError(s.handler.ListTransactions(c))

	s.Equal(http.StatusOK, rec.Code)
	resp := decodeBody(rec)
	s.Equal("transactions listed successfully", resp["message"])
	s.Equal([]interface{}{}, resp["data"])
}
