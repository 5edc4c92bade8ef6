package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions lists every recorded transaction
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} object{message=string,data=[]dto.TransactionResponse}
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	return SendResult(c, http.StatusOK, h.transactionService.ListTransactions(c.Request().Context()))
}

// CreateTransaction records an income or expense
// @Summary Record transaction
// @Description Minors may only record expenses; the category purpose must accept the transaction type
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} object{message=string,data=string} "Id of the new transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 404 {object} errors.ErrorResponse "PERSON_001 or CATEGORY_001 - Referenced entity not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_001 or TRANSACTION_002 - Domain rule violated"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	return SendResult(c, http.StatusCreated, h.transactionService.RecordTransaction(c.Request().Context(), req))
}
