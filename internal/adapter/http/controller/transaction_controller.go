package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pocketbank/ledger/internal/adapter/http/models"
	"github.com/pocketbank/ledger/internal/commons"
)

type TransactionService interface {
	AddTransaction(ctx context.Context, req models.AddTransactionRequest) (commons.Response[models.TransactionResponse], error)
	ListTransactions(ctx context.Context, accountNumber int) (commons.Response[models.ListTransactionsResponse], error)
	AssessInterestAndFees(ctx context.Context, req models.AssessInterestRequest) (commons.Response[models.AccountResponse], error)
}

type TransactionController struct {
	service TransactionService
}

func NewTransactionController(service TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	transactions := http.HandlerFunc(c.transactions)
	assessments := http.HandlerFunc(c.assess)
	if authMiddleware != nil {
		transactions = authMiddleware(transactions).ServeHTTP
		assessments = authMiddleware(assessments).ServeHTTP
	}
	mux.Handle("/transactions", http.HandlerFunc(transactions))
	mux.Handle("/assessments", http.HandlerFunc(assessments))
}

func (c *TransactionController) transactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.addTransaction(w, r)
	case http.MethodGet:
		c.listTransactions(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.TransactionResponse]("method not allowed"))
	}
}

func (c *TransactionController) addTransaction(w http.ResponseWriter, r *http.Request) {
	var req models.AddTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.AddTransaction(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFor(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	accountNumber, err := strconv.Atoi(r.URL.Query().Get("accountNumber"))
	if err != nil || accountNumber <= 0 {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.ListTransactionsResponse]("validation failed", "accountNumber query parameter must be a positive integer"))
		return
	}

	response, err := c.service.ListTransactions(r.Context(), accountNumber)
	if err != nil {
		writeJSON(w, statusFor(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) assess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"))
		return
	}

	var req models.AssessInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.AssessInterestAndFees(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFor(response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
