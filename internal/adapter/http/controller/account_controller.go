package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pocketbank/ledger/internal/adapter/http/models"
	"github.com/pocketbank/ledger/internal/commons"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	handler := http.HandlerFunc(c.accounts)
	if authMiddleware != nil {
		handler = authMiddleware(handler).ServeHTTP
	}
	mux.Handle("/accounts", http.HandlerFunc(handler))
}

func (c *AccountController) accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.openAccount(w, r)
	case http.MethodGet:
		c.listAccounts(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, commons.ErrorResponse[models.AccountResponse]("method not allowed"))
	}
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}

	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()))
		return
	}

	response, err := c.service.OpenAccount(r.Context(), req)
	if err != nil {
		writeJSON(w, statusFor(response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	response, err := c.service.ListAccounts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor picks the HTTP status from the envelope's summary line. The
// ledger's rejections are client errors; everything else is a 500.
func statusFor(message string) int {
	switch message {
	case "validation failed", "invalid request body":
		return http.StatusBadRequest
	case "account not found":
		return http.StatusNotFound
	case "transaction rejected: overdraft",
		"transaction rejected: out of chronological order",
		"transaction rejected: daily limit reached",
		"transaction rejected: monthly limit reached",
		"interest and fees already assessed this month":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
