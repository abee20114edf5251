package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbank/ledger/internal/adapter/http/controller"
	"github.com/pocketbank/ledger/internal/adapter/http/models"
	"github.com/pocketbank/ledger/internal/adapter/http/router"
	"github.com/pocketbank/ledger/internal/adapter/repository/memory"
	"github.com/pocketbank/ledger/internal/commons"
	"github.com/pocketbank/ledger/internal/usecase/services"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	service, err := services.NewLedgerService(context.Background(), memory.NewBankRepository())
	if err != nil {
		t.Fatalf("new ledger service: %v", err)
	}

	return router.New(
		controller.NewAccountController(service),
		controller.NewTransactionController(service),
		nil,
	)
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestOpenAccountEndpoint(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/accounts", `{"accountType":"savings"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	var resp commons.Response[models.AccountResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.AccountNumber != 1 {
		t.Fatalf("unexpected response: %s", rr.Body.String())
	}
}

func TestOpenAccountEndpointRejectsUnknownType(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/accounts", `{"accountType":"bonds"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestTransactionEndpointsEnforceLedgerRules(t *testing.T) {
	mux := newMux(t)

	if rr := do(t, mux, http.MethodPost, "/accounts", `{"accountType":"checking"}`); rr.Code != http.StatusCreated {
		t.Fatalf("open account: status %d", rr.Code)
	}
	if rr := do(t, mux, http.MethodPost, "/transactions", `{"accountNumber":1,"amount":"50","date":"2024-01-10"}`); rr.Code != http.StatusCreated {
		t.Fatalf("add transaction: status %d: %s", rr.Code, rr.Body.String())
	}

	// Backdated entry conflicts with the ledger's chronology rule.
	rr := do(t, mux, http.MethodPost, "/transactions", `{"accountNumber":1,"amount":"10","date":"2024-01-05"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d: %s", http.StatusConflict, rr.Code, rr.Body.String())
	}

	rr = do(t, mux, http.MethodGet, "/transactions?accountNumber=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list transactions: status %d", rr.Code)
	}
	var list commons.Response[models.ListTransactionsResponse]
	if err := json.Unmarshal(rr.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if list.Data == nil || len(list.Data.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %s", rr.Body.String())
	}

	rr = do(t, mux, http.MethodPost, "/assessments", `{"accountNumber":1}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("assess: status %d: %s", rr.Code, rr.Body.String())
	}
	rr = do(t, mux, http.MethodPost, "/assessments", `{"accountNumber":1}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected repeat assessment conflict, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestTransactionEndpointUnknownAccount(t *testing.T) {
	mux := newMux(t)

	rr := do(t, mux, http.MethodPost, "/transactions", `{"accountNumber":9,"amount":"10","date":"2024-01-05"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
