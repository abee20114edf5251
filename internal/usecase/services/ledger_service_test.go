package services_test

import (
	"context"
	"testing"

	"github.com/pocketbank/ledger/internal/adapter/http/models"
	"github.com/pocketbank/ledger/internal/adapter/repository/memory"
	"github.com/pocketbank/ledger/internal/usecase/services"
)

func newService(t *testing.T) (*services.LedgerService, *memory.BankRepository) {
	t.Helper()
	repo := memory.NewBankRepository()
	svc, err := services.NewLedgerService(context.Background(), repo)
	if err != nil {
		t.Fatalf("new ledger service: %v", err)
	}
	return svc, repo
}

func TestLedgerServiceOpenAccountSuccess(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{AccountType: "Checking"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if resp.Data.AccountNumber != 1 {
		t.Fatalf("expected account number 1, got %d", resp.Data.AccountNumber)
	}
	if resp.Data.Summary != "Checking#000000001,\tbalance: $0.00" {
		t.Fatalf("unexpected summary %q", resp.Data.Summary)
	}
}

func TestLedgerServiceOpenAccountValidationError(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{AccountType: "bonds"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if resp.Success {
		t.Fatal("expected error response")
	}
}

func TestLedgerServiceAddAndListTransactions(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: "savings"}); err != nil {
		t.Fatalf("open account: %v", err)
	}

	resp, err := svc.AddTransaction(ctx, models.AddTransactionRequest{
		AccountNumber: 1,
		Amount:        "1234.56",
		Date:          "2024-01-10",
	})
	if err != nil {
		t.Fatalf("add transaction: %v", err)
	}
	if resp.Data == nil || resp.Data.Display != "2024-01-10, $1,234.56" {
		t.Fatalf("unexpected transaction display: %+v", resp.Data)
	}

	list, err := svc.ListTransactions(ctx, 1)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if list.Data == nil || len(list.Data.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %+v", list.Data)
	}
	if list.Data.Balance != "$1,234.56" {
		t.Fatalf("expected balance $1,234.56, got %s", list.Data.Balance)
	}
}

func TestLedgerServiceRejectsOverdraft(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: "checking"}); err != nil {
		t.Fatalf("open account: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, models.AddTransactionRequest{AccountNumber: 1, Amount: "50", Date: "2024-01-10"}); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	resp, err := svc.AddTransaction(ctx, models.AddTransactionRequest{AccountNumber: 1, Amount: "-60", Date: "2024-01-11"})
	if err == nil {
		t.Fatal("expected overdraft rejection")
	}
	if resp.Success || resp.Message != "transaction rejected: overdraft" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	list, err := svc.ListTransactions(ctx, 1)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(list.Data.Transactions) != 1 {
		t.Fatal("expected rejected transaction to leave the ledger unchanged")
	}
}

func TestLedgerServiceAssessInterestOncePerMonth(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: "checking"}); err != nil {
		t.Fatalf("open account: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, models.AddTransactionRequest{AccountNumber: 1, Amount: "50.00", Date: "2024-01-10"}); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	resp, err := svc.AssessInterestAndFees(ctx, models.AssessInterestRequest{AccountNumber: 1})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if resp.Data == nil || resp.Data.Balance != "$44.29" {
		t.Fatalf("expected balance $44.29, got %+v", resp.Data)
	}

	second, err := svc.AssessInterestAndFees(ctx, models.AssessInterestRequest{AccountNumber: 1})
	if err == nil {
		t.Fatal("expected second assessment to fail")
	}
	if second.Message != "interest and fees already assessed this month" {
		t.Fatalf("unexpected message %q", second.Message)
	}
}

func TestLedgerServiceUnknownAccount(t *testing.T) {
	svc, _ := newService(t)

	resp, err := svc.ListTransactions(context.Background(), 9)
	if err == nil {
		t.Fatal("expected lookup error")
	}
	if resp.Success || resp.Message != "account not found" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLedgerServiceStateSurvivesRestart(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	if _, err := svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: "savings"}); err != nil {
		t.Fatalf("open account: %v", err)
	}
	if _, err := svc.AddTransaction(ctx, models.AddTransactionRequest{AccountNumber: 1, Amount: "75.25", Date: "2024-03-05"}); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	restarted, err := services.NewLedgerService(ctx, repo)
	if err != nil {
		t.Fatalf("restart service: %v", err)
	}
	list, err := restarted.ListTransactions(ctx, 1)
	if err != nil {
		t.Fatalf("list after restart: %v", err)
	}
	if list.Data.Balance != "$75.25" {
		t.Fatalf("expected balance $75.25 after restart, got %s", list.Data.Balance)
	}
}
