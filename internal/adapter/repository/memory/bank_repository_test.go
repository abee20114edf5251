package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/adapter/repository/memory"
	"github.com/pocketbank/ledger/internal/domain"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBankRepository()

	bank := domain.NewBank()
	account, err := bank.OpenAccount(domain.Checking)
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	if err := account.AddTransaction(decimal.NewFromInt(50), domain.NewDate(2024, time.January, 10)); err != nil {
		t.Fatalf("add transaction: %v", err)
	}
	if err := account.AssessInterestAndFees(); err != nil {
		t.Fatalf("assess: %v", err)
	}

	if err := repo.Save(ctx, bank); err != nil {
		t.Fatalf("save: %v", err)
	}

	restored, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	restoredAccount, err := restored.Account(account.Number())
	if err != nil {
		t.Fatalf("lookup restored account: %v", err)
	}

	if !restoredAccount.Balance().Equal(account.Balance()) {
		t.Fatalf("expected balance %s, got %s", account.Balance(), restoredAccount.Balance())
	}
	if len(restoredAccount.Transactions()) != len(account.Transactions()) {
		t.Fatal("expected transaction history to survive the round trip")
	}
	if err := restoredAccount.AssessInterestAndFees(); err == nil {
		t.Fatal("expected restored assessed-period marker to block re-assessment")
	}
}

func TestMemoryRepositoryLoadEmpty(t *testing.T) {
	bank, err := memory.NewBankRepository().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(bank.Accounts()); got != 0 {
		t.Fatalf("expected empty registry, got %d accounts", got)
	}
}
