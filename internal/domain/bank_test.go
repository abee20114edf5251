package domain_test

import (
	"errors"
	"testing"

	"github.com/pocketbank/ledger/internal/domain"
)

func TestBankAssignsSequentialNumbers(t *testing.T) {
	bank := domain.NewBank()

	first, err := bank.OpenAccount(domain.Checking)
	if err != nil {
		t.Fatalf("open checking: %v", err)
	}
	second, err := bank.OpenAccount(domain.Savings)
	if err != nil {
		t.Fatalf("open savings: %v", err)
	}

	if first.Number() != 1 || second.Number() != 2 {
		t.Fatalf("expected numbers 1 and 2, got %d and %d", first.Number(), second.Number())
	}
	if got := len(bank.Accounts()); got != 2 {
		t.Fatalf("expected 2 accounts, got %d", got)
	}
}

func TestBankRejectsUnknownKind(t *testing.T) {
	bank := domain.NewBank()
	if _, err := bank.OpenAccount("money-market"); !errors.Is(err, domain.ErrUnknownAccountKind) {
		t.Fatalf("expected ErrUnknownAccountKind, got %v", err)
	}
	if got := len(bank.Accounts()); got != 0 {
		t.Fatalf("expected no accounts after failed open, got %d", got)
	}
}

func TestBankAccountLookup(t *testing.T) {
	bank := domain.NewBank()
	opened, err := bank.OpenAccount(domain.Savings)
	if err != nil {
		t.Fatalf("open savings: %v", err)
	}

	found, err := bank.Account(opened.Number())
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != opened {
		t.Fatal("expected lookup to return the opened account")
	}

	if _, err := bank.Account(99); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRestoreBankKeepsNumbering(t *testing.T) {
	account, err := domain.RestoreAccount(7, domain.Checking, nil, nil)
	if err != nil {
		t.Fatalf("restore account: %v", err)
	}

	bank := domain.RestoreBank([]*domain.Account{account})
	found, err := bank.Account(7)
	if err != nil {
		t.Fatalf("lookup restored account: %v", err)
	}
	if found.Kind() != domain.Checking {
		t.Fatalf("expected checking account, got %s", found.Kind())
	}
}
