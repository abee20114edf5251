package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/domain"
)

type snapshot struct {
	SavedAt  string            `json:"saved_at"`
	Accounts []accountSnapshot `json:"accounts"`
}

type accountSnapshot struct {
	Number        int                   `json:"number"`
	Kind          string                `json:"kind"`
	AssessedYear  int                   `json:"assessed_year,omitempty"`
	AssessedMonth int                   `json:"assessed_month,omitempty"`
	Transactions  []transactionSnapshot `json:"transactions"`
}

type transactionSnapshot struct {
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Exempt bool   `json:"exempt,omitempty"`
}

// BankRepository stores the registry as a JSON snapshot on disk. Amounts
// are serialized as decimal strings so interest entries with more than two
// fraction digits survive the round trip exactly. Writes go to a temp file
// first and replace the real file with a rename, so a crash mid-write
// never leaves a corrupt snapshot behind.
type BankRepository struct {
	path string
}

func NewBankRepository(path string) *BankRepository {
	return &BankRepository{path: path}
}

// Load reads the snapshot. A missing file is not an error: it yields an
// empty registry, matching a first run.
func (r *BankRepository) Load(_ context.Context) (*domain.Bank, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewBank(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", r.path, err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %q: %w", r.path, err)
	}

	accounts := make([]*domain.Account, 0, len(snap.Accounts))
	for _, as := range snap.Accounts {
		transactions := make([]domain.Transaction, 0, len(as.Transactions))
		for _, ts := range as.Transactions {
			amount, err := decimal.NewFromString(ts.Amount)
			if err != nil {
				return nil, fmt.Errorf("account %d: parse amount %q: %w", as.Number, ts.Amount, err)
			}
			date, err := time.Parse("2006-01-02", ts.Date)
			if err != nil {
				return nil, fmt.Errorf("account %d: parse date %q: %w", as.Number, ts.Date, err)
			}
			transactions = append(transactions, domain.NewTransaction(amount, date, ts.Exempt))
		}

		var assessed *domain.Period
		if as.AssessedYear != 0 {
			assessed = &domain.Period{Year: as.AssessedYear, Month: time.Month(as.AssessedMonth)}
		}

		account, err := domain.RestoreAccount(as.Number, domain.AccountKind(as.Kind), transactions, assessed)
		if err != nil {
			return nil, fmt.Errorf("restore account %d: %w", as.Number, err)
		}
		accounts = append(accounts, account)
	}

	return domain.RestoreBank(accounts), nil
}

func (r *BankRepository) Save(_ context.Context, bank *domain.Bank) error {
	snap := snapshot{SavedAt: time.Now().UTC().Format(time.RFC3339)}
	for _, account := range bank.Accounts() {
		as := accountSnapshot{
			Number: account.Number(),
			Kind:   string(account.Kind()),
		}
		if p := account.AssessedPeriod(); p != nil {
			as.AssessedYear = p.Year
			as.AssessedMonth = int(p.Month)
		}
		for _, tx := range account.Transactions() {
			as.Transactions = append(as.Transactions, transactionSnapshot{
				Amount: tx.Amount.String(),
				Date:   tx.Date.Format("2006-01-02"),
				Exempt: tx.Exempt,
			})
		}
		snap.Accounts = append(snap.Accounts, as)
	}

	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace snapshot %q: %w", r.path, err)
	}

	return nil
}
