package memory

import (
	"context"
	"sync"

	"github.com/pocketbank/ledger/internal/domain"
)

type accountState struct {
	number       int
	kind         domain.AccountKind
	transactions []domain.Transaction
	assessed     *domain.Period
}

// BankRepository keeps the snapshot in memory. Used by tests and as a
// stand-in while no database is configured.
type BankRepository struct {
	mu       sync.Mutex
	snapshot []accountState
}

func NewBankRepository() *BankRepository {
	return &BankRepository{}
}

func (r *BankRepository) Load(_ context.Context) (*domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(r.snapshot))
	for _, state := range r.snapshot {
		account, err := domain.RestoreAccount(state.number, state.kind, state.transactions, state.assessed)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return domain.RestoreBank(accounts), nil
}

func (r *BankRepository) Save(_ context.Context, bank *domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = r.snapshot[:0]
	for _, account := range bank.Accounts() {
		r.snapshot = append(r.snapshot, accountState{
			number:       account.Number(),
			kind:         account.Kind(),
			transactions: account.Transactions(),
			assessed:     account.AssessedPeriod(),
		})
	}

	return nil
}
