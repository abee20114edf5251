package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/domain"
)

// BankRepository persists the registry in postgres. The registry is one
// person's handful of accounts, so Save rewrites the whole snapshot inside
// a single transaction; that keeps Save and Load exact mirror images and
// preserves transaction order through the seq column.
type BankRepository struct {
	db *sql.DB
}

func NewBankRepository(db *sql.DB) *BankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) Load(ctx context.Context) (*domain.Bank, error) {
	transactions, err := r.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	const query = `
SELECT account_number, kind, assessed_year, assessed_month
FROM accounts
ORDER BY account_number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var (
			number int
			kind   string
			year   sql.NullInt64
			month  sql.NullInt64
		)
		if err := rows.Scan(&number, &kind, &year, &month); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}

		var assessed *domain.Period
		if year.Valid && month.Valid {
			assessed = &domain.Period{Year: int(year.Int64), Month: time.Month(month.Int64)}
		}

		account, err := domain.RestoreAccount(number, domain.AccountKind(kind), transactions[number], assessed)
		if err != nil {
			return nil, fmt.Errorf("restore account %d: %w", number, err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return domain.RestoreBank(accounts), nil
}

func (r *BankRepository) loadTransactions(ctx context.Context) (map[int][]domain.Transaction, error) {
	const query = `
SELECT account_number, amount, tx_date, exempt
FROM transactions
ORDER BY account_number, seq`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]domain.Transaction)
	for rows.Next() {
		var (
			number int
			amount string
			date   time.Time
			exempt bool
		)
		if err := rows.Scan(&number, &amount, &date, &exempt); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}

		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("account %d: parse amount %q: %w", number, amount, err)
		}
		out[number] = append(out[number], domain.NewTransaction(value, date, exempt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return out, nil
}

func (r *BankRepository) Save(ctx context.Context, bank *domain.Bank) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear accounts: %w", err)
	}

	const insertAccount = `
INSERT INTO accounts (account_number, kind, assessed_year, assessed_month)
VALUES ($1, $2, $3, $4)`
	const insertTransaction = `
INSERT INTO transactions (account_number, seq, amount, tx_date, exempt)
VALUES ($1, $2, $3, $4, $5)`

	for _, account := range bank.Accounts() {
		var year, month sql.NullInt64
		if p := account.AssessedPeriod(); p != nil {
			year = sql.NullInt64{Int64: int64(p.Year), Valid: true}
			month = sql.NullInt64{Int64: int64(p.Month), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insertAccount, account.Number(), string(account.Kind()), year, month); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert account %d: %w", account.Number(), err)
		}

		for seq, entry := range account.Transactions() {
			if _, err := tx.ExecContext(ctx, insertTransaction, account.Number(), seq, entry.Amount.String(), entry.Date, entry.Exempt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("insert transaction %d for account %d: %w", seq, account.Number(), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	return nil
}
