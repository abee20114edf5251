package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/commons"
)

// Transaction is one immutable ledger entry: a signed exact amount on a
// calendar date. Exempt entries are system generated (interest and fees)
// and bypass the balance and limit checks user entries go through.
type Transaction struct {
	Amount decimal.Decimal
	Date   time.Time
	Exempt bool
}

// NewTransaction builds an entry with the date normalized to a bare
// calendar date. No validation happens here; admission rules belong to the
// owning Account.
func NewTransaction(amount decimal.Decimal, date time.Time, exempt bool) Transaction {
	return Transaction{
		Amount: amount,
		Date:   NewDate(date.Year(), date.Month(), date.Day()),
		Exempt: exempt,
	}
}

// NewDate builds a calendar date with no time component.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (t Transaction) SameDay(other Transaction) bool {
	return t.Date.Equal(other.Date)
}

func (t Transaction) SameMonth(other Transaction) bool {
	return t.Date.Year() == other.Date.Year() && t.Date.Month() == other.Date.Month()
}

// Precedes reports whether t is dated strictly before other.
func (t Transaction) Precedes(other Transaction) bool {
	return t.Date.Before(other.Date)
}

// CheckBalance reports whether admitting t on top of balance would
// overdraw the account. Deposits always pass.
func (t Transaction) CheckBalance(balance decimal.Decimal) error {
	if t.Amount.Sign() >= 0 {
		return nil
	}
	if balance.Add(t.Amount).Sign() < 0 {
		return ErrOverdraft
	}

	return nil
}

// LastDayOfMonth returns the final calendar day of the month t falls in.
func (t Transaction) LastDayOfMonth() time.Time {
	firstOfNext := NewDate(t.Date.Year(), t.Date.Month(), 1).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// String renders the entry for display, e.g. "2022-09-15, $50.00".
func (t Transaction) String() string {
	return fmt.Sprintf("%s, %s", t.Date.Format("2006-01-02"), commons.FormatUSD(t.Amount))
}
