package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrOverdraft rejects a user transaction that would drive the balance
// negative.
var ErrOverdraft = errors.New("this transaction could not be completed due to an insufficient account balance")

var ErrAccountNotFound = errors.New("account not found")
var ErrUnknownAccountKind = errors.New("account type must be checking or savings")

// SequenceError rejects a transaction dated before the ledger's latest
// entry, or a second interest assessment inside the same month. Latest is
// the date that blocked the operation.
type SequenceError struct {
	Latest     time.Time
	SamePeriod bool
}

func (e *SequenceError) Error() string {
	if e.SamePeriod {
		return fmt.Sprintf("cannot apply interest and fees again in the month of %s", e.Latest.Month())
	}

	return fmt.Sprintf("new transactions must be from %s onward", e.Latest.Format("2006-01-02"))
}

type LimitKind string

const (
	LimitDaily   LimitKind = "daily"
	LimitMonthly LimitKind = "monthly"
)

// LimitError rejects a savings transaction that would exceed the daily or
// monthly cap on user transactions.
type LimitError struct {
	Kind  LimitKind
	Limit int
}

func (e *LimitError) Error() string {
	period := "day"
	if e.Kind == LimitMonthly {
		period = "month"
	}

	return fmt.Sprintf("this account already has %d transactions in this %s", e.Limit, period)
}
