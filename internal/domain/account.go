package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/commons"
)

// Period identifies the calendar month an interest assessment covers.
type Period struct {
	Year  int
	Month time.Month
}

func periodOf(date time.Time) Period {
	return Period{Year: date.Year(), Month: date.Month()}
}

// Account is the validated transaction history for one account. It owns
// its transactions exclusively: entries enter through AddTransaction or
// the monthly assessment and are never mutated afterwards. Every public
// operation either completes fully or leaves the account unchanged.
type Account struct {
	number       int
	kind         AccountKind
	policy       Policy
	transactions []Transaction
	assessed     *Period
}

func NewAccount(number int, kind AccountKind) (*Account, error) {
	if number <= 0 {
		return nil, fmt.Errorf("account number must be positive, got %d", number)
	}
	policy, err := policyFor(kind)
	if err != nil {
		return nil, err
	}

	return &Account{number: number, kind: kind, policy: policy}, nil
}

// RestoreAccount rebuilds an account from persisted state. The stored
// history passed admission when it was first recorded, so no checks are
// re-run here.
func RestoreAccount(number int, kind AccountKind, transactions []Transaction, assessed *Period) (*Account, error) {
	account, err := NewAccount(number, kind)
	if err != nil {
		return nil, err
	}
	account.transactions = append(account.transactions, transactions...)
	if assessed != nil {
		p := *assessed
		account.assessed = &p
	}

	return account, nil
}

func (a *Account) Number() int { return a.number }

func (a *Account) Kind() AccountKind { return a.kind }

// AssessedPeriod returns the month interest was last assessed for, or nil
// if it never was.
func (a *Account) AssessedPeriod() *Period {
	if a.assessed == nil {
		return nil
	}
	p := *a.assessed
	return &p
}

// AddTransaction admits a user transaction. The checks run in a fixed
// order: chronology, then overdraft, then the variant's rate limits. The
// first failure is returned and nothing is appended.
func (a *Account) AddTransaction(amount decimal.Decimal, date time.Time) error {
	return a.add(NewTransaction(amount, date, false))
}

func (a *Account) add(t Transaction) error {
	if latest, ok := a.latest(); ok && t.Precedes(latest) {
		return &SequenceError{Latest: latest.Date}
	}

	if !t.Exempt {
		if err := t.CheckBalance(a.Balance()); err != nil {
			return err
		}
		if err := a.policy.CheckLimits(t, a.transactions); err != nil {
			return err
		}
	}

	a.transactions = append(a.transactions, t)
	return nil
}

// latest returns the entry with the maximum date. Admission keeps dates
// non-decreasing, so this is always the most recently appended date.
func (a *Account) latest() (Transaction, bool) {
	if len(a.transactions) == 0 {
		return Transaction{}, false
	}

	max := a.transactions[0]
	for _, t := range a.transactions[1:] {
		if max.Precedes(t) {
			max = t
		}
	}

	return max, true
}

// Balance is the exact sum of every entry, exempt or not. Nothing is
// rounded here; display formatting rounds to cents.
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.transactions {
		total = total.Add(t.Amount)
	}

	return total
}

// Transactions returns the history sorted ascending by date. The sort is
// stable, so same-day entries keep their admission order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Precedes(out[j]) })

	return out
}

// AssessInterestAndFees appends the month's interest entry and, for
// variants that charge one, a fee entry. Both are exempt and dated at the
// last day of the latest transaction's month. Assessing the same month
// twice fails with a SequenceError and changes nothing; an empty account
// is a no-op.
func (a *Account) AssessInterestAndFees() error {
	latest, ok := a.latest()
	if !ok {
		return nil
	}

	assessmentDate := latest.LastDayOfMonth()
	period := periodOf(assessmentDate)
	if a.assessed != nil && *a.assessed == period {
		return &SequenceError{Latest: latest.Date, SamePeriod: true}
	}

	interest := a.Balance().Mul(a.policy.InterestRate())
	if err := a.add(NewTransaction(interest, assessmentDate, true)); err != nil {
		return err
	}

	if fee, due := a.policy.AssessFees(a.Balance(), assessmentDate); due {
		if err := a.add(NewTransaction(fee, assessmentDate, true)); err != nil {
			return err
		}
	}

	a.assessed = &period
	return nil
}

// String renders the summary line, e.g. "Savings#000000001,\tbalance: $50.00".
func (a *Account) String() string {
	return fmt.Sprintf("%s#%09d,\tbalance: %s", a.policy.Name(), a.number, commons.FormatUSD(a.Balance()))
}
