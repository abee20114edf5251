package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	Savings  AccountKind = "savings"
	Checking AccountKind = "checking"
)

// Variant parameters. Monthly rates, savings transaction caps and the
// checking low-balance fee are fixed per kind at account creation.
var (
	savingsMonthlyRate  = decimal.RequireFromString("0.0033")
	checkingMonthlyRate = decimal.RequireFromString("0.0008")
	lowBalanceFee       = decimal.RequireFromString("-5.75")
	lowBalanceFloor     = decimal.NewFromInt(100)
)

const (
	savingsDailyLimit   = 2
	savingsMonthlyLimit = 5
)

// Policy supplies the variant-specific rules an Account defers to: the
// monthly interest rate, the rate-limit check run during admission, and
// the fee assessed after interest.
type Policy interface {
	Name() string
	InterestRate() decimal.Decimal
	CheckLimits(candidate Transaction, held []Transaction) error
	AssessFees(postInterestBalance decimal.Decimal, date time.Time) (decimal.Decimal, bool)
}

func policyFor(kind AccountKind) (Policy, error) {
	switch kind {
	case Savings:
		return savingsPolicy{}, nil
	case Checking:
		return checkingPolicy{}, nil
	default:
		return nil, ErrUnknownAccountKind
	}
}

type savingsPolicy struct{}

func (savingsPolicy) Name() string { return "Savings" }

func (savingsPolicy) InterestRate() decimal.Decimal { return savingsMonthlyRate }

// CheckLimits enforces the savings caps: at most 2 user transactions per
// calendar day and 5 per calendar month. Exempt entries never count
// against either cap. The daily cap is checked first, so a transaction
// over both caps reports the daily failure.
func (savingsPolicy) CheckLimits(candidate Transaction, held []Transaction) error {
	day, month := 0, 0
	for _, t := range held {
		if t.Exempt {
			continue
		}
		if t.SameDay(candidate) {
			day++
		}
		if t.SameMonth(candidate) {
			month++
		}
	}

	if day >= savingsDailyLimit {
		return &LimitError{Kind: LimitDaily, Limit: savingsDailyLimit}
	}
	if month >= savingsMonthlyLimit {
		return &LimitError{Kind: LimitMonthly, Limit: savingsMonthlyLimit}
	}

	return nil
}

func (savingsPolicy) AssessFees(decimal.Decimal, time.Time) (decimal.Decimal, bool) {
	return decimal.Decimal{}, false
}

type checkingPolicy struct{}

func (checkingPolicy) Name() string { return "Checking" }

func (checkingPolicy) InterestRate() decimal.Decimal { return checkingMonthlyRate }

func (checkingPolicy) CheckLimits(Transaction, []Transaction) error { return nil }

// AssessFees charges the low-balance fee when the balance after interest
// is still under $100.
func (checkingPolicy) AssessFees(postInterestBalance decimal.Decimal, _ time.Time) (decimal.Decimal, bool) {
	if postInterestBalance.LessThan(lowBalanceFloor) {
		return lowBalanceFee, true
	}

	return decimal.Decimal{}, false
}
