package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AddTransactionRequest struct {
	AccountNumber int    `json:"accountNumber"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
}

func (r AddTransactionRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber must be a positive integer")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else if _, err := decimal.NewFromString(amount); err != nil {
		errs = append(errs, "amount must be a decimal number")
	}

	date := strings.TrimSpace(r.Date)
	if date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errs = append(errs, "date must be formatted as YYYY-MM-DD")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionResponse struct {
	Amount  string `json:"amount"`
	Date    string `json:"date"`
	Exempt  bool   `json:"exempt"`
	Display string `json:"display"`
}

type ListTransactionsResponse struct {
	AccountNumber int                   `json:"accountNumber"`
	Balance       string                `json:"balance"`
	Transactions  []TransactionResponse `json:"transactions"`
}

type AssessInterestRequest struct {
	AccountNumber int `json:"accountNumber"`
}

func (r AssessInterestRequest) Validate() error {
	if r.AccountNumber <= 0 {
		return errors.New("accountNumber must be a positive integer")
	}

	return nil
}
