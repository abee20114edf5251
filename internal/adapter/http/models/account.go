package models

import (
	"errors"
	"strings"
)

type OpenAccountRequest struct {
	AccountType string `json:"accountType"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	kind := strings.ToLower(strings.TrimSpace(r.AccountType))
	if kind == "" {
		errs = append(errs, "accountType is required")
	} else if kind != "checking" && kind != "savings" {
		errs = append(errs, "accountType must be checking or savings")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	AccountNumber int    `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	Summary       string `json:"summary"`
}

type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
