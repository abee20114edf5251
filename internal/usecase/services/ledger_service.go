package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/adapter/http/models"
	"github.com/pocketbank/ledger/internal/commons"
	"github.com/pocketbank/ledger/internal/domain"
	"github.com/pocketbank/ledger/internal/logger"
)

// LedgerService drives the ledger engine on behalf of the API: it owns the
// in-memory registry, runs every operation under one mutex so the
// check-then-append admission stays atomic across concurrent requests, and
// writes a snapshot through the injected repository after each mutation.
type LedgerService struct {
	mu   sync.Mutex
	repo domain.BankRepository
	bank *domain.Bank
}

func NewLedgerService(ctx context.Context, repo domain.BankRepository) (*LedgerService, error) {
	bank, err := repo.Load(ctx)
	if err != nil {
		logger.Error("ledger service load snapshot failed", err, nil)
		return nil, err
	}

	logger.Info("ledger service loaded snapshot", logger.Fields{
		"accounts": len(bank.Accounts()),
	})

	return &LedgerService{repo: repo, bank: bank}, nil
}

func (s *LedgerService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service open account request", logger.Fields{
		"accountType": req.AccountType,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kind := domain.AccountKind(strings.ToLower(strings.TrimSpace(req.AccountType)))
	account, err := s.bank.OpenAccount(kind)
	if err != nil {
		logger.Error("ledger service open account failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", err.Error()), err
	}

	if err := s.persist(ctx); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", "Unable to save the ledger right now"), err
	}

	logger.Info("ledger service open account success", logger.Fields{
		"accountNumber": account.Number(),
		"accountType":   string(account.Kind()),
	})

	return commons.SuccessResponse("account opened successfully", accountResponse(account)), nil
}

func (s *LedgerService) ListAccounts(ctx context.Context) (commons.Response[models.ListAccountsResponse], error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := s.bank.Accounts()
	response := models.ListAccountsResponse{Accounts: make([]models.AccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, accountResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *LedgerService) AddTransaction(ctx context.Context, req models.AddTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("ledger service add transaction request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount,
		"date":          req.Date,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service add transaction validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", "amount must be a decimal number"), err
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", "date must be formatted as YYYY-MM-DD"), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.Account(req.AccountNumber)
	if err != nil {
		logger.Error("ledger service add transaction account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.TransactionResponse]("account not found", err.Error()), err
	}

	if err := account.AddTransaction(amount, date); err != nil {
		logger.Info("ledger service transaction rejected", logger.Fields{
			"accountNumber": req.AccountNumber,
			"reason":        err.Error(),
		})
		return commons.ErrorResponse[models.TransactionResponse](rejectionMessage(err), err.Error()), err
	}

	if err := s.persist(ctx); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("failed to add transaction", "Unable to save the ledger right now"), err
	}

	admitted := account.Transactions()
	entry := admitted[len(admitted)-1]

	logger.Info("ledger service add transaction success", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        entry.Amount.String(),
	})

	return commons.SuccessResponse("transaction added successfully", transactionResponse(entry)), nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, accountNumber int) (commons.Response[models.ListTransactionsResponse], error) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.Account(accountNumber)
	if err != nil {
		logger.Error("ledger service list transactions account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.ListTransactionsResponse]("account not found", err.Error()), err
	}

	transactions := account.Transactions()
	response := models.ListTransactionsResponse{
		AccountNumber: account.Number(),
		Balance:       commons.FormatUSD(account.Balance()),
		Transactions:  make([]models.TransactionResponse, 0, len(transactions)),
	}
	for _, entry := range transactions {
		response.Transactions = append(response.Transactions, transactionResponse(entry))
	}

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

func (s *LedgerService) AssessInterestAndFees(ctx context.Context, req models.AssessInterestRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service assess interest request", logger.Fields{
		"accountNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		logger.Error("ledger service assess interest validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.bank.Account(req.AccountNumber)
	if err != nil {
		logger.Error("ledger service assess interest account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("account not found", err.Error()), err
	}

	if err := account.AssessInterestAndFees(); err != nil {
		logger.Info("ledger service assessment rejected", logger.Fields{
			"accountNumber": req.AccountNumber,
			"reason":        err.Error(),
		})
		return commons.ErrorResponse[models.AccountResponse](rejectionMessage(err), err.Error()), err
	}

	if err := s.persist(ctx); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("failed to assess interest and fees", "Unable to save the ledger right now"), err
	}

	logger.Info("ledger service assess interest success", logger.Fields{
		"accountNumber": req.AccountNumber,
		"balance":       account.Balance().String(),
	})

	return commons.SuccessResponse("interest and fees assessed successfully", accountResponse(account)), nil
}

// persist must be called with the mutex held.
func (s *LedgerService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.bank); err != nil {
		logger.Error("ledger service persist snapshot failed", err, nil)
		return err
	}

	return nil
}

// rejectionMessage maps the ledger's admission errors onto the envelope's
// summary line; the detailed reason travels in the errors list.
func rejectionMessage(err error) string {
	var seqErr *domain.SequenceError
	var limitErr *domain.LimitError
	switch {
	case errors.Is(err, domain.ErrOverdraft):
		return "transaction rejected: overdraft"
	case errors.As(err, &limitErr):
		return "transaction rejected: " + string(limitErr.Kind) + " limit reached"
	case errors.As(err, &seqErr) && seqErr.SamePeriod:
		return "interest and fees already assessed this month"
	case errors.As(err, &seqErr):
		return "transaction rejected: out of chronological order"
	default:
		return "operation failed"
	}
}

func accountResponse(account *domain.Account) models.AccountResponse {
	return models.AccountResponse{
		AccountNumber: account.Number(),
		AccountType:   string(account.Kind()),
		Balance:       commons.FormatUSD(account.Balance()),
		Summary:       account.String(),
	}
}

func transactionResponse(entry domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		Amount:  entry.Amount.String(),
		Date:    entry.Date.Format("2006-01-02"),
		Exempt:  entry.Exempt,
		Display: entry.String(),
	}
}
