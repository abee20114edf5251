// Command ledger is the interactive menu front end. It keeps its state in
// a JSON snapshot on disk, loading it at startup and saving after every
// successful mutation, so quitting mid-session never loses admitted
// transactions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketbank/ledger/internal/adapter/repository/file"
	"github.com/pocketbank/ledger/internal/config"
	"github.com/pocketbank/ledger/internal/domain"
	"github.com/pocketbank/ledger/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	repo := file.NewBankRepository(cfg.SnapshotPath)
	ctx := context.Background()
	bank, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	run(ctx, bank, repo, bufio.NewScanner(os.Stdin))
}

func run(ctx context.Context, bank *domain.Bank, repo domain.BankRepository, in *bufio.Scanner) {
	var current *domain.Account

	for {
		fmt.Println(strings.Repeat("-", 32))
		if current == nil {
			fmt.Println("Currently selected account: None")
		} else {
			fmt.Printf("Currently selected account: %s\n", current)
		}
		fmt.Println("Enter command")
		fmt.Println("1: open account")
		fmt.Println("2: summary")
		fmt.Println("3: select account")
		fmt.Println("4: add transaction")
		fmt.Println("5: list transactions")
		fmt.Println("6: interest and fees")
		fmt.Println("7: quit")

		command, ok := prompt(in, ">")
		if !ok {
			return
		}

		switch strings.TrimSpace(command) {
		case "1":
			openAccount(ctx, bank, repo, in)
		case "2":
			for _, account := range bank.Accounts() {
				fmt.Println(account)
			}
		case "3":
			if account := selectAccount(bank, in); account != nil {
				current = account
			}
		case "4":
			addTransaction(ctx, bank, repo, current, in)
		case "5":
			if current == nil {
				continue
			}
			for _, entry := range current.Transactions() {
				fmt.Println(entry)
			}
		case "6":
			if current == nil {
				continue
			}
			if err := current.AssessInterestAndFees(); err != nil {
				fmt.Println(err)
				continue
			}
			save(ctx, repo, bank)
		case "7":
			save(ctx, repo, bank)
			return
		}
	}
}

func openAccount(ctx context.Context, bank *domain.Bank, repo domain.BankRepository, in *bufio.Scanner) {
	kind, ok := prompt(in, "Type of account? (checking/savings)\n>")
	if !ok {
		return
	}

	if _, err := bank.OpenAccount(domain.AccountKind(strings.ToLower(strings.TrimSpace(kind)))); err != nil {
		fmt.Println(err)
		return
	}
	save(ctx, repo, bank)
}

func selectAccount(bank *domain.Bank, in *bufio.Scanner) *domain.Account {
	raw, ok := prompt(in, "Enter account number\n>")
	if !ok {
		return nil
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	account, err := bank.Account(number)
	if err != nil {
		return nil
	}

	return account
}

func addTransaction(ctx context.Context, bank *domain.Bank, repo domain.BankRepository, current *domain.Account, in *bufio.Scanner) {
	if current == nil {
		return
	}

	rawAmount, ok := prompt(in, "Amount?\n>")
	if !ok {
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return
	}

	rawDate, ok := prompt(in, "Date? (YYYY-MM-DD)\n>")
	if !ok {
		return
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(rawDate))
	if err != nil {
		return
	}

	if err := current.AddTransaction(amount, date); err != nil {
		fmt.Println(err)
		return
	}
	save(ctx, repo, bank)
}

func prompt(in *bufio.Scanner, text string) (string, bool) {
	fmt.Print(text)
	if !in.Scan() {
		return "", false
	}

	return in.Text(), true
}

func save(ctx context.Context, repo domain.BankRepository, bank *domain.Bank) {
	if err := repo.Save(ctx, bank); err != nil {
		logger.Error("save snapshot failed", err, nil)
	}
}
