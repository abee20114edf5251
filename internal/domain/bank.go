package domain

// Bank is the account registry. It assigns account numbers and looks
// accounts up; every transaction rule lives on the accounts themselves.
type Bank struct {
	accounts []*Account
}

func NewBank() *Bank { return &Bank{} }

// RestoreBank rebuilds a registry from persisted accounts, keeping their
// original numbering.
func RestoreBank(accounts []*Account) *Bank {
	b := &Bank{}
	b.accounts = append(b.accounts, accounts...)
	return b
}

// OpenAccount creates an account of the given kind under the next
// sequential account number.
func (b *Bank) OpenAccount(kind AccountKind) (*Account, error) {
	account, err := NewAccount(len(b.accounts)+1, kind)
	if err != nil {
		return nil, err
	}
	b.accounts = append(b.accounts, account)

	return account, nil
}

// Account fetches an account by number.
func (b *Bank) Account(number int) (*Account, error) {
	for _, a := range b.accounts {
		if a.Number() == number {
			return a, nil
		}
	}

	return nil, ErrAccountNotFound
}

// Accounts lists every account in opening order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}
