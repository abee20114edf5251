package domain

import "context"

// BankRepository is the persistence boundary for the whole registry. Save
// writes a full snapshot; Load reconstructs it exactly, including account
// numbers, transaction order, amounts, exempt flags and assessed-period
// markers.
type BankRepository interface {
	Load(ctx context.Context) (*Bank, error)
	Save(ctx context.Context, bank *Bank) error
}
