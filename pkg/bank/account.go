// Package bank implements the encapsulation teaching example: an account
// whose balance is reachable only through PIN-guarded methods.
//
// Failed operations are idempotent: a rejected call leaves the account
// exactly as it was. The balance can never go negative.
package bank

import (
	"fmt"

	"patternbook/pkg/errors"
)

// Account is a PIN-guarded bank account. The balance and PIN are
// unexported; all access goes through the methods below.
type Account struct {
	owner   string
	pin     string
	balance float64
	history []string
}

// NewAccount creates an account for owner with the given PIN and opening
// balance. A negative opening balance is rejected with INVALID_AMOUNT.
func NewAccount(owner, pin string, opening float64) (*Account, error) {
	if opening < 0 {
		return nil, errors.New(errors.ErrCodeInvalidAmount, "opening balance cannot be negative, got %.2f", opening)
	}
	a := &Account{owner: owner, pin: pin, balance: opening}
	a.record("opened with %.2f", opening)
	return a, nil
}

// Owner returns the account holder's name.
func (a *Account) Owner() string { return a.owner }

// Balance returns the current balance after verifying the PIN.
// A wrong PIN returns WRONG_PIN and reveals nothing.
func (a *Account) Balance(pin string) (float64, error) {
	if err := a.checkPIN(pin); err != nil {
		return 0, err
	}
	return a.balance, nil
}

// Deposit adds amount to the balance. Deposits need no PIN.
// Non-positive amounts are rejected with INVALID_AMOUNT.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return errors.New(errors.ErrCodeInvalidAmount, "deposit must be positive, got %.2f", amount)
	}
	a.balance += amount
	a.record("deposit %.2f", amount)
	return nil
}

// Withdraw removes amount from the balance after verifying the PIN.
// Errors leave the balance unchanged:
//   - WRONG_PIN for an incorrect PIN
//   - INVALID_AMOUNT for non-positive amounts
//   - INSUFFICIENT_FUNDS when amount exceeds the balance
func (a *Account) Withdraw(pin string, amount float64) error {
	if err := a.checkPIN(pin); err != nil {
		return err
	}
	if amount <= 0 {
		return errors.New(errors.ErrCodeInvalidAmount, "withdrawal must be positive, got %.2f", amount)
	}
	if amount > a.balance {
		return errors.Wrap(errors.ErrCodeInsufficientFunds,
			&errors.InsufficientFundsError{Requested: amount, Available: a.balance},
			"cannot withdraw %.2f", amount)
	}
	a.balance -= amount
	a.record("withdraw %.2f", amount)
	return nil
}

// History returns the successful operations in order, PIN-guarded like the
// balance.
func (a *Account) History(pin string) ([]string, error) {
	if err := a.checkPIN(pin); err != nil {
		return nil, err
	}
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out, nil
}

func (a *Account) checkPIN(pin string) error {
	if pin != a.pin {
		return errors.New(errors.ErrCodeWrongPIN, "incorrect PIN for account of %s", a.owner)
	}
	return nil
}

func (a *Account) record(format string, args ...any) {
	a.history = append(a.history, fmt.Sprintf(format, args...))
}
