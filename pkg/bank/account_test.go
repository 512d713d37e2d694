package bank

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patternbook/pkg/errors"
)

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("Ada", "1234", 100)
	if err != nil {
		t.Fatalf("NewAccount returned error: %v", err)
	}
	if a.Owner() != "Ada" {
		t.Errorf("Owner() = %q, want %q", a.Owner(), "Ada")
	}
	got, err := a.Balance("1234")
	if err != nil {
		t.Fatalf("Balance returned error: %v", err)
	}
	if got != 100 {
		t.Errorf("Balance = %v, want 100", got)
	}
}

func TestNewAccountNegativeOpening(t *testing.T) {
	_, err := NewAccount("Ada", "1234", -5)
	if !errors.Is(err, errors.ErrCodeInvalidAmount) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidAmount)
	}
}

func TestWrongPINLeavesStateUnchanged(t *testing.T) {
	a, _ := NewAccount("Ada", "1234", 100)

	if _, err := a.Balance("0000"); !errors.Is(err, errors.ErrCodeWrongPIN) {
		t.Errorf("Balance with wrong PIN: code = %q, want %q", errors.GetCode(err), errors.ErrCodeWrongPIN)
	}
	if err := a.Withdraw("0000", 10); !errors.Is(err, errors.ErrCodeWrongPIN) {
		t.Errorf("Withdraw with wrong PIN: code = %q, want %q", errors.GetCode(err), errors.ErrCodeWrongPIN)
	}

	// Failure is idempotent: balance is untouched.
	got, err := a.Balance("1234")
	if err != nil {
		t.Fatalf("Balance returned error: %v", err)
	}
	if got != 100 {
		t.Errorf("Balance = %v after failed attempts, want 100", got)
	}
}

func TestDepositWithdraw(t *testing.T) {
	a, _ := NewAccount("Ada", "1234", 50)

	if err := a.Deposit(25); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if err := a.Withdraw("1234", 30); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}

	got, _ := a.Balance("1234")
	if got != 45 {
		t.Errorf("Balance = %v, want 45", got)
	}
}

func TestDepositInvalidAmount(t *testing.T) {
	a, _ := NewAccount("Ada", "1234", 50)

	for _, amount := range []float64{0, -10} {
		if err := a.Deposit(amount); !errors.Is(err, errors.ErrCodeInvalidAmount) {
			t.Errorf("Deposit(%v): code = %q, want %q", amount, errors.GetCode(err), errors.ErrCodeInvalidAmount)
		}
	}
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	a, _ := NewAccount("Ada", "1234", 50)

	err := a.Withdraw("1234", 80)
	if !errors.Is(err, errors.ErrCodeInsufficientFunds) {
		t.Fatalf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInsufficientFunds)
	}

	// The wrapped error carries the amounts involved.
	var funds *errors.InsufficientFundsError
	if !stderrors.As(err, &funds) {
		t.Fatal("error chain should contain *InsufficientFundsError")
	}
	if funds.Requested != 80 || funds.Available != 50 {
		t.Errorf("amounts = %v/%v, want 80/50", funds.Requested, funds.Available)
	}

	got, _ := a.Balance("1234")
	if got != 50 {
		t.Errorf("Balance = %v after rejected withdrawal, want 50", got)
	}
}

func TestHistory(t *testing.T) {
	a, _ := NewAccount("Ada", "1234", 100)
	_ = a.Deposit(20)
	_ = a.Withdraw("1234", 50)
	_ = a.Withdraw("1234", 500) // rejected, not recorded

	got, err := a.History("1234")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	want := []string{"opened with 100.00", "deposit 20.00", "withdraw 50.00"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	if _, err := a.History("0000"); !errors.Is(err, errors.ErrCodeWrongPIN) {
		t.Errorf("History with wrong PIN: code = %q, want %q", errors.GetCode(err), errors.ErrCodeWrongPIN)
	}
}
