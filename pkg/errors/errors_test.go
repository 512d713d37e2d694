package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad value: %d", 42)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "bad value: 42" {
		t.Errorf("Message = %q, want %q", err.Message, "bad value: 42")
	}
	want := "INVALID_INPUT: bad value: 42"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := Wrap(ErrCodeInvalidChain, cause, "decode %s", "chain.yaml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
	want := "INVALID_CHAIN: decode chain.yaml: underlying failure"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeWrongPIN, "incorrect PIN")

	if !Is(err, ErrCodeWrongPIN) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeInsufficientFunds) {
		t.Error("Is() = true, want false for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeWrongPIN) {
		t.Error("Is() = true, want false for plain error")
	}
}

func TestIsWrappedInChain(t *testing.T) {
	inner := New(ErrCodeDivisionByZero, "division by zero")
	outer := fmt.Errorf("calc: %w", inner)

	if !Is(outer, ErrCodeDivisionByZero) {
		t.Error("Is() should unwrap through fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeDemoNotFound, "no such demo")

	if got := GetCode(err); got != ErrCodeDemoNotFound {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeDemoNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty for plain error", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidAmount, "amount must be positive")

	if got := UserMessage(err); got != "amount must be positive" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := &InsufficientFundsError{Requested: 500, Available: 120.5}

	want := "insufficient funds: requested 500.00, available 120.50"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != ErrCodeInsufficientFunds {
		t.Errorf("Code() = %q, want %q", err.Code(), ErrCodeInsufficientFunds)
	}
}
