package domain

import "fmt"

// AuthenticationError reports a ledger operation attempted without an active
// account, a sign-out with no one signed in, or a blank sign-in identifier.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}

// InvalidAmountError reports a non-positive (or balance-overflowing) amount
// passed to deposit or withdraw.
type InvalidAmountError struct {
	Amount int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("amount must be positive, attempted amount: %d", e.Amount)
}

// InsufficientFundsError reports a withdrawal exceeding the available
// balance.
type InsufficientFundsError struct {
	Requested int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: attempted withdrawal %d, available balance %d", e.Requested, e.Available)
}
