package domain

import (
	"math"
	"sync"
	"time"
)

// Account owns one in-memory ledger: the current balance plus the ordered,
// append-only transactions that produced it. Amounts are minor currency
// units (int64), so the balance can never drift through rounding. The mutex
// serializes mutations so one account stays consistent even when a session
// is driven from more than one goroutine.
type Account struct {
	mu            sync.Mutex
	accountNumber string
	balance       int64
	transactions  []Transaction
}

// Transaction is one applied ledger mutation. Amount is positive for a
// deposit and negative for a withdrawal; BalanceAfter is the balance
// immediately after the mutation was applied.
type Transaction struct {
	Date         time.Time
	Amount       int64
	BalanceAfter int64
}

func NewAccount(accountNumber string) *Account {
	return &Account{accountNumber: accountNumber}
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

// Transactions returns a copy of the ledger in insertion order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Snapshot returns the balance and a copy of the ledger taken under a single
// lock, so a statement always sees a balance consistent with its rows.
func (a *Account) Snapshot() (int64, []Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return a.balance, out
}

// Deposit adds amount to the balance and appends the matching transaction.
// The amount must be strictly positive and must not wrap the int64 balance;
// on failure nothing changes.
func (a *Account) Deposit(amount int64, date time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount <= 0 {
		return &InvalidAmountError{Amount: amount}
	}
	if amount > math.MaxInt64-a.balance {
		return &InvalidAmountError{Amount: amount}
	}

	a.balance += amount
	a.transactions = append(a.transactions, Transaction{
		Date:         date,
		Amount:       amount,
		BalanceAfter: a.balance,
	})
	return nil
}

// Withdraw subtracts amount from the balance and appends the matching
// transaction. Positivity is checked before the balance so a non-positive
// request never reports insufficient funds; on failure nothing changes.
func (a *Account) Withdraw(amount int64, date time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount <= 0 {
		return &InvalidAmountError{Amount: amount}
	}
	if amount > a.balance {
		return &InsufficientFundsError{Requested: amount, Available: a.balance}
	}

	a.balance -= amount
	a.transactions = append(a.transactions, Transaction{
		Date:         date,
		Amount:       -amount,
		BalanceAfter: a.balance,
	})
	return nil
}
