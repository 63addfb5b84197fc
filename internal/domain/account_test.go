package domain_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/skybank/skybank-core/internal/domain"
	"golang.org/x/sync/errgroup"
)

func TestDepositAppendsTransaction(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	if err := account.Deposit(1000, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if got := account.Balance(); got != 1000 {
		t.Fatalf("expected balance 1000, got %d", got)
	}

	transactions := account.Transactions()
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Amount != 1000 || transactions[0].BalanceAfter != 1000 {
		t.Fatalf("unexpected transaction: %+v", transactions[0])
	}
}

func TestWithdrawAppendsNegativeTransaction(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	if err := account.Deposit(1000, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := account.Withdraw(400, time.Now()); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if got := account.Balance(); got != 600 {
		t.Fatalf("expected balance 600, got %d", got)
	}

	transactions := account.Transactions()
	if len(transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(transactions))
	}
	if transactions[1].Amount != -400 || transactions[1].BalanceAfter != 600 {
		t.Fatalf("unexpected transaction: %+v", transactions[1])
	}
}

func TestLedgerMatchesCallOrder(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	if err := account.Deposit(1000, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := account.Deposit(2000, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	if err := account.Withdraw(500, time.Now()); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	if got := account.Balance(); got != 2500 {
		t.Fatalf("expected balance 2500, got %d", got)
	}

	expected := []struct {
		amount       int64
		balanceAfter int64
	}{
		{1000, 1000},
		{2000, 3000},
		{-500, 2500},
	}

	transactions := account.Transactions()
	if len(transactions) != len(expected) {
		t.Fatalf("expected %d transactions, got %d", len(expected), len(transactions))
	}
	for i, want := range expected {
		got := transactions[i]
		if got.Amount != want.amount || got.BalanceAfter != want.balanceAfter {
			t.Fatalf("transaction %d: expected (%d, %d), got (%d, %d)", i, want.amount, want.balanceAfter, got.Amount, got.BalanceAfter)
		}
	}
}

func TestWithdrawExceedingBalanceLeavesLedgerUnchanged(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	if err := account.Deposit(100, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	err := account.Withdraw(500, time.Now())
	var insufficient *domain.InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if insufficient.Requested != 500 || insufficient.Available != 100 {
		t.Fatalf("expected requested 500 and available 100, got %+v", insufficient)
	}

	if got := account.Balance(); got != 100 {
		t.Fatalf("expected balance to remain 100, got %d", got)
	}
	if got := account.TransactionCount(); got != 1 {
		t.Fatalf("expected 1 transaction, got %d", got)
	}
}

func TestWithdrawFromFreshAccountFails(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	err := account.Withdraw(1000, time.Now())
	var insufficient *domain.InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}

	if got := account.TransactionCount(); got != 0 {
		t.Fatalf("expected no transactions, got %d", got)
	}
}

func TestNonPositiveAmountsAreRejected(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	for _, amount := range []int64{0, -5} {
		var invalid *domain.InvalidAmountError

		if err := account.Deposit(amount, time.Now()); !errors.As(err, &invalid) {
			t.Fatalf("deposit(%d): expected InvalidAmountError, got %v", amount, err)
		}
		if invalid.Amount != amount {
			t.Fatalf("deposit(%d): error carries amount %d", amount, invalid.Amount)
		}

		if err := account.Withdraw(amount, time.Now()); !errors.As(err, &invalid) {
			t.Fatalf("withdraw(%d): expected InvalidAmountError, got %v", amount, err)
		}
	}

	if got := account.Balance(); got != 0 {
		t.Fatalf("expected balance 0, got %d", got)
	}
	if got := account.TransactionCount(); got != 0 {
		t.Fatalf("expected no transactions, got %d", got)
	}
}

func TestDepositOverflowIsRejected(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	if err := account.Deposit(math.MaxInt64, time.Now()); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	err := account.Deposit(1, time.Now())
	var invalid *domain.InvalidAmountError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAmountError on overflow, got %v", err)
	}

	if got := account.Balance(); got != math.MaxInt64 {
		t.Fatalf("expected balance unchanged, got %d", got)
	}
	if got := account.TransactionCount(); got != 1 {
		t.Fatalf("expected 1 transaction, got %d", got)
	}
}

func TestConcurrentDepositsKeepRunningBalanceConsistent(t *testing.T) {
	account := domain.NewAccount("ACC123456789")

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			return account.Deposit(10, time.Now())
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent deposit failed: %v", err)
	}

	if got := account.Balance(); got != 500 {
		t.Fatalf("expected balance 500, got %d", got)
	}

	transactions := account.Transactions()
	if len(transactions) != 50 {
		t.Fatalf("expected 50 transactions, got %d", len(transactions))
	}

	var running int64
	for i, tx := range transactions {
		running += tx.Amount
		if tx.BalanceAfter != running {
			t.Fatalf("transaction %d: expected running balance %d, got %d", i, running, tx.BalanceAfter)
		}
	}
}
