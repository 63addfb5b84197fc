package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/skybank/skybank-core/internal/adapter/console"
	"github.com/skybank/skybank-core/internal/session"
	"github.com/skybank/skybank-core/internal/usecase/services"
)

func runPresenter(t *testing.T, script string) string {
	t.Helper()

	sess := session.New()
	auth := services.NewAuthService(sess, 2)
	accounts := services.NewAccountService(sess, "02/01/2006", 2)

	var out bytes.Buffer
	presenter := console.NewPresenter(auth, accounts, "TestBank", 2, strings.NewReader(script), &out)
	presenter.Run(context.Background())

	return out.String()
}

func TestPresenterCreateDepositStatementFlow(t *testing.T) {
	script := strings.Join([]string{
		"1",     // create account
		"1",     // deposit
		"10.00", // amount in major units
		"3",     // print statement
		"4",     // sign out
		"3",     // exit
	}, "\n") + "\n"

	output := runPresenter(t, script)

	for _, want := range []string{
		"Welcome to TestBank Console",
		"account created successfully",
		"Deposit successful.",
		"New Balance: 10.00",
		"=== Account Statement ===",
		"+10.00",
		"signed out successfully",
		"Thank you for using TestBank. Goodbye!",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestPresenterRejectsSubMinorFractions(t *testing.T) {
	script := strings.Join([]string{
		"1",       // create account
		"1",       // deposit
		"10.005",  // finer than two minor digits
		"5",       // exit
	}, "\n") + "\n"

	output := runPresenter(t, script)

	if !strings.Contains(output, "Invalid amount") {
		t.Fatalf("expected sub-minor fraction to be rejected, got:\n%s", output)
	}
}

func TestPresenterShowsInsufficientFunds(t *testing.T) {
	script := strings.Join([]string{
		"1",    // create account
		"1",    // deposit
		"1.00", // 100 minor units
		"2",    // withdraw
		"5.00", // 500 minor units
		"5",    // exit
	}, "\n") + "\n"

	output := runPresenter(t, script)

	if !strings.Contains(output, "insufficient funds") {
		t.Fatalf("expected insufficient funds message, got:\n%s", output)
	}
	if !strings.Contains(output, "attempted withdrawal 500, available balance 100") {
		t.Fatalf("expected attempted and available amounts in the message, got:\n%s", output)
	}
}

func TestPresenterEmptyStatement(t *testing.T) {
	script := strings.Join([]string{
		"2",            // sign in
		"ACC123456789", // account number
		"3",            // print statement
		"5",            // exit
	}, "\n") + "\n"

	output := runPresenter(t, script)

	if !strings.Contains(output, "No transactions found for this account.") {
		t.Fatalf("expected empty statement notice, got:\n%s", output)
	}
}

func TestPresenterStopsAtEOF(t *testing.T) {
	output := runPresenter(t, "")

	if !strings.Contains(output, "Thank you for using TestBank. Goodbye!") {
		t.Fatalf("expected a clean goodbye on EOF, got:\n%s", output)
	}
}
