package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skybank/skybank-core/internal/adapter/console/models"
	"github.com/skybank/skybank-core/internal/commons"
	"github.com/skybank/skybank-core/internal/domain"
)

const successSymbol = "✓"
const errorSymbol = "✗"

type AuthService interface {
	CreateAccount(ctx context.Context) (commons.Response[models.CreateAccountResponse], error)
	SignIn(ctx context.Context, req models.SignInRequest) (commons.Response[models.SignInResponse], error)
	SignOut(ctx context.Context) (commons.Response[models.SignOutResponse], error)
	CurrentAccount() *domain.Account
}

type AccountService interface {
	Deposit(ctx context.Context, amount int64) (models.TransactionResponse, error)
	Withdraw(ctx context.Context, amount int64) (models.TransactionResponse, error)
	Statement(ctx context.Context) (models.StatementResponse, error)
}

// Presenter drives the interactive menu loop. It owns no ledger state; it
// parses input, calls the services and renders whatever they return.
type Presenter struct {
	auth        AuthService
	accounts    AccountService
	bankName    string
	minorDigits int32
	in          *bufio.Scanner
	out         io.Writer
}

func NewPresenter(auth AuthService, accounts AccountService, bankName string, minorDigits int32, in io.Reader, out io.Writer) *Presenter {
	return &Presenter{
		auth:        auth,
		accounts:    accounts,
		bankName:    bankName,
		minorDigits: minorDigits,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run blocks until the user exits or input reaches EOF.
func (p *Presenter) Run(ctx context.Context) {
	fmt.Fprintf(p.out, "Welcome to %s Console\n", p.bankName)
	fmt.Fprintln(p.out, "-------------------------")

	running := true
	for running {
		if p.auth.CurrentAccount() == nil {
			running = p.accountSelection(ctx)
		} else {
			running = p.accountOperations(ctx)
		}
	}

	fmt.Fprintf(p.out, "Thank you for using %s. Goodbye!\n", p.bankName)
}

func (p *Presenter) accountSelection(ctx context.Context) bool {
	fmt.Fprintln(p.out, "\nAccount Selection")
	fmt.Fprintln(p.out, "1. Create new account")
	fmt.Fprintln(p.out, "2. Sign in with existing account")
	fmt.Fprintln(p.out, "3. Exit")
	fmt.Fprint(p.out, "Your choice: ")

	choice, ok := p.readLine()
	if !ok {
		return false
	}

	switch choice {
	case "1":
		p.handleCreateAccount(ctx)
	case "2":
		return p.handleSignIn(ctx)
	case "3":
		return false
	default:
		fmt.Fprintln(p.out, "Invalid choice. Please try again.")
	}
	return true
}

func (p *Presenter) accountOperations(ctx context.Context) bool {
	fmt.Fprintln(p.out, "\nAccount Operations")
	fmt.Fprintln(p.out, "1. Deposit money")
	fmt.Fprintln(p.out, "2. Withdraw money")
	fmt.Fprintln(p.out, "3. Print statement")
	fmt.Fprintln(p.out, "4. Sign out")
	fmt.Fprintln(p.out, "5. Exit")
	fmt.Fprint(p.out, "Your choice: ")

	choice, ok := p.readLine()
	if !ok {
		return false
	}

	switch choice {
	case "1":
		return p.handleDeposit(ctx)
	case "2":
		return p.handleWithdrawal(ctx)
	case "3":
		p.handleStatement(ctx)
	case "4":
		p.handleSignOut(ctx)
	case "5":
		return false
	default:
		fmt.Fprintln(p.out, "Invalid choice. Please try again.")
	}
	return true
}

func (p *Presenter) handleCreateAccount(ctx context.Context) {
	response, err := p.auth.CreateAccount(ctx)
	if err != nil || !response.Success || response.Data == nil {
		fmt.Fprintf(p.out, "\n%s %s\n", errorSymbol, response.Detail())
		return
	}

	fmt.Fprintf(p.out, "\n%s %s\n", successSymbol, response.Message)
	fmt.Fprintf(p.out, "Account Number: %s\n", response.Data.AccountNumber)
	fmt.Fprintf(p.out, "Initial Balance: %s\n", response.Data.Balance)
}

func (p *Presenter) handleSignIn(ctx context.Context) bool {
	fmt.Fprint(p.out, "Enter account number: ")
	accountNumber, ok := p.readLine()
	if !ok {
		return false
	}

	response, err := p.auth.SignIn(ctx, models.SignInRequest{AccountNumber: accountNumber})
	if err != nil || !response.Success || response.Data == nil {
		fmt.Fprintf(p.out, "\n%s %s\n", errorSymbol, response.Detail())
		return true
	}

	fmt.Fprintf(p.out, "\n%s %s\n", successSymbol, response.Message)
	fmt.Fprintf(p.out, "Account Number: %s\n", response.Data.AccountNumber)
	fmt.Fprintf(p.out, "Current Balance: %s\n", response.Data.Balance)
	fmt.Fprintf(p.out, "Total Transactions: %d\n", response.Data.TransactionCount)
	return true
}

func (p *Presenter) handleDeposit(ctx context.Context) bool {
	fmt.Fprint(p.out, "Enter amount to deposit: ")
	raw, ok := p.readLine()
	if !ok {
		return false
	}

	amount, err := p.parseAmount(raw)
	if err != nil {
		fmt.Fprintf(p.out, "\n%s Invalid amount: %s\n", errorSymbol, err)
		return true
	}

	response, err := p.accounts.Deposit(ctx, amount)
	if err != nil {
		fmt.Fprintf(p.out, "\n%s Error: %s\n", errorSymbol, err)
		return true
	}

	fmt.Fprintf(p.out, "\n%s Deposit successful.\n", successSymbol)
	fmt.Fprintf(p.out, "New Balance: %s\n", response.Balance)
	return true
}

func (p *Presenter) handleWithdrawal(ctx context.Context) bool {
	fmt.Fprint(p.out, "Enter amount to withdraw: ")
	raw, ok := p.readLine()
	if !ok {
		return false
	}

	amount, err := p.parseAmount(raw)
	if err != nil {
		fmt.Fprintf(p.out, "\n%s Invalid amount: %s\n", errorSymbol, err)
		return true
	}

	response, err := p.accounts.Withdraw(ctx, amount)
	if err != nil {
		fmt.Fprintf(p.out, "\n%s Error: %s\n", errorSymbol, err)
		return true
	}

	fmt.Fprintf(p.out, "\n%s Withdrawal successful.\n", successSymbol)
	fmt.Fprintf(p.out, "New Balance: %s\n", response.Balance)
	return true
}

func (p *Presenter) handleStatement(ctx context.Context) {
	response, err := p.accounts.Statement(ctx)
	if err != nil {
		fmt.Fprintf(p.out, "\n%s Error: %s\n", errorSymbol, err)
		return
	}

	if len(response.Rows) == 0 {
		fmt.Fprintln(p.out, "\nNo transactions found for this account.")
		return
	}

	fmt.Fprintln(p.out, "\n=== Account Statement ===")
	fmt.Fprintf(p.out, "Account Number: %s\n", response.AccountNumber)
	fmt.Fprintf(p.out, "Current Balance: %s\n", response.Balance)
	fmt.Fprintln(p.out, "\nDate       || Amount  || Balance")
	fmt.Fprintln(p.out, "--------------------------------")
	for _, row := range response.Rows {
		fmt.Fprintf(p.out, "%-10s || %-7s || %s\n", row.Date, row.Amount, row.Balance)
	}
	fmt.Fprintln(p.out, "================================")
}

func (p *Presenter) handleSignOut(ctx context.Context) {
	response, err := p.auth.SignOut(ctx)
	if err != nil || !response.Success {
		fmt.Fprintf(p.out, "\n%s %s\n", errorSymbol, response.Detail())
		return
	}

	fmt.Fprintf(p.out, "\n%s %s\n", successSymbol, response.Message)
}

// parseAmount converts major-unit decimal input ("25" or "25.50") into minor
// units, rejecting fractions finer than the configured minor digit count.
func (p *Presenter) parseAmount(raw string) (int64, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("please enter a valid number")
	}

	shifted := value.Shift(p.minorDigits)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amounts cannot have more than %d decimal places", p.minorDigits)
	}
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount is too large")
	}

	return shifted.IntPart(), nil
}

func (p *Presenter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
