package services

import (
	"context"
	"time"

	"github.com/skybank/skybank-core/internal/adapter/console/models"
	"github.com/skybank/skybank-core/internal/domain"
	"github.com/skybank/skybank-core/internal/logger"
	"github.com/skybank/skybank-core/internal/session"
)

// AccountService is the ledger engine: it validates and applies
// balance-changing operations against the session's active account and
// renders statements. Typed domain errors propagate to the caller as-is.
type AccountService struct {
	session     *session.Session
	dateFormat  string
	minorDigits int32
}

func NewAccountService(sess *session.Session, dateFormat string, minorDigits int32) *AccountService {
	return &AccountService{
		session:     sess,
		dateFormat:  dateFormat,
		minorDigits: minorDigits,
	}
}

func (s *AccountService) Deposit(_ context.Context, amount int64) (models.TransactionResponse, error) {
	logger.Info("account service deposit request", logger.Fields{
		"amount": amount,
	})

	account, err := s.activeAccount()
	if err != nil {
		logger.Error("account service deposit failed", err, nil)
		return models.TransactionResponse{}, err
	}

	if err := account.Deposit(amount, time.Now()); err != nil {
		logger.Error("account service deposit failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
			"amount":        amount,
		})
		return models.TransactionResponse{}, err
	}

	response := models.TransactionResponse{
		AccountNumber: account.AccountNumber(),
		Amount:        models.FormatSignedAmount(amount, s.minorDigits),
		Balance:       models.FormatAmount(account.Balance(), s.minorDigits),
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"amount":        response.Amount,
		"balance":       response.Balance,
	})

	return response, nil
}

func (s *AccountService) Withdraw(_ context.Context, amount int64) (models.TransactionResponse, error) {
	logger.Info("account service withdraw request", logger.Fields{
		"amount": amount,
	})

	account, err := s.activeAccount()
	if err != nil {
		logger.Error("account service withdraw failed", err, nil)
		return models.TransactionResponse{}, err
	}

	if err := account.Withdraw(amount, time.Now()); err != nil {
		logger.Error("account service withdraw failed", err, logger.Fields{
			"accountNumber": account.AccountNumber(),
			"amount":        amount,
		})
		return models.TransactionResponse{}, err
	}

	response := models.TransactionResponse{
		AccountNumber: account.AccountNumber(),
		Amount:        models.FormatSignedAmount(-amount, s.minorDigits),
		Balance:       models.FormatAmount(account.Balance(), s.minorDigits),
	}

	logger.Info("account service withdraw success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"amount":        response.Amount,
		"balance":       response.Balance,
	})

	return response, nil
}

// Statement renders the transaction history most recent first. Reading only:
// the ledger is never touched, and an empty history is a success with zero
// rows.
func (s *AccountService) Statement(_ context.Context) (models.StatementResponse, error) {
	logger.Info("account service statement request", nil)

	account, err := s.activeAccount()
	if err != nil {
		logger.Error("account service statement failed", err, nil)
		return models.StatementResponse{}, err
	}

	balance, transactions := account.Snapshot()

	rows := make([]models.StatementRow, 0, len(transactions))
	for i := len(transactions) - 1; i >= 0; i-- {
		t := transactions[i]
		rows = append(rows, models.StatementRow{
			Date:    t.Date.Format(s.dateFormat),
			Amount:  models.FormatSignedAmount(t.Amount, s.minorDigits),
			Balance: models.FormatAmount(t.BalanceAfter, s.minorDigits),
		})
	}

	response := models.StatementResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       models.FormatAmount(balance, s.minorDigits),
		Rows:          rows,
	}

	logger.Info("account service statement success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"rows":          len(rows),
	})

	return response, nil
}

func (s *AccountService) activeAccount() (*domain.Account, error) {
	account := s.session.Active()
	if account == nil {
		return nil, &domain.AuthenticationError{Reason: "no account is currently signed in"}
	}
	return account, nil
}
