package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/skybank/skybank-core/internal/adapter/console/models"
	"github.com/skybank/skybank-core/internal/commons"
	"github.com/skybank/skybank-core/internal/domain"
	"github.com/skybank/skybank-core/internal/logger"
	"github.com/skybank/skybank-core/internal/session"
)

// AuthService owns the session boundary: account creation, sign-in and
// sign-out. Domain errors are converted into failure responses here instead
// of propagating; ledger operations live on AccountService and propagate.
type AuthService struct {
	session     *session.Session
	minorDigits int32
}

func NewAuthService(sess *session.Session, minorDigits int32) *AuthService {
	return &AuthService{
		session:     sess,
		minorDigits: minorDigits,
	}
}

func (s *AuthService) CreateAccount(_ context.Context) (commons.Response[models.CreateAccountResponse], error) {
	logger.Info("auth service create account request", nil)

	accountNumber, err := generateAccountNumber()
	if err != nil {
		logger.Error("auth service create account number generation failed", err, nil)
		return commons.ErrorResponse[models.CreateAccountResponse]("failed to create account", "Unable to create an account right now"), fmt.Errorf("generate account number: %w", err)
	}

	account := domain.NewAccount(accountNumber)
	s.session.SetActive(account)

	response := models.CreateAccountResponse{
		AccountNumber: account.AccountNumber(),
		Balance:       models.FormatAmount(account.Balance(), s.minorDigits),
	}

	logger.Info("auth service create account success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", response), nil
}

// SignIn installs a fresh zero-balance ledger for the supplied identifier.
// There is no lookup of prior accounts: without a persistence layer there is
// nothing to restore, so sign-in never recovers balance or history.
func (s *AuthService) SignIn(_ context.Context, req models.SignInRequest) (commons.Response[models.SignInResponse], error) {
	logger.Info("auth service sign in request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		authErr := &domain.AuthenticationError{Reason: err.Error()}
		logger.Error("auth service sign in validation failed", authErr, nil)
		return commons.ErrorResponse[models.SignInResponse]("sign in failed", err.Error()), authErr
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	if !models.ValidAccountNumber(accountNumber) {
		logger.Warn("auth service sign in account number format mismatch", logger.Fields{
			"accountNumber": accountNumber,
		})
	}

	account := domain.NewAccount(accountNumber)
	s.session.SetActive(account)

	response := models.SignInResponse{
		AccountNumber:    account.AccountNumber(),
		Balance:          models.FormatAmount(account.Balance(), s.minorDigits),
		TransactionCount: account.TransactionCount(),
	}

	logger.Info("auth service sign in success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("signed in successfully", response), nil
}

func (s *AuthService) SignOut(_ context.Context) (commons.Response[models.SignOutResponse], error) {
	logger.Info("auth service sign out request", nil)

	account := s.session.Active()
	if account == nil {
		authErr := &domain.AuthenticationError{Reason: "no account is currently signed in"}
		logger.Error("auth service sign out failed", authErr, nil)
		return commons.ErrorResponse[models.SignOutResponse]("sign out failed", authErr.Error()), authErr
	}

	s.session.Clear()

	response := models.SignOutResponse{
		AccountNumber: account.AccountNumber(),
	}

	logger.Info("auth service sign out success", logger.Fields{
		"accountNumber": response.AccountNumber,
	})

	return commons.SuccessResponse("signed out successfully", response), nil
}

// CurrentAccount returns the session's active account, or nil when none.
func (s *AuthService) CurrentAccount() *domain.Account {
	return s.session.Active()
}

func generateAccountNumber() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	raw := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "ACC" + raw[:9], nil
}
