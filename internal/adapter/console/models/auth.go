package models

import (
	"errors"
	"regexp"
	"strings"
)

var accountNumberPattern = regexp.MustCompile(`^ACC[A-Z0-9]{9}$`)

// ValidAccountNumber reports whether s matches the ACC-prefixed format.
// Advisory at the sign-in boundary: a mismatch is logged, not rejected.
func ValidAccountNumber(s string) bool {
	return accountNumberPattern.MatchString(s)
}

type SignInRequest struct {
	AccountNumber string `json:"accountNumber"`
}

func (r SignInRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateAccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
}

type SignInResponse struct {
	AccountNumber    string `json:"accountNumber"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transactionCount"`
}

type SignOutResponse struct {
	AccountNumber string `json:"accountNumber"`
}
