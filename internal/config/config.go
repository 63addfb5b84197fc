package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultBankName = "SkyBank"
const defaultStatementDateFormat = "02/01/2006"
const defaultCurrencyMinorDigits = 2

type Config struct {
	BankName            string
	StatementDateFormat string
	CurrencyMinorDigits int32
}

func Load() (Config, error) {
	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	dateFormat := strings.TrimSpace(os.Getenv("STATEMENT_DATE_FORMAT"))
	if dateFormat == "" {
		dateFormat = defaultStatementDateFormat
	}

	minorDigits := int32(defaultCurrencyMinorDigits)
	if raw := strings.TrimSpace(os.Getenv("CURRENCY_MINOR_DIGITS")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 8 {
			return Config{}, fmt.Errorf("CURRENCY_MINOR_DIGITS must be an integer between 0 and 8, got %q", raw)
		}
		minorDigits = int32(parsed)
	}

	return Config{
		BankName:            bankName,
		StatementDateFormat: dateFormat,
		CurrencyMinorDigits: minorDigits,
	}, nil
}
