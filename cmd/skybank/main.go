package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/skybank/skybank-core/internal/adapter/console"
	"github.com/skybank/skybank-core/internal/config"
	"github.com/skybank/skybank-core/internal/session"
	"github.com/skybank/skybank-core/internal/usecase/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sess := session.New()
	auth := services.NewAuthService(sess, cfg.CurrencyMinorDigits)
	accounts := services.NewAccountService(sess, cfg.StatementDateFormat, cfg.CurrencyMinorDigits)

	presenter := console.NewPresenter(auth, accounts, cfg.BankName, cfg.CurrencyMinorDigits, os.Stdin, os.Stdout)
	presenter.Run(context.Background())
}
