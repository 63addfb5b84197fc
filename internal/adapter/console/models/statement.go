package models

type TransactionResponse struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Balance       string `json:"balance"`
}

type StatementRow struct {
	Date    string `json:"date"`
	Amount  string `json:"amount"`
	Balance string `json:"balance"`
}

// StatementResponse carries the rendered statement, rows most recent first.
// An account with no transactions yields zero rows, not an error.
type StatementResponse struct {
	AccountNumber string         `json:"accountNumber"`
	Balance       string         `json:"balance"`
	Rows          []StatementRow `json:"rows"`
}
