package models

import "github.com/shopspring/decimal"

type TransactionEntry struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	AccountNumber string          `json:"accountNumber"`
	BranchCode    string          `json:"branchCode"`
	TellerID      string          `json:"tellerId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	RecordedAt    string          `json:"recordedAt"`
}

type TransactionLogResponse struct {
	Count        int                `json:"count"`
	Transactions []TransactionEntry `json:"transactions"`
}
