package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindOpenAccount TransactionKind = "OPEN_ACCOUNT"
	TransactionKindDeposit     TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal  TransactionKind = "WITHDRAWAL"
)

// Transaction is one immutable ledger event. Once appended to the
// transaction log it is never modified or deleted.
type Transaction struct {
	ID            string
	Kind          TransactionKind
	AccountNumber string
	BranchCode    string
	TellerID      string
	Amount        decimal.Decimal
	RecordedAt    time.Time
}

// Description renders the human-readable ledger line for the event kind.
func (t Transaction) Description() string {
	switch t.Kind {
	case TransactionKindDeposit:
		return fmt.Sprintf("Teller %s deposited %s to account %s", t.TellerID, t.Amount.String(), t.AccountNumber)
	case TransactionKindWithdrawal:
		return fmt.Sprintf("Teller %s withdrew %s from account %s", t.TellerID, t.Amount.String(), t.AccountNumber)
	case TransactionKindOpenAccount:
		return fmt.Sprintf("Teller %s opened account %s", t.TellerID, t.AccountNumber)
	default:
		return fmt.Sprintf("Unknown transaction on account %s", t.AccountNumber)
	}
}
