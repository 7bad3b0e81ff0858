package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID            string
	AccountNumber string
	OwnerName     string
	BranchCode    string
	Balance       decimal.Decimal
	OpenedAt      time.Time
	UpdatedAt     time.Time
}
