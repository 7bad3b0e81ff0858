package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch holds cash on hand separately from customer account balances.
type Branch struct {
	Code        string
	Address     string
	CashReserve decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
