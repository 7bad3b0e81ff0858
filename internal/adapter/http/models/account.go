package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	OwnerName  string `json:"ownerName"`
	BranchCode string `json:"branchCode"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.OwnerName) == "" {
		errs = append(errs, "ownerName is required")
	}
	if !isSixDigitBranchCode(r.BranchCode) {
		errs = append(errs, "branchCode must be exactly 6 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type OpenAccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	OwnerName     string          `json:"ownerName"`
	BranchCode    string          `json:"branchCode"`
	Balance       decimal.Decimal `json:"balance"`
	TellerID      string          `json:"tellerId"`
	OpenedAt      string          `json:"openedAt"`
}

type DepositRequest struct {
	AccountNumber string          `json:"accountNumber"`
	BranchCode    string          `json:"branchCode"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r DepositRequest) Validate() error {
	return validateAccountMovement(r.AccountNumber, r.BranchCode, r.Amount)
}

type WithdrawRequest struct {
	AccountNumber string          `json:"accountNumber"`
	BranchCode    string          `json:"branchCode"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	return validateAccountMovement(r.AccountNumber, r.BranchCode, r.Amount)
}

type AccountMovementResponse struct {
	AccountNumber string          `json:"accountNumber"`
	BranchCode    string          `json:"branchCode"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	TellerID      string          `json:"tellerId"`
}

type GetAccountResponse struct {
	AccountNumber string          `json:"accountNumber"`
	OwnerName     string          `json:"ownerName"`
	BranchCode    string          `json:"branchCode"`
	Balance       decimal.Decimal `json:"balance"`
	OpenedAt      string          `json:"openedAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

func validateAccountMovement(accountNumber, branchCode string, amount decimal.Decimal) error {
	var errs []string

	if !isTenDigitAccountNumber(accountNumber) {
		errs = append(errs, "accountNumber must be exactly 10 digits")
	}
	if !isSixDigitBranchCode(branchCode) {
		errs = append(errs, "branchCode must be exactly 6 digits")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
