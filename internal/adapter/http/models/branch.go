package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateBranchRequest struct {
	Address        string          `json:"address"`
	InitialReserve decimal.Decimal `json:"initialReserve"`
}

func (r CreateBranchRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}
	if r.InitialReserve.LessThan(decimal.Zero) {
		errs = append(errs, "initialReserve cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type CreateBranchResponse struct {
	BranchCode  string          `json:"branchCode"`
	Address     string          `json:"address"`
	CashReserve decimal.Decimal `json:"cashReserve"`
	CreatedAt   string          `json:"createdAt"`
}

type ReserveTransferRequest struct {
	FromBranchCode string          `json:"fromBranchCode"`
	ToBranchCode   string          `json:"toBranchCode"`
	Amount         decimal.Decimal `json:"amount"`
}

func (r ReserveTransferRequest) Validate() error {
	var errs []string

	if !isSixDigitBranchCode(r.FromBranchCode) {
		errs = append(errs, "fromBranchCode must be exactly 6 digits")
	}
	if !isSixDigitBranchCode(r.ToBranchCode) {
		errs = append(errs, "toBranchCode must be exactly 6 digits")
	}
	if strings.TrimSpace(r.FromBranchCode) == strings.TrimSpace(r.ToBranchCode) {
		errs = append(errs, "fromBranchCode and toBranchCode cannot be the same")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ReserveTransferResponse struct {
	FromBranchCode string          `json:"fromBranchCode"`
	ToBranchCode   string          `json:"toBranchCode"`
	Amount         decimal.Decimal `json:"amount"`
	FromReserve    decimal.Decimal `json:"fromReserve"`
	ToReserve      decimal.Decimal `json:"toReserve"`
}
