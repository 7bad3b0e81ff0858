package models

import (
	"errors"
	"strings"
)

type RegisterTellerRequest struct {
	Name       string `json:"name"`
	BranchCode string `json:"branchCode"`
	AccessPIN  string `json:"accessPIN"`
}

func (r RegisterTellerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !isSixDigitBranchCode(r.BranchCode) {
		errs = append(errs, "branchCode must be exactly 6 digits")
	}
	pin := strings.TrimSpace(r.AccessPIN)
	if len(pin) < 4 || len(pin) > 6 || !digitsOnly(pin) {
		errs = append(errs, "accessPIN must be 4 to 6 digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RegisterTellerResponse struct {
	TellerID   string `json:"tellerId"`
	Name       string `json:"name"`
	BranchCode string `json:"branchCode"`
}

type VerifyTellerPINRequest struct {
	TellerID  string `json:"tellerId"`
	AccessPIN string `json:"accessPIN"`
}

type VerifyTellerPINResponse struct {
	TellerID   string `json:"tellerId"`
	IsValidPIN bool   `json:"isValidPin"`
}
