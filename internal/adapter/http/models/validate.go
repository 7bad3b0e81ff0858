package models

import "strings"

func isSixDigitBranchCode(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) == 6 && digitsOnly(trimmed)
}

func isTenDigitAccountNumber(value string) bool {
	trimmed := strings.TrimSpace(value)
	return len(trimmed) == 10 && digitsOnly(trimmed)
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
