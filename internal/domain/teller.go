package domain

import "time"

type Teller struct {
	ID            string
	Name          string
	BranchCode    string
	AccessPINHash string
	CreatedAt     time.Time
}
