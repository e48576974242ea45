package contract

import (
	"errors"
	"time"
)

// Status represents the lifecycle state of a contract.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusTerminated Status = "terminated"
)

// Contract binds one client and one contractor. Once terminated, none of
// its jobs are payable anymore.
type Contract struct {
	ID           int64
	ClientID     int64
	ContractorID int64
	Terms        string
	Status       Status
}

// Job is a billable unit of work under a contract. Paid flips to true at
// most once; PaymentDate is set at that same moment.
type Job struct {
	ID          int64
	ContractID  int64
	Description string
	Price       int64 // cents
	Paid        bool
	PaymentDate *time.Time
}

// ErrNotFound covers both a missing contract and a contract the caller is
// not a party to; the two are indistinguishable on purpose.
var ErrNotFound = errors.New("contract not found")
