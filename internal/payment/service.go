package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	Begin(ctx context.Context) (SettlementTx, error)
}

// SettlementTx is the atomic unit every balance or job mutation runs in.
// Either Commit lands all of it or Rollback discards all of it; a
// concurrent reader never observes a partial transfer.
type SettlementTx interface {
	// Profile reads a profile without locking it.
	Profile(ctx context.Context, id int64) (*profile.Profile, error)
	// LockProfile locks a single profile row for the rest of the tx.
	LockProfile(ctx context.Context, id int64) (*profile.Profile, error)
	// LockProfiles locks both party rows in ascending id order and returns
	// them keyed by id.
	LockProfiles(ctx context.Context, firstID, secondID int64) (map[int64]*profile.Profile, error)
	// LockUnpaidJob locks the job row and returns it with its contract,
	// only while the job is unpaid and the contract is not terminated.
	LockUnpaidJob(ctx context.Context, jobID int64) (*contract.Job, *contract.Contract, error)
	// UnpaidTotal sums the prices of the client's unpaid jobs on
	// non-terminated contracts.
	UnpaidTotal(ctx context.Context, clientID int64) (int64, error)
	Transfer(ctx context.Context, fromID, toID, amount int64) error
	MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) error
	Credit(ctx context.Context, profileID, amount int64) error
	Commit() error
	Rollback() error
}

// Service moves money between profile balances. It is the only component
// that mutates balances and job paid flags.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Pay settles a job: the price moves from the client's balance to the
// contractor's and the job flips to paid, all inside one SettlementTx.
func (s *Service) Pay(ctx context.Context, profileID, jobID int64) (*contract.Job, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin settlement: %w", err)
	}
	defer tx.Rollback()

	payer, err := tx.Profile(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNotClient
		}

		return nil, err
	}

	if payer.Type != profile.TypeClient {
		return nil, ErrNotClient
	}

	job, jobContract, err := tx.LockUnpaidJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	// Ownership must be checked explicitly; matching unpaid+active alone
	// would let any client settle a stranger's job.
	if jobContract.ClientID != profileID {
		return nil, ErrNotOwner
	}

	parties, err := tx.LockProfiles(ctx, jobContract.ClientID, jobContract.ContractorID)
	if err != nil {
		return nil, err
	}

	client := parties[jobContract.ClientID]

	contractor := parties[jobContract.ContractorID]
	if client == nil || contractor == nil {
		return nil, ErrProfileNotFound
	}

	// Strictly greater: paying down to zero is not allowed.
	if client.Balance <= job.Price {
		return nil, ErrInsufficientFunds
	}

	if err := tx.Transfer(ctx, client.ID, contractor.ID, job.Price); err != nil {
		return nil, err
	}

	paidAt := s.now().UTC()
	if err := tx.MarkJobPaid(ctx, job.ID, paidAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settlement: %w", err)
	}

	job.Paid = true
	job.PaymentDate = &paidAt

	return job, nil
}

// Deposit credits a client's balance, capped at 25% of the client's total
// unpaid job prices measured inside the same transaction as the write.
func (s *Service) Deposit(ctx context.Context, actingProfileID, targetID, amount int64) (*profile.Profile, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin settlement: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Profile(ctx, actingProfileID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNotClient
		}

		return nil, err
	}

	target, err := tx.LockProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if target.Type != profile.TypeClient {
		return nil, ErrNotClient
	}

	totalToPay, err := tx.UnpaidTotal(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	// Integer division keeps the 25% cap exact for cents and cannot
	// overflow the way amount*4 would on a huge amount.
	if amount > totalToPay/4 {
		return nil, ErrDepositLimitExceeded
	}

	if err := tx.Credit(ctx, target.ID, amount); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settlement: %w", err)
	}

	target.Balance += amount

	return target, nil
}
