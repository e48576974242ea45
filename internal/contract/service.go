package contract

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	ListContractsForProfile(ctx context.Context, profileID int64) ([]*Contract, error)
	GetContractForProfile(ctx context.Context, profileID, contractID int64) (*Contract, error)
	ListUnpaidJobsForProfile(ctx context.Context, profileID int64) ([]*Job, error)
}

// Service scopes contract and job reads to the requesting profile. It holds
// no mutation paths; settlements live in the payment package.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForProfile returns every contract the profile is a party to, as
// client or as contractor.
func (s *Service) ListForProfile(ctx context.Context, profileID int64) ([]*Contract, error) {
	return s.repo.ListContractsForProfile(ctx, profileID)
}

// GetForProfile returns the contract only when the profile is a party to
// it. Non-parties get ErrNotFound so existence is not leaked.
func (s *Service) GetForProfile(ctx context.Context, profileID, contractID int64) (*Contract, error) {
	return s.repo.GetContractForProfile(ctx, profileID, contractID)
}

// ListUnpaidJobs returns unpaid jobs on the profile's non-terminated
// contracts.
func (s *Service) ListUnpaidJobs(ctx context.Context, profileID int64) ([]*Job, error) {
	return s.repo.ListUnpaidJobsForProfile(ctx, profileID)
}
