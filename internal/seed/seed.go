package seed

import (
	"context"
	"fmt"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

// Fixture is a full dataset to load: profiles, the contracts binding them
// and the jobs billed under those contracts.
type Fixture struct {
	Profiles  []*profile.Profile
	Contracts []*contract.Contract
	Jobs      []*contract.Job
}

//go:generate mockgen -source=seed.go -destination=repository_mock.go -package=seed
type Repository interface {
	// ReplaceAll upserts the whole fixture in one transaction and realigns
	// the id sequences.
	ReplaceAll(ctx context.Context, fx Fixture) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load validates the fixture against the ledger invariants and hands it to
// the store. A fixture that starts out inconsistent would poison every
// settlement after it.
func (s *Service) Load(ctx context.Context, fx Fixture) error {
	profiles := make(map[int64]*profile.Profile, len(fx.Profiles))

	for _, p := range fx.Profiles {
		if p.Balance < 0 {
			return fmt.Errorf("profile %d: negative balance", p.ID)
		}

		profiles[p.ID] = p
	}

	contracts := make(map[int64]*contract.Contract, len(fx.Contracts))

	for _, c := range fx.Contracts {
		client := profiles[c.ClientID]
		if client == nil || client.Type != profile.TypeClient {
			return fmt.Errorf("contract %d: client %d missing or not a client", c.ID, c.ClientID)
		}

		contractor := profiles[c.ContractorID]
		if contractor == nil || contractor.Type != profile.TypeContractor {
			return fmt.Errorf("contract %d: contractor %d missing or not a contractor", c.ID, c.ContractorID)
		}

		contracts[c.ID] = c
	}

	for _, j := range fx.Jobs {
		if contracts[j.ContractID] == nil {
			return fmt.Errorf("job %d: unknown contract %d", j.ID, j.ContractID)
		}

		if j.Price <= 0 {
			return fmt.Errorf("job %d: non-positive price", j.ID)
		}

		if j.Paid != (j.PaymentDate != nil) {
			return fmt.Errorf("job %d: paid flag and payment date disagree", j.ID)
		}
	}

	return s.repo.ReplaceAll(ctx, fx)
}
