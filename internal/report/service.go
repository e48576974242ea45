package report

import (
	"context"
	"errors"
	"time"
)

// DefaultClientLimit is applied when best-clients is asked for a
// non-positive limit.
const DefaultClientLimit = 2

var ErrInvalidRange = errors.New("invalid date range")

// Range is an inclusive payment-date window.
type Range struct {
	Start time.Time
	End   time.Time
}

// ProfessionEarnings is the settled total for one contractor profession.
type ProfessionEarnings struct {
	Profession string
	Earned     int64 // cents
}

// ClientSpend is the settled total one client paid out.
type ClientSpend struct {
	ID       int64
	FullName string
	Paid     int64 // cents
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	// EarningsByProfession returns settled totals per profession,
	// highest first.
	EarningsByProfession(ctx context.Context, r Range) ([]ProfessionEarnings, error)
	// TopClients returns settled totals per paying client, highest first,
	// ties broken by lower client id.
	TopClients(ctx context.Context, r Range, limit int) ([]ClientSpend, error)
}

// Service computes financial aggregates over settled jobs. Pure reads.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BestProfession returns every profession tied for the highest settled
// total inside the range.
func (s *Service) BestProfession(ctx context.Context, r Range) ([]ProfessionEarnings, error) {
	if r.End.Before(r.Start) {
		return nil, ErrInvalidRange
	}

	earnings, err := s.repo.EarningsByProfession(ctx, r)
	if err != nil {
		return nil, err
	}

	if len(earnings) == 0 {
		return nil, nil
	}

	best := earnings[0].Earned

	top := make([]ProfessionEarnings, 0, 1)

	for _, e := range earnings {
		if e.Earned != best {
			break
		}

		top = append(top, e)
	}

	return top, nil
}

// BestClients returns the clients that paid the most inside the range.
func (s *Service) BestClients(ctx context.Context, r Range, limit int) ([]ClientSpend, error) {
	if r.End.Before(r.Start) {
		return nil, ErrInvalidRange
	}

	if limit <= 0 {
		limit = DefaultClientLimit
	}

	return s.repo.TopClients(ctx, r, limit)
}
