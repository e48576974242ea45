package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/tally/internal/contract"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectContractColumns = `c.id, c.client_id, c.contractor_id, c.terms, c.status`

func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var status string

	if err := s.Scan(&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &status); err != nil {
		return nil, err
	}

	c.Status = contract.Status(status)

	return &c, nil
}

const selectJobColumns = `j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date`

func scanJob(s scanner) (*contract.Job, error) {
	var j contract.Job

	var paidAt sql.NullTime

	if err := s.Scan(&j.ID, &j.ContractID, &j.Description, &j.Price, &j.Paid, &paidAt); err != nil {
		return nil, err
	}

	if paidAt.Valid {
		t := paidAt.Time
		j.PaymentDate = &t
	}

	return &j, nil
}

func (s *Store) ListContractsForProfile(ctx context.Context, profileID int64) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.client_id = $1 OR c.contractor_id = $1
		ORDER BY c.id ASC`

	rows, err := s.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*contract.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contract rows: %w", err)
	}

	return contracts, nil
}

func (s *Store) GetContractForProfile(ctx context.Context, profileID, contractID int64) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.id = $1 AND (c.client_id = $2 OR c.contractor_id = $2)`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, contractID, profileID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.ErrNotFound
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	return c, nil
}

func (s *Store) ListUnpaidJobsForProfile(ctx context.Context, profileID int64) ([]*contract.Job, error) {
	query := `SELECT ` + selectJobColumns + `
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = false
		  AND c.status <> $1
		  AND (c.client_id = $2 OR c.contractor_id = $2)
		ORDER BY j.id ASC`

	rows, err := s.db.QueryContext(ctx, query, contract.StatusTerminated, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing unpaid jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*contract.Job

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job rows: %w", err)
	}

	return jobs, nil
}
