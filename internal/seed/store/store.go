package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/tally/internal/seed"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ReplaceAll swaps the current dataset for the fixture in one transaction.
// Children go first on delete, parents first on insert, and the id
// sequences are realigned so fresh rows do not collide with fixture ids.
func (s *Store) ReplaceAll(ctx context.Context, fx seed.Fixture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"jobs", "contracts", "profiles"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	const insertProfile = `
		INSERT INTO profiles (id, type, first_name, last_name, profession, balance)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, p := range fx.Profiles {
		if _, err := tx.ExecContext(ctx, insertProfile,
			p.ID, p.Type, p.FirstName, p.LastName, p.Profession, p.Balance); err != nil {
			return fmt.Errorf("insert profile %d: %w", p.ID, err)
		}
	}

	const insertContract = `
		INSERT INTO contracts (id, client_id, contractor_id, terms, status)
		VALUES ($1, $2, $3, $4, $5)`

	for _, c := range fx.Contracts {
		if _, err := tx.ExecContext(ctx, insertContract,
			c.ID, c.ClientID, c.ContractorID, c.Terms, c.Status); err != nil {
			return fmt.Errorf("insert contract %d: %w", c.ID, err)
		}
	}

	const insertJob = `
		INSERT INTO jobs (id, contract_id, description, price, paid, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, j := range fx.Jobs {
		if _, err := tx.ExecContext(ctx, insertJob,
			j.ID, j.ContractID, j.Description, j.Price, j.Paid, j.PaymentDate); err != nil {
			return fmt.Errorf("insert job %d: %w", j.ID, err)
		}
	}

	for _, table := range []string{"profiles", "contracts", "jobs"} {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s",
			table, table)

		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("realign %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
