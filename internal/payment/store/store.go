package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

// Store owns every write to profile balances and job paid flags. All of
// them happen through a settlementTx.
type Store struct {
	db          *sql.DB
	lockTimeout time.Duration
}

func New(db *sql.DB, lockTimeout time.Duration) *Store {
	return &Store{db: db, lockTimeout: lockTimeout}
}

func (s *Store) Begin(ctx context.Context) (payment.SettlementTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	if s.lockTimeout > 0 {
		// SET does not take bind parameters; the value is our own config.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())
		if _, err := dbTx.ExecContext(ctx, stmt); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("setting lock timeout: %w", err)
		}
	}

	return &settlementTx{tx: dbTx}, nil
}

type settlementTx struct {
	tx *sql.Tx
}

func (t *settlementTx) Commit() error   { return t.tx.Commit() }
func (t *settlementTx) Rollback() error { return t.tx.Rollback() }

// translateErr maps lock-wait exhaustion, deadlocks and serialization
// failures to the transient-conflict sentinel so callers can retry.
func translateErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "55P03", "40P01", "40001":
			return fmt.Errorf("%s: %w", op, payment.ErrTransientConflict)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

const selectProfileColumns = `p.id, p.type, p.first_name, p.last_name, COALESCE(p.profession, ''), p.balance`

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*profile.Profile, error) {
	var p profile.Profile

	var typeStr string

	if err := s.Scan(&p.ID, &typeStr, &p.FirstName, &p.LastName, &p.Profession, &p.Balance); err != nil {
		return nil, err
	}

	p.Type = profile.Type(typeStr)

	return &p, nil
}

func (t *settlementTx) Profile(ctx context.Context, id int64) (*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + ` FROM profiles p WHERE p.id = $1`

	p, err := scanProfile(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrProfileNotFound
		}

		return nil, translateErr("reading profile", err)
	}

	return p, nil
}

func (t *settlementTx) LockProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	query := `SELECT ` + selectProfileColumns + ` FROM profiles p WHERE p.id = $1 FOR UPDATE`

	p, err := scanProfile(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, payment.ErrProfileNotFound
		}

		return nil, translateErr("locking profile", err)
	}

	return p, nil
}

func (t *settlementTx) LockProfiles(ctx context.Context, firstID, secondID int64) (map[int64]*profile.Profile, error) {
	// Ascending id order keeps concurrent settlements that share parties
	// from deadlocking on each other.
	query := `SELECT ` + selectProfileColumns + `
		FROM profiles p
		WHERE p.id IN ($1, $2)
		ORDER BY p.id ASC
		FOR UPDATE`

	rows, err := t.tx.QueryContext(ctx, query, firstID, secondID)
	if err != nil {
		return nil, translateErr("locking profiles", err)
	}
	defer rows.Close()

	profiles := make(map[int64]*profile.Profile, 2)

	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		profiles[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, translateErr("iterating profile rows", err)
	}

	return profiles, nil
}

func (t *settlementTx) LockUnpaidJob(ctx context.Context, jobID int64) (*contract.Job, *contract.Contract, error) {
	// FOR UPDATE OF j: a concurrent payer blocks here, then re-evaluates
	// paid = false after the winner commits and finds no row.
	query := `
		SELECT j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date,
		       c.id, c.client_id, c.contractor_id, c.terms, c.status
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1 AND j.paid = false AND c.status <> $2
		FOR UPDATE OF j
	`

	var j contract.Job

	var c contract.Contract

	var status string

	var paidAt sql.NullTime

	err := t.tx.QueryRowContext(ctx, query, jobID, contract.StatusTerminated).Scan(
		&j.ID, &j.ContractID, &j.Description, &j.Price, &j.Paid, &paidAt,
		&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, payment.ErrJobNotFound
		}

		return nil, nil, translateErr("locking job", err)
	}

	c.Status = contract.Status(status)

	if paidAt.Valid {
		pt := paidAt.Time
		j.PaymentDate = &pt
	}

	return &j, &c, nil
}

func (t *settlementTx) UnpaidTotal(ctx context.Context, clientID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE c.client_id = $1 AND j.paid = false AND c.status <> $2
	`

	var total int64
	if err := t.tx.QueryRowContext(ctx, query, clientID, contract.StatusTerminated).Scan(&total); err != nil {
		return 0, translateErr("summing unpaid jobs", err)
	}

	return total, nil
}

func (t *settlementTx) Transfer(ctx context.Context, fromID, toID, amount int64) error {
	debit := `UPDATE profiles SET balance = balance - $1 WHERE id = $2`

	res, err := t.tx.ExecContext(ctx, debit, amount, fromID)
	if err != nil {
		return translateErr("debiting payer", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("debiting payer: %w", err)
	} else if n != 1 {
		return payment.ErrProfileNotFound
	}

	credit := `UPDATE profiles SET balance = balance + $1 WHERE id = $2`

	res, err = t.tx.ExecContext(ctx, credit, amount, toID)
	if err != nil {
		return translateErr("crediting payee", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("crediting payee: %w", err)
	} else if n != 1 {
		return payment.ErrProfileNotFound
	}

	return nil
}

func (t *settlementTx) MarkJobPaid(ctx context.Context, jobID int64, paidAt time.Time) error {
	// paid = false re-validated inside the same tx that flips it.
	query := `UPDATE jobs SET paid = true, payment_date = $2 WHERE id = $1 AND paid = false`

	res, err := t.tx.ExecContext(ctx, query, jobID, paidAt)
	if err != nil {
		return translateErr("marking job paid", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("marking job paid: %w", err)
	} else if n != 1 {
		return payment.ErrJobNotFound
	}

	return nil
}

func (t *settlementTx) Credit(ctx context.Context, profileID, amount int64) error {
	query := `UPDATE profiles SET balance = balance + $1 WHERE id = $2`

	res, err := t.tx.ExecContext(ctx, query, amount, profileID)
	if err != nil {
		return translateErr("crediting balance", err)
	}

	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("crediting balance: %w", err)
	} else if n != 1 {
		return payment.ErrProfileNotFound
	}

	return nil
}
