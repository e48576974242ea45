package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/tally/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) EarningsByProfession(ctx context.Context, r report.Range) ([]report.ProfessionEarnings, error) {
	query := `
		SELECT COALESCE(p.profession, ''), SUM(j.price) AS earned
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.contractor_id
		WHERE j.paid = true AND j.payment_date >= $1 AND j.payment_date <= $2
		GROUP BY p.profession
		ORDER BY earned DESC, p.profession ASC
	`

	rows, err := s.db.QueryContext(ctx, query, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("aggregating professions: %w", err)
	}
	defer rows.Close()

	var earnings []report.ProfessionEarnings

	for rows.Next() {
		var e report.ProfessionEarnings
		if err := rows.Scan(&e.Profession, &e.Earned); err != nil {
			return nil, fmt.Errorf("scanning profession earnings: %w", err)
		}

		earnings = append(earnings, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profession rows: %w", err)
	}

	return earnings, nil
}

func (s *Store) TopClients(ctx context.Context, r report.Range, limit int) ([]report.ClientSpend, error) {
	query := `
		SELECT p.id, p.first_name || ' ' || p.last_name AS full_name, SUM(j.price) AS paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid = true AND j.payment_date >= $1 AND j.payment_date <= $2
		GROUP BY p.id, full_name
		ORDER BY paid DESC, p.id ASC
		LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, r.Start, r.End, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregating clients: %w", err)
	}
	defer rows.Close()

	var clients []report.ClientSpend

	for rows.Next() {
		var c report.ClientSpend
		if err := rows.Scan(&c.ID, &c.FullName, &c.Paid); err != nil {
			return nil, fmt.Errorf("scanning client spend: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client rows: %w", err)
	}

	return clients, nil
}
