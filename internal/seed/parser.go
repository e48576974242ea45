package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	enc "github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

// colIndex maps header names to their position in the row.
type colIndex map[string]int

// at returns the column position, or -1 when the header is absent so
// optional columns read as empty instead of aliasing column zero.
func (c colIndex) at(name string) int {
	if i, ok := c[name]; ok {
		return i
	}

	return -1
}

func readAll(r io.Reader, required ...string) (colIndex, [][]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty file")
	}

	cols := make(colIndex, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}

	return cols, rows[1:], nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// ParseProfiles reads a profiles CSV with columns
// id,type,first_name,last_name,profession,balance. Balances are decimal
// strings ("1150.00") converted to cents.
func ParseProfiles(r io.Reader) ([]*profile.Profile, error) {
	cols, rows, err := readAll(r, "id", "type", "first_name", "last_name", "balance")
	if err != nil {
		return nil, err
	}

	profiles := make([]*profile.Profile, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2

		id, err := strconv.ParseInt(cell(row, cols.at("id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id: %w", rowNum, err)
		}

		balance, err := parseCents(cell(row, cols.at("balance")))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad balance: %w", rowNum, err)
		}

		profiles = append(profiles, &profile.Profile{
			ID:         id,
			Type:       profile.Type(cell(row, cols.at("type"))),
			FirstName:  cell(row, cols.at("first_name")),
			LastName:   cell(row, cols.at("last_name")),
			Profession: cell(row, cols.at("profession")),
			Balance:    balance,
		})
	}

	return profiles, nil
}

// ParseContracts reads a contracts CSV with columns
// id,client_id,contractor_id,terms,status.
func ParseContracts(r io.Reader) ([]*contract.Contract, error) {
	cols, rows, err := readAll(r, "id", "client_id", "contractor_id", "status")
	if err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2

		id, err := strconv.ParseInt(cell(row, cols.at("id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id: %w", rowNum, err)
		}

		clientID, err := strconv.ParseInt(cell(row, cols.at("client_id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad client_id: %w", rowNum, err)
		}

		contractorID, err := strconv.ParseInt(cell(row, cols.at("contractor_id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad contractor_id: %w", rowNum, err)
		}

		contracts = append(contracts, &contract.Contract{
			ID:           id,
			ClientID:     clientID,
			ContractorID: contractorID,
			Terms:        cell(row, cols.at("terms")),
			Status:       contract.Status(cell(row, cols.at("status"))),
		})
	}

	return contracts, nil
}

// ParseJobs reads a jobs CSV with columns
// id,contract_id,description,price,paid,payment_date. payment_date may be
// empty for unpaid jobs and accepts RFC3339 or YYYY-MM-DD.
func ParseJobs(r io.Reader) ([]*contract.Job, error) {
	cols, rows, err := readAll(r, "id", "contract_id", "price", "paid")
	if err != nil {
		return nil, err
	}

	jobs := make([]*contract.Job, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2

		id, err := strconv.ParseInt(cell(row, cols.at("id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id: %w", rowNum, err)
		}

		contractID, err := strconv.ParseInt(cell(row, cols.at("contract_id")), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad contract_id: %w", rowNum, err)
		}

		price, err := parseCents(cell(row, cols.at("price")))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad price: %w", rowNum, err)
		}

		paid, err := strconv.ParseBool(cell(row, cols.at("paid")))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad paid flag: %w", rowNum, err)
		}

		job := &contract.Job{
			ID:          id,
			ContractID:  contractID,
			Description: cell(row, cols.at("description")),
			Price:       price,
			Paid:        paid,
		}

		if s := cell(row, cols.at("payment_date")); s != "" {
			t, err := parseDate(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad payment_date: %w", rowNum, err)
			}

			job.PaymentDate = &t
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}
