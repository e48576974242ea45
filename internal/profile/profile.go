package profile

import "errors"

// Type distinguishes paying clients from earning contractors.
type Type string

const (
	TypeClient     Type = "client"
	TypeContractor Type = "contractor"
)

// Profile is an account holding a balance. Balance is in cents and is
// mutated only inside a settlement transaction; it never goes negative.
type Profile struct {
	ID         int64
	Type       Type
	FirstName  string
	LastName   string
	Profession string // contractors only
	Balance    int64  // cents
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

var ErrNotFound = errors.New("profile not found")
