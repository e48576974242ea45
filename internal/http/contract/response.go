package contract

import (
	"github.com/MrJamesThe3rd/tally/internal/contract"
)

type contractResponse struct {
	ID           int64           `json:"id"`
	ClientID     int64           `json:"client_id"`
	ContractorID int64           `json:"contractor_id"`
	Terms        string          `json:"terms"`
	Status       contract.Status `json:"status"`
}

func toResponse(c *contract.Contract) contractResponse {
	return contractResponse{
		ID:           c.ID,
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		Terms:        c.Terms,
		Status:       c.Status,
	}
}

func toResponseList(contracts []*contract.Contract) []contractResponse {
	resp := make([]contractResponse, len(contracts))
	for i, c := range contracts {
		resp[i] = toResponse(c)
	}

	return resp
}
