package job

import (
	"time"

	"github.com/MrJamesThe3rd/tally/internal/contract"
)

type jobResponse struct {
	ID          int64      `json:"id"`
	ContractID  int64      `json:"contract_id"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

func toResponse(j *contract.Job) jobResponse {
	return jobResponse{
		ID:          j.ID,
		ContractID:  j.ContractID,
		Description: j.Description,
		Price:       j.Price,
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
	}
}

func toResponseList(jobs []*contract.Job) []jobResponse {
	resp := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = toResponse(j)
	}

	return resp
}
