package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

func validFixture() Fixture {
	paidAt := time.Date(2020, 8, 15, 19, 11, 26, 0, time.UTC)

	return Fixture{
		Profiles: []*profile.Profile{
			{ID: 1, Type: profile.TypeClient, FirstName: "Harry", LastName: "Potter", Balance: 115000},
			{ID: 5, Type: profile.TypeContractor, FirstName: "John", LastName: "Lenon", Profession: "Musician", Balance: 6400},
		},
		Contracts: []*contract.Contract{
			{ID: 1, ClientID: 1, ContractorID: 5, Terms: "bla bla bla", Status: contract.StatusInProgress},
		},
		Jobs: []*contract.Job{
			{ID: 1, ContractID: 1, Description: "work", Price: 20100, Paid: false},
			{ID: 2, ContractID: 1, Description: "work", Price: 20000, Paid: true, PaymentDate: &paidAt},
		},
	}
}

func TestService_Load(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(fx *Fixture)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(fx *Fixture) {},
		},
		{
			name: "ContractWithContractorAsClient",
			mutate: func(fx *Fixture) {
				fx.Contracts[0].ClientID = 5
			},
			wantErr: "not a client",
		},
		{
			name: "ContractWithUnknownContractor",
			mutate: func(fx *Fixture) {
				fx.Contracts[0].ContractorID = 99
			},
			wantErr: "contractor 99 missing",
		},
		{
			name: "JobWithUnknownContract",
			mutate: func(fx *Fixture) {
				fx.Jobs[0].ContractID = 99
			},
			wantErr: "unknown contract 99",
		},
		{
			name: "JobWithZeroPrice",
			mutate: func(fx *Fixture) {
				fx.Jobs[0].Price = 0
			},
			wantErr: "non-positive price",
		},
		{
			name: "PaidJobWithoutPaymentDate",
			mutate: func(fx *Fixture) {
				fx.Jobs[1].PaymentDate = nil
			},
			wantErr: "disagree",
		},
		{
			name: "NegativeBalance",
			mutate: func(fx *Fixture) {
				fx.Profiles[0].Balance = -1
			},
			wantErr: "negative balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepository(ctrl)

			fx := validFixture()
			tt.mutate(&fx)

			if tt.wantErr == "" {
				repo.EXPECT().ReplaceAll(gomock.Any(), fx).Return(nil)
			}

			err := NewService(repo).Load(context.Background(), fx)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
