package payment_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

func clientProfile(id, balance int64) *profile.Profile {
	return &profile.Profile{ID: id, Type: profile.TypeClient, FirstName: "Ada", LastName: "Lovelace", Balance: balance}
}

func contractorProfile(id, balance int64) *profile.Profile {
	return &profile.Profile{ID: id, Type: profile.TypeContractor, FirstName: "Linus", LastName: "T", Profession: "Programmer", Balance: balance}
}

func TestService_Pay(t *testing.T) {
	type testCase struct {
		name      string
		profileID int64
		jobID     int64
		setupMock func(repo *payment.MockRepository, tx *payment.MockSettlementTx)
		wantErr   error
	}

	job := func() *contract.Job {
		return &contract.Job{ID: 7, ContractID: 3, Description: "work", Price: 20000}
	}
	ctr := func() *contract.Contract {
		return &contract.Contract{ID: 3, ClientID: 1, ContractorID: 2, Status: contract.StatusInProgress}
	}

	tests := []testCase{
		{
			name:      "Success",
			profileID: 1,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 30000), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).Return(job(), ctr(), nil)
				tx.EXPECT().LockProfiles(gomock.Any(), int64(1), int64(2)).Return(map[int64]*profile.Profile{
					1: clientProfile(1, 30000),
					2: contractorProfile(2, 0),
				}, nil)
				tx.EXPECT().Transfer(gomock.Any(), int64(1), int64(2), int64(20000)).Return(nil)
				tx.EXPECT().MarkJobPaid(gomock.Any(), int64(7), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
		{
			name:      "ContractorCannotPay",
			profileID: 2,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(2)).Return(contractorProfile(2, 50000), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrNotClient,
		},
		{
			name:      "UnknownCallerForbidden",
			profileID: 0,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(0)).Return(nil, payment.ErrProfileNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrNotClient,
		},
		{
			name:      "JobGoneOrPaidOrTerminated",
			profileID: 1,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 30000), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).Return(nil, nil, payment.ErrJobNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrJobNotFound,
		},
		{
			name:      "NotTheContractsClient",
			profileID: 5,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(5)).Return(clientProfile(5, 900000), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).Return(job(), ctr(), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrNotOwner,
		},
		{
			name:      "EqualBalanceRejected",
			profileID: 1,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 20000), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).Return(job(), ctr(), nil)
				tx.EXPECT().LockProfiles(gomock.Any(), int64(1), int64(2)).Return(map[int64]*profile.Profile{
					1: clientProfile(1, 20000),
					2: contractorProfile(2, 0),
				}, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrInsufficientFunds,
		},
		{
			name:      "InsufficientFunds",
			profileID: 1,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 100), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).Return(job(), ctr(), nil)
				tx.EXPECT().LockProfiles(gomock.Any(), int64(1), int64(2)).Return(map[int64]*profile.Profile{
					1: clientProfile(1, 100),
					2: contractorProfile(2, 0),
				}, nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrInsufficientFunds,
		},
		{
			name:      "LockWaitExhausted",
			profileID: 1,
			jobID:     7,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 30000), nil)
				tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(7)).
					Return(nil, nil, fmt.Errorf("locking job: %w", payment.ErrTransientConflict))
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrTransientConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			tx := payment.NewMockSettlementTx(ctrl)
			tt.setupMock(repo, tx)

			svc := payment.NewService(repo)
			got, err := svc.Pay(context.Background(), tt.profileID, tt.jobID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Paid)
			require.NotNil(t, got.PaymentDate)
			assert.False(t, got.PaymentDate.IsZero())
		})
	}
}

func TestService_Pay_TransfersExactPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	tx := payment.NewMockSettlementTx(ctrl)
	svc := payment.NewService(repo)

	job := &contract.Job{ID: 11, ContractID: 4, Price: 12345}
	ctr := &contract.Contract{ID: 4, ClientID: 1, ContractorID: 2, Status: contract.StatusInProgress}

	var moved int64

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 12346), nil)
	tx.EXPECT().LockUnpaidJob(gomock.Any(), int64(11)).Return(job, ctr, nil)
	tx.EXPECT().LockProfiles(gomock.Any(), int64(1), int64(2)).Return(map[int64]*profile.Profile{
		1: clientProfile(1, 12346),
		2: contractorProfile(2, 0),
	}, nil)
	tx.EXPECT().Transfer(gomock.Any(), int64(1), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int64, amount int64) error {
			moved = amount
			return nil
		})
	tx.EXPECT().MarkJobPaid(gomock.Any(), int64(11), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Pay(context.Background(), 1, 11)
	require.NoError(t, err)

	// The same amount leaves the client and lands on the contractor, so the
	// pair's combined balance is unchanged by construction.
	assert.Equal(t, job.Price, moved)
}

func TestService_Deposit(t *testing.T) {
	type testCase struct {
		name      string
		actingID  int64
		targetID  int64
		amount    int64
		setupMock func(repo *payment.MockRepository, tx *payment.MockSettlementTx)
		wantErr   error
		wantBal   int64
	}

	tests := []testCase{
		{
			// Two unpaid jobs at 100.00 and 300.00: the cap is exactly 100.00.
			name:     "SuccessAtExactCap",
			actingID: 1,
			targetID: 1,
			amount:   10000,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(40000), nil)
				tx.EXPECT().Credit(gomock.Any(), int64(1), int64(10000)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantBal: 10500,
		},
		{
			name:     "OneCentOverCap",
			actingID: 1,
			targetID: 1,
			amount:   10001,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(40000), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrDepositLimitExceeded,
		},
		{
			name:     "NothingOwedMeansNoDeposit",
			actingID: 1,
			targetID: 1,
			amount:   1,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(0), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrDepositLimitExceeded,
		},
		{
			// amount*4 would wrap negative here and slip past the cap; the
			// division form must still reject it.
			name:     "HugeAmountCannotWrapPastCap",
			actingID: 1,
			targetID: 1,
			amount:   1 << 61,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(40000), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrDepositLimitExceeded,
		},
		{
			name:     "ContractorTargetForbidden",
			actingID: 1,
			targetID: 2,
			amount:   100,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(2)).Return(contractorProfile(2, 0), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrNotClient,
		},
		{
			name:     "TargetMissing",
			actingID: 1,
			targetID: 99,
			amount:   100,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(clientProfile(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(99)).Return(nil, payment.ErrProfileNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrProfileNotFound,
		},
		{
			name:     "UnknownCallerForbidden",
			actingID: 0,
			targetID: 1,
			amount:   100,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(0)).Return(nil, payment.ErrProfileNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantErr: payment.ErrNotClient,
		},
		{
			name:      "ZeroAmountRejectedBeforeAnyWork",
			actingID:  1,
			targetID:  1,
			amount:    0,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {},
			wantErr:   payment.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			tx := payment.NewMockSettlementTx(ctrl)
			tt.setupMock(repo, tx)

			svc := payment.NewService(repo)
			got, err := svc.Deposit(context.Background(), tt.actingID, tt.targetID, tt.amount)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantBal, got.Balance)
		})
	}
}
