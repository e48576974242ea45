package balance_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	"github.com/MrJamesThe3rd/tally/internal/http/balance"
	"github.com/MrJamesThe3rd/tally/internal/payment"
	"github.com/MrJamesThe3rd/tally/internal/profile"
)

func client(id, bal int64) *profile.Profile {
	return &profile.Profile{ID: id, Type: profile.TypeClient, FirstName: "Ada", LastName: "Lovelace", Balance: bal}
}

func serve(t *testing.T, repo payment.Repository, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Use(auth.NewResolver("").Middleware)
	router.Route("/balances", balance.NewHandler(payment.NewService(repo)).Routes)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("profile_id", "1")
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestDeposit_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		setupMock  func(repo *payment.MockRepository, tx *payment.MockSettlementTx)
		wantStatus int
	}{
		{
			name:       "ZeroAmountIsBadRequest",
			target:     "/balances/deposit/1",
			body:       `{"amount":0}`,
			setupMock:  func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "MissingTargetIsNotFound",
			target: "/balances/deposit/99",
			body:   `{"amount":100}`,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(client(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(99)).Return(nil, payment.ErrProfileNotFound)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "OverCapIsForbidden",
			target: "/balances/deposit/1",
			body:   `{"amount":10001}`,
			setupMock: func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(client(1, 500), nil)
				tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(client(1, 500), nil)
				tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(40000), nil)
				tx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "NonNumericTargetIsBadRequest",
			target:     "/balances/deposit/me",
			body:       `{"amount":100}`,
			setupMock:  func(repo *payment.MockRepository, tx *payment.MockSettlementTx) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := payment.NewMockRepository(ctrl)
			tx := payment.NewMockSettlementTx(ctrl)
			tt.setupMock(repo, tx)

			rec := serve(t, repo, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := payment.NewMockRepository(ctrl)
	tx := payment.NewMockSettlementTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Profile(gomock.Any(), int64(1)).Return(client(1, 500), nil)
	tx.EXPECT().LockProfile(gomock.Any(), int64(1)).Return(client(1, 500), nil)
	tx.EXPECT().UnpaidTotal(gomock.Any(), int64(1)).Return(int64(40000), nil)
	tx.EXPECT().Credit(gomock.Any(), int64(1), int64(10000)).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	rec := serve(t, repo, "/balances/deposit/1", `{"amount":10000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":10500`)
}
