package contract_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tally/internal/contract"
	"github.com/MrJamesThe3rd/tally/internal/http/auth"
	contractHandler "github.com/MrJamesThe3rd/tally/internal/http/contract"
)

func serve(t *testing.T, repo contract.Repository, target, profileID string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Use(auth.NewResolver("").Middleware)
	router.Route("/contracts", contractHandler.NewHandler(contract.NewService(repo)).Routes)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if profileID != "" {
		req.Header.Set("profile_id", profileID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestGet_NonPartyIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contract.NewMockRepository(ctrl)

	// The store answers the same way for a missing contract and for one the
	// caller is no party to.
	repo.EXPECT().GetContractForProfile(gomock.Any(), int64(5), int64(3)).Return(nil, contract.ErrNotFound)

	rec := serve(t, repo, "/contracts/3", "5")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGet_Party(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contract.NewMockRepository(ctrl)

	repo.EXPECT().GetContractForProfile(gomock.Any(), int64(1), int64(3)).Return(&contract.Contract{
		ID:           3,
		ClientID:     1,
		ContractorID: 2,
		Terms:        "bla bla bla",
		Status:       contract.StatusInProgress,
	}, nil)

	rec := serve(t, repo, "/contracts/3", "1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":3,"client_id":1,"contractor_id":2,"terms":"bla bla bla","status":"in_progress"}`,
		rec.Body.String())
}

func TestGet_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := serve(t, contract.NewMockRepository(ctrl), "/contracts/three", "1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestList_EmptyIsJSONArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := contract.NewMockRepository(ctrl)

	// Unknown credential resolves to id 0, which matches no contracts.
	repo.EXPECT().ListContractsForProfile(gomock.Any(), int64(0)).Return(nil, nil)

	rec := serve(t, repo, "/contracts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
