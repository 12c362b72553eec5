package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/SlotBooker/internal/auth"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/handler"
	hmocks "github.com/stpnv0/SlotBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*hmocks.MockBookingSvc, *auth.Tokens, http.Handler) {
	t.Helper()
	bookings := hmocks.NewMockBookingSvc(t)
	h := handler.NewHandler(
		hmocks.NewMockAvailabilitySvc(t),
		bookings,
		hmocks.NewMockDraftSvc(t),
		hmocks.NewMockCatalogSvc(t),
		hmocks.NewMockAuthSvc(t),
		hmocks.NewMockTransferSvc(t),
		hmocks.NewMockTaskSvc(t),
	)

	tokens := auth.NewTokens("router-secret", time.Hour, time.Now)
	return bookings, tokens, InitRouter("test", h, tokens)
}

func TestRouter_Health(t *testing.T) {
	_, _, r := setup(t)

	for _, path := range []string{"/health", "/api/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRouter_AdminRoutesNeedToken(t *testing.T) {
	_, _, r := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutesNeedAdminRole(t *testing.T) {
	_, tokens, r := setup(t)

	token, _, err := tokens.Issue(domain.SessionUser{ID: 3, Role: domain.RoleCustomer})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_AdminStats(t *testing.T) {
	bookings, tokens, r := setup(t)

	bookings.EXPECT().Statistics(mock.Anything).Return(domain.Statistics{TotalBookings: 3}, nil)

	token, _, err := tokens.Issue(domain.SessionUser{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
