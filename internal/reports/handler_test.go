package reports

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	counts []CustomerOrderCount
	err    error
}

func (s stubRepository) CustomerOrderCounts(ctx context.Context) ([]CustomerOrderCount, error) {
	return s.counts, s.err
}

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(logger, NewService(logger, repo))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestCustomerOrdersEndpoint(t *testing.T) {
	repo := stubRepository{counts: []CustomerOrderCount{
		{CustomerName: "Alfreds Futterkiste", OrderCount: 3},
		{CustomerName: "Around the Horn", OrderCount: 1},
	}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/customer-orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var counts []CustomerOrderCount
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &counts))
	require.Len(t, counts, 2)
	assert.Equal(t, "Alfreds Futterkiste", counts[0].CustomerName)
	assert.Equal(t, int64(3), counts[0].OrderCount)
}

func TestCustomerOrdersDegradesToEmptyArray(t *testing.T) {
	router := newTestRouter(stubRepository{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/customer-orders", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}
