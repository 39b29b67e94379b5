package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ingestormocks "hit-reports/internal/ingestors/mocks"
	"hit-reports/internal/models"
	"hit-reports/internal/reports"
	reportmocks "hit-reports/internal/reports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, ctrl *gomock.Controller, provider reports.Provider) http.Handler {
	t.Helper()
	registry, err := reports.NewRegistry([]reports.Provider{provider}, []string{provider.Name()})
	require.NoError(t, err)
	facade := reports.NewFacade(registry)
	return NewRouter(ingestormocks.NewMockHitService(ctrl), facade, zerolog.Nop())
}

func TestGetReportHandler_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := reportmocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("logged_in").AnyTimes()

	expected := &models.LoggedInReport{Date: "2025-12-28", Host: "intranet"}
	provider.EXPECT().
		Get(gomock.Any(), "intranet", gomock.Any()).
		DoAndReturn(func(ctx context.Context, host string, query []reports.QueryParam) (any, error) {
			// The raw query order survives into the provider call.
			require.Len(t, query, 2)
			assert.Equal(t, reports.QueryParam{Key: "host", Value: "intranet"}, query[0])
			assert.Equal(t, reports.QueryParam{Key: "date", Value: "2025-12-28"}, query[1])
			return expected, nil
		})

	router := newTestRouter(t, ctrl, provider)

	req := httptest.NewRequest(http.MethodGet, "/reports/logged_in?host=intranet&date=2025-12-28", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.LoggedInReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "intranet", got.Host)
}

func TestGetReportHandler_HostFallsBackToRequestHost(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := reportmocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("logged_in").AnyTimes()
	provider.EXPECT().
		Get(gomock.Any(), "intranet.example.com", gomock.Any()).
		Return(&models.LoggedInReport{Host: "intranet.example.com"}, nil)

	router := newTestRouter(t, ctrl, provider)

	req := httptest.NewRequest(http.MethodGet, "/reports/logged_in", nil)
	req.Host = "intranet.example.com:8080"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetReportHandler_UnknownReportIs404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := reportmocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("logged_in").AnyTimes()

	router := newTestRouter(t, ctrl, provider)

	req := httptest.NewRequest(http.MethodGet, "/reports/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "RPT_1000", errResp.ErrorCode)
	assert.Equal(t, "not_found", errResp.ErrorCategory)
}

func TestParseOrderedQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		expected []reports.QueryParam
	}{
		{
			name:     "empty",
			rawQuery: "",
			expected: nil,
		},
		{
			name:     "order preserved",
			rawQuery: "b=2&a=1&c=3",
			expected: []reports.QueryParam{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}, {Key: "c", Value: "3"}},
		},
		{
			name:     "repeated keys kept",
			rawQuery: "tag=x&tag=y",
			expected: []reports.QueryParam{{Key: "tag", Value: "x"}, {Key: "tag", Value: "y"}},
		},
		{
			name:     "escaped values",
			rawQuery: "path=%2FHome%2FLogout&q=a%20b",
			expected: []reports.QueryParam{{Key: "path", Value: "/Home/Logout"}, {Key: "q", Value: "a b"}},
		},
		{
			name:     "key without value",
			rawQuery: "flag",
			expected: []reports.QueryParam{{Key: "flag", Value: ""}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parseOrderedQuery(tt.rawQuery))
		})
	}
}
