package browsers

import (
	"context"
	"errors"
	"testing"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/reports"
	"hit-reports/internal/shared/svcerrors"
	"hit-reports/internal/stores"
	storemocks "hit-reports/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 12, 28, 18, 6, 0, 0, time.UTC)

const testDate = "2025-12-28"

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	firefoxUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0"
)

func newTestProvider(t *testing.T, ctrl *gomock.Controller, minHits int) (*Provider, *storemocks.MockBrowserReportStore) {
	t.Helper()
	mockStore := storemocks.NewMockBrowserReportStore(ctrl)
	provider := New(mockStore, minHits)
	provider.now = func() time.Time { return testNow }
	return provider, mockStore
}

func TestProvider_Name(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, _ := newTestProvider(t, ctrl, 1)
	assert.Equal(t, "browsers", provider.Name())
}

func TestProvider_Generate_BelowMinimumIsNotEnoughInformation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store expectations: small windows never touch storage.
	provider, _ := newTestProvider(t, ctrl, 5)

	hits := []*models.Hit{
		{ID: "h1", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
		{ID: "h2", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
	}

	result := provider.Generate(context.Background(), hits)
	assert.Equal(t, models.OutcomeNotEnoughInformation, result.Outcome)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0], "window has 2 hits, need at least 5")
}

func TestProvider_Generate_RollsUpByFamily(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	hits := []*models.Hit{
		{ID: "h1", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
		{ID: "h2", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
		{ID: "h3", Logged: testNow, Host: "intranet", UserAgent: firefoxUA},
		{ID: "h4", Logged: testNow, Host: "intranet", UserAgent: ""},
	}

	mockStore.EXPECT().
		Find(gomock.Any(), testDate, "intranet").
		Return(nil, stores.ErrReportNotFound)

	var upserted *models.BrowserReport
	mockStore.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, report *models.BrowserReport) error {
			upserted = report
			return nil
		})

	result := provider.Generate(context.Background(), hits)
	require.Equal(t, models.OutcomeSuccess, result.Outcome)

	require.NotNil(t, upserted)
	assert.Equal(t, testDate, upserted.Date)
	assert.Equal(t, "intranet", upserted.Host)
	assert.True(t, upserted.Generated.Equal(testNow))
	assert.Equal(t, int64(2), upserted.Counts["Chrome"])
	assert.Equal(t, int64(1), upserted.Counts["Firefox"])
	assert.Equal(t, int64(1), upserted.Counts["Other"], "blank user agents fall into the catch-all bucket")
}

func TestProvider_Generate_MergesIntoExistingRollup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	hits := []*models.Hit{
		{ID: "h1", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
		{ID: "h2", Logged: testNow, Host: "intranet", UserAgent: firefoxUA},
	}

	prior := &models.BrowserReport{
		Date:      testDate,
		Host:      "intranet",
		Generated: testNow.Add(-5 * time.Minute),
		Counts:    map[string]int64{"Chrome": 10, "Safari": 2},
	}

	mockStore.EXPECT().
		Find(gomock.Any(), testDate, "intranet").
		Return(prior, nil)

	var upserted *models.BrowserReport
	mockStore.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, report *models.BrowserReport) error {
			upserted = report
			return nil
		})

	result := provider.Generate(context.Background(), hits)
	require.Equal(t, models.OutcomeSuccess, result.Outcome)

	assert.Equal(t, int64(11), upserted.Counts["Chrome"])
	assert.Equal(t, int64(1), upserted.Counts["Firefox"])
	assert.Equal(t, int64(2), upserted.Counts["Safari"], "untouched families survive the merge")
	assert.True(t, upserted.Generated.Equal(testNow))
}

func TestProvider_Generate_HostFailureReported(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	hits := []*models.Hit{
		{ID: "h1", Logged: testNow, Host: "intranet", UserAgent: chromeUA},
	}

	mockStore.EXPECT().
		Find(gomock.Any(), testDate, "intranet").
		Return(nil, errors.New("storage offline"))

	result := provider.Generate(context.Background(), hits)
	assert.Equal(t, models.OutcomeUnknownFailure, result.Outcome)
	require.Len(t, result.Messages, 1)
	assert.Contains(t, result.Messages[0], "host intranet")
}

func TestProvider_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	expected := &models.BrowserReport{Date: testDate, Host: "intranet", Counts: map[string]int64{"Chrome": 3}}
	mockStore.EXPECT().
		Find(gomock.Any(), testDate, "intranet").
		Return(expected, nil)

	report, err := provider.Get(context.Background(), "intranet", nil)
	require.NoError(t, err)
	assert.Same(t, expected, report)
}

func TestProvider_Get_DateQueryParam(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	expected := &models.BrowserReport{Date: "2025-12-01", Host: "intranet"}
	mockStore.EXPECT().
		Find(gomock.Any(), "2025-12-01", "intranet").
		Return(expected, nil)

	report, err := provider.Get(context.Background(), "intranet", []reports.QueryParam{{Key: "date", Value: "2025-12-01"}})
	require.NoError(t, err)
	assert.Same(t, expected, report)
}

func TestProvider_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider, mockStore := newTestProvider(t, ctrl, 1)

	mockStore.EXPECT().
		Find(gomock.Any(), testDate, "intranet").
		Return(nil, stores.ErrReportNotFound)

	report, err := provider.Get(context.Background(), "intranet", nil)
	assert.Nil(t, report)
	require.Error(t, err)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "BRW_1000", svcErr.Code)
	assert.Equal(t, 404, svcErr.HttpStatusCode)
}

func TestNormalizeUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "chrome", ua: chromeUA, expected: "Chrome"},
		{name: "firefox", ua: firefoxUA, expected: "Firefox"},
		{name: "curl", ua: "curl/7.68.0", expected: "curl"},
		{name: "blank", ua: "", expected: "Other"},
		{name: "whitespace", ua: "   ", expected: "Other"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalizeUserAgent(tt.ua))
		})
	}
}
