package ingestors

import (
	"context"
	"strings"
	"testing"
	"time"

	"hit-reports/internal/ingestors/mocks"
	"hit-reports/internal/models"
	"hit-reports/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHitService_Ingest_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBuffer := mocks.NewMockHitLogger(ctrl)
	service := NewHitService(mockBuffer)

	var buffered *models.Hit
	mockBuffer.EXPECT().
		Log(gomock.Any()).
		Do(func(hit *models.Hit) { buffered = hit })

	payload := `{
		"id": "hit-1",
		"logged": "2025-12-28T18:03:15Z",
		"host": "Intranet.Example.COM",
		"path": "/Home/Index",
		"method": "get",
		"statusCode": 200,
		"durationMs": 42,
		"identity": "alice",
		"userAgent": "Mozilla/5.0"
	}`

	hit, err := service.Ingest(context.Background(), strings.NewReader(payload))
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Same(t, hit, buffered)

	assert.Equal(t, "hit-1", hit.ID)
	assert.Equal(t, "intranet.example.com", hit.Host, "host should be lowercased")
	assert.Equal(t, "GET", hit.Method, "method should be uppercased")
	assert.Equal(t, "/Home/Index", hit.Path)
	assert.Equal(t, 200, hit.StatusCode)
	assert.Equal(t, 42*time.Millisecond, hit.Duration)
	assert.Equal(t, "alice", hit.Identity)
	assert.True(t, hit.Logged.Equal(time.Date(2025, 12, 28, 18, 3, 15, 0, time.UTC)))
}

func TestHitService_Ingest_GeneratesIDWhenMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBuffer := mocks.NewMockHitLogger(ctrl)
	service := NewHitService(mockBuffer)

	mockBuffer.EXPECT().Log(gomock.Any())

	payload := `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "path": "/", "method": "GET"}`

	hit, err := service.Ingest(context.Background(), strings.NewReader(payload))
	require.NoError(t, err)
	assert.Len(t, hit.ID, 26, "generated ID should be a ULID")
}

func TestHitService_Ingest_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "invalid json",
			payload: `{not json`,
		},
		{
			name:    "missing logged",
			payload: `{"host": "intranet", "path": "/", "method": "GET"}`,
		},
		{
			name:    "missing host",
			payload: `{"logged": "2025-12-28T18:03:15Z", "path": "/", "method": "GET"}`,
		},
		{
			name:    "missing path",
			payload: `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "method": "GET"}`,
		},
		{
			name:    "negative duration",
			payload: `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "path": "/", "method": "GET", "durationMs": -1}`,
		},
		{
			name:    "status code out of range",
			payload: `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "path": "/", "method": "GET", "statusCode": 1000}`,
		},
		{
			name:    "path too long",
			payload: `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "path": "/` + strings.Repeat("a", 2049) + `", "method": "GET"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No Log expectation: invalid payloads never reach the buffer.
			mockBuffer := mocks.NewMockHitLogger(ctrl)
			service := NewHitService(mockBuffer)

			hit, err := service.Ingest(context.Background(), strings.NewReader(tt.payload))
			assert.Nil(t, hit)
			require.Error(t, err)

			svcErr, ok := svcerrors.As(err)
			require.True(t, ok)
			assert.Equal(t, "ING_1000", svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
		})
	}
}

func TestHitService_Ingest_RejectsOversizedBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBuffer := mocks.NewMockHitLogger(ctrl)
	service := NewHitService(mockBuffer)

	oversized := strings.Repeat("x", maxHitBytes+1)

	hit, err := service.Ingest(context.Background(), strings.NewReader(oversized))
	assert.Nil(t, hit)
	require.Error(t, err)

	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "ING_1000", svcErr.Code)
}
