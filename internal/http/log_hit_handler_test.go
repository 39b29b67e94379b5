package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hit-reports/internal/ingestors/mocks"
	"hit-reports/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogHitHandler_Handle_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHitService := mocks.NewMockHitService(ctrl)
	handler := NewLogHitHandler(mockHitService)

	body := `{"logged": "2025-12-28T18:03:15Z", "host": "intranet", "path": "/", "method": "GET"}`
	mockHitService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r io.Reader) (*models.Hit, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.JSONEq(t, body, string(data))
			return &models.Hit{ID: "hit-1", Logged: time.Now()}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/hits", strings.NewReader(body))
	rec := httptest.NewRecorder()

	err := handler.Handle(rec, req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code, "202 acknowledges buffering, not persistence")
	assert.Empty(t, rec.Body.String())
}

func TestLogHitHandler_Handle_IngestErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHitService := mocks.NewMockHitService(ctrl)
	handler := NewLogHitHandler(mockHitService)

	ingestErr := assert.AnError
	mockHitService.EXPECT().
		Ingest(gomock.Any(), gomock.Any()).
		Return(nil, ingestErr)

	req := httptest.NewRequest(http.MethodPost, "/hits", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	err := handler.Handle(rec, req)
	assert.ErrorIs(t, err, ingestErr)
	assert.NotEqual(t, http.StatusAccepted, rec.Code)
}
