package stores

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/filestorages"
	"hit-reports/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSummaryStore_Append_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryStore(mockFileStorage, "hitreports")

	ctx := context.Background()
	summary := &models.GenerationSummary{
		RunAt:    time.Date(2025, 12, 28, 18, 5, 0, 0, time.UTC),
		Duration: 120 * time.Millisecond,
		Results: []models.GenerationResult{
			{Provider: "logged_in", Outcome: models.OutcomeSuccess},
			{Provider: "browsers", Outcome: models.OutcomeNotEnoughInformation, Messages: []string{"window below minimum hit count"}},
		},
	}
	expectedJSON, _ := json.Marshal(summary)
	keyPattern := regexp.MustCompile(`^hitreports/summaries/[0-9A-HJKMNP-TV-Z]{26}\.json$`)

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			assert.Regexp(t, keyPattern, key)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Append(ctx, summary)
	assert.NoError(t, err)
}

func TestSummaryStore_Append_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewSummaryStore(mockFileStorage, "hitreports")

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, errors.New("disk full"))

	err := store.Append(ctx, &models.GenerationSummary{RunAt: time.Now()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put generation summary")
}
