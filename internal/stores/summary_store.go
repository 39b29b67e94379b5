package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/filestorages"
	"hit-reports/internal/shared/ulid"
)

const summaryCollection = "summaries"

// SummaryStore appends generation summaries. Summaries are write-once audit
// records, so the store only exposes Append.
//
//go:generate mockgen -source=summary_store.go -destination=./mocks/summary_store_mock.go -package=mocks
type SummaryStore interface {
	Append(ctx context.Context, summary *models.GenerationSummary) error
}

type summaryStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSummaryStore(fileStorage filestorages.FileStorage, database string) SummaryStore {
	return &summaryStore{fileStorage: fileStorage, dir: database + "/" + summaryCollection}
}

func (s *summaryStore) Append(ctx context.Context, summary *models.GenerationSummary) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal generation summary: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", s.dir, ulid.NewULID())
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return fmt.Errorf("failed to put generation summary: %w", err)
	}
	return nil
}
