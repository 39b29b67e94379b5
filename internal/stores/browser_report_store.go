package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/filestorages"
)

const browserCollection = "browsers"

// BrowserReportStore owns the per-day browser rollup documents, keyed by
// (date, host), with the same find-one/upsert contract as the logged-in
// store.
//
//go:generate mockgen -source=browser_report_store.go -destination=./mocks/browser_report_store_mock.go -package=mocks
type BrowserReportStore interface {
	Find(ctx context.Context, date, host string) (*models.BrowserReport, error)
	Upsert(ctx context.Context, report *models.BrowserReport) error
}

type browserReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewBrowserReportStore(fileStorage filestorages.FileStorage, database string) BrowserReportStore {
	return &browserReportStore{fileStorage: fileStorage, dir: database + "/" + browserCollection}
}

func (s *browserReportStore) Find(ctx context.Context, date, host string) (*models.BrowserReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key(date, host))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get browser report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read browser report: %w", err)
	}
	var report models.BrowserReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal browser report: %w", err)
	}
	return &report, nil
}

func (s *browserReportStore) Upsert(ctx context.Context, report *models.BrowserReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal browser report: %w", err)
	}

	key := s.key(report.Date, report.Host)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put browser report: %w", err)
	}
	return nil
}

func (s *browserReportStore) key(date, host string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, date, sanitizeHost(host))
}
