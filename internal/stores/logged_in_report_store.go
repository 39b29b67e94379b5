package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/filestorages"
)

const loggedInCollection = "logged_in"

// ErrReportNotFound is returned when no report document exists for the
// requested composite key.
var ErrReportNotFound = errors.New("report not found")

// LoggedInReportStore owns the logged-in report documents, keyed by
// (date, host). Find/Upsert form the read-modify-write cycle the logged-in
// provider runs per generation; callers serialize overlapping cycles for the
// same key.
//
//go:generate mockgen -source=logged_in_report_store.go -destination=./mocks/logged_in_report_store_mock.go -package=mocks
type LoggedInReportStore interface {
	Find(ctx context.Context, date, host string) (*models.LoggedInReport, error)
	Upsert(ctx context.Context, report *models.LoggedInReport) error
}

type loggedInReportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLoggedInReportStore(fileStorage filestorages.FileStorage, database string) LoggedInReportStore {
	return &loggedInReportStore{fileStorage: fileStorage, dir: database + "/" + loggedInCollection}
}

func (s *loggedInReportStore) Find(ctx context.Context, date, host string) (*models.LoggedInReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key(date, host))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get logged-in report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read logged-in report: %w", err)
	}
	var report models.LoggedInReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logged-in report: %w", err)
	}
	return &report, nil
}

func (s *loggedInReportStore) Upsert(ctx context.Context, report *models.LoggedInReport) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal logged-in report: %w", err)
	}

	key := s.key(report.Date, report.Host)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put logged-in report: %w", err)
	}
	return nil
}

func (s *loggedInReportStore) key(date, host string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, date, sanitizeHost(host))
}

// sanitizeHost makes a host name safe to use as a single key path component.
func sanitizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return replacer.Replace(host)
}
