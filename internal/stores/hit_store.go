package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/filestorages"
	"hit-reports/internal/shared/ulid"
)

const hitCollection = "hits"

// HitStore persists hit batches and answers inclusive time-range queries over
// them. Each bulk insert becomes one immutable batch document whose key
// carries the batch's [min,max] Logged bounds, so a range query can prune
// batches by key before loading any document.
//
//go:generate mockgen -source=hit_store.go -destination=./mocks/hit_store_mock.go -package=mocks
type HitStore interface {
	// BulkInsert writes the batch as a single create-only document.
	BulkInsert(ctx context.Context, hits []*models.Hit) error

	// QueryRange returns every hit with Logged in [start, end], both bounds
	// inclusive.
	QueryRange(ctx context.Context, start, end time.Time) ([]*models.Hit, error)
}

type hitStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewHitStore(fileStorage filestorages.FileStorage, database string) HitStore {
	return &hitStore{fileStorage: fileStorage, dir: database + "/" + hitCollection}
}

func (s *hitStore) BulkInsert(ctx context.Context, hits []*models.Hit) error {
	if len(hits) == 0 {
		return nil
	}

	min, max := hits[0].Logged, hits[0].Logged
	for _, hit := range hits[1:] {
		if hit.Logged.Before(min) {
			min = hit.Logged
		}
		if hit.Logged.After(max) {
			max = hit.Logged
		}
	}

	jsonData, err := json.Marshal(hits)
	if err != nil {
		return fmt.Errorf("failed to marshal hit batch: %w", err)
	}

	key := fmt.Sprintf("%s/%020d-%020d-%s.json", s.dir, min.UnixNano(), max.UnixNano(), ulid.NewULID())
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return fmt.Errorf("failed to put hit batch: %w", err)
	}
	return nil
}

func (s *hitStore) QueryRange(ctx context.Context, start, end time.Time) ([]*models.Hit, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list hit batches: %w", err)
	}

	var hits []*models.Hit
	for _, key := range keys {
		batchMin, batchMax, ok := parseBatchBounds(key)
		if ok && (batchMax.Before(start) || batchMin.After(end)) {
			continue
		}

		batch, err := s.readBatch(ctx, key)
		if err != nil {
			return nil, err
		}
		for _, hit := range batch {
			if hit.Logged.Before(start) || hit.Logged.After(end) {
				continue
			}
			hits = append(hits, hit)
		}
	}
	return hits, nil
}

func (s *hitStore) readBatch(ctx context.Context, key string) ([]*models.Hit, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get hit batch %q: %w", key, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read hit batch %q: %w", key, err)
	}
	var batch []*models.Hit
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hit batch %q: %w", key, err)
	}
	return batch, nil
}

// parseBatchBounds recovers the [min,max] Logged bounds encoded in a batch
// key. Keys that do not follow the naming scheme report ok=false and are
// loaded unconditionally.
func parseBatchBounds(key string) (min, max time.Time, ok bool) {
	name := key
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, ".json")

	parts := strings.SplitN(name, "-", 3)
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, false
	}
	minNanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	maxNanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return time.Unix(0, minNanos), time.Unix(0, maxNanos), true
}
