package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultHistoryLimit is the number of serve summaries retained
	DefaultHistoryLimit = 50
	// DefaultRecordTTL expires the history when the server stops serving
	DefaultRecordTTL = 7 * 24 * time.Hour
)

// ServeRecord summarizes one successful serve of the watched payload. It is
// observability data only; the payload itself is never cached here.
type ServeRecord struct {
	ServedAt   time.Time `json:"servedAt"`
	Found      bool      `json:"found"`
	TotalCount int       `json:"totalCount"`
	GroupCount int       `json:"groupCount"`
	ElapsedMS  int64     `json:"elapsedMs"`
}

// Store handles Redis operations for the serve history
type Store struct {
	client *redis.Client
	limit  int64
}

// NewStore creates a new Redis history store
func NewStore(client *redis.Client, limit int) *Store {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Store{
		client: client,
		limit:  int64(limit),
	}
}

// RecordServe pushes a serve summary onto the history list and trims it to
// the configured limit. Best effort: callers log failures and move on.
func (s *Store) RecordServe(ctx context.Context, rec ServeRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal serve record: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.LPush(ctx, ServeHistoryKey(), data)
	pipe.LTrim(ctx, ServeHistoryKey(), 0, s.limit-1)
	pipe.Expire(ctx, ServeHistoryKey(), DefaultRecordTTL)
	pipe.Set(ctx, LastServeKey(), data, DefaultRecordTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record serve: %w", err)
	}
	return nil
}

// RecentServes returns up to n serve summaries, newest first. Records that
// fail to decode are skipped.
func (s *Store) RecentServes(ctx context.Context, n int) ([]ServeRecord, error) {
	if n <= 0 || int64(n) > s.limit {
		n = int(s.limit)
	}

	raw, err := s.client.LRange(ctx, ServeHistoryKey(), 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read serve history: %w", err)
	}

	records := make([]ServeRecord, 0, len(raw))
	for _, item := range raw {
		var rec ServeRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// LastServe returns the most recent serve summary, nil when none exists.
func (s *Store) LastServe(ctx context.Context) (*ServeRecord, error) {
	data, err := s.client.Get(ctx, LastServeKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read last serve: %w", err)
	}

	var rec ServeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last serve: %w", err)
	}
	return &rec, nil
}
