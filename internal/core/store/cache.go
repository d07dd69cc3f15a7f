package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/traceprint/traceprint/internal/core"
)

// GetCachedProbe returns a cached probe result if it is still valid.
func (s *Store) GetCachedProbe(ctx context.Context, username, platformID string) (*core.ProbeResult, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	username = strings.TrimSpace(username)
	platformID = strings.TrimSpace(platformID)
	if username == "" || platformID == "" {
		return nil, errors.New("cache username and platform are required")
	}

	var (
		profileURL   string
		existsFlag   int
		confidence   float64
		statusCode   sql.NullInt64
		metadataJSON sql.NullString
		checkedAt    int64
		expiresAt    int64
	)

	row := s.DB.QueryRowContext(ctx, `
		SELECT url, exists_flag, confidence, status_code, metadata, checked_at, expires_at
		FROM probe_cache
		WHERE username = ? AND platform = ? AND expires_at > ?
	`, username, platformID, time.Now().UTC().Unix())

	if err := row.Scan(&profileURL, &existsFlag, &confidence, &statusCode, &metadataJSON, &checkedAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch cached probe: %w", err)
	}

	var metadata map[string]string
	if metadataJSON.Valid && metadataJSON.String != "" {
		if err := json.Unmarshal([]byte(metadataJSON.String), &metadata); err != nil {
			return nil, fmt.Errorf("decode cached probe: %w", err)
		}
	}

	checked := time.Unix(checkedAt, 0).UTC()
	expires := time.Unix(expiresAt, 0).UTC()

	return &core.ProbeResult{
		Platform:   platformID,
		Username:   username,
		URL:        profileURL,
		Exists:     existsFlag != 0,
		Metadata:   metadata,
		Confidence: confidence,
		CheckedAt:  checked,
		Provenance: core.Provenance{
			ResolvedAt:     checked,
			StatusCode:     int(statusCode.Int64),
			FromCache:      true,
			CacheExpiresAt: &expires,
		},
	}, nil
}

// SetCachedProbe stores a probe result with the given TTL. Existing entries
// for the same username/platform pair are replaced.
func (s *Store) SetCachedProbe(ctx context.Context, result *core.ProbeResult, ttl time.Duration) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}
	if result == nil {
		return errors.New("probe result is required")
	}
	if ttl <= 0 {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	var metadataJSON any
	if len(result.Metadata) > 0 {
		encoded, err := json.Marshal(result.Metadata)
		if err != nil {
			return fmt.Errorf("encode cached probe: %w", err)
		}
		metadataJSON = string(encoded)
	}

	existsFlag := 0
	if result.Exists {
		existsFlag = 1
	}

	now := time.Now().UTC()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO probe_cache (username, platform, url, exists_flag, confidence, status_code, metadata, checked_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username, platform) DO UPDATE SET
			url = excluded.url,
			exists_flag = excluded.exists_flag,
			confidence = excluded.confidence,
			status_code = excluded.status_code,
			metadata = excluded.metadata,
			checked_at = excluded.checked_at,
			expires_at = excluded.expires_at
	`, result.Username, result.Platform, result.URL, existsFlag, result.Confidence,
		result.Provenance.StatusCode, metadataJSON, now.Unix(), now.Add(ttl).Unix())
	if err != nil {
		return fmt.Errorf("write cached probe: %w", err)
	}

	return nil
}

// PruneExpired removes cache rows whose TTL has elapsed.
func (s *Store) PruneExpired(ctx context.Context) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM probe_cache WHERE expires_at <= ?`, time.Now().UTC().Unix())
	if err != nil {
		return 0, fmt.Errorf("prune probe cache: %w", err)
	}
	removed, _ := res.RowsAffected()
	return removed, nil
}
