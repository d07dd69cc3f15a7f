package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS probe_cache (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		exists_flag INTEGER NOT NULL,
		confidence REAL NOT NULL,
		status_code INTEGER,
		metadata TEXT,
		checked_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL,
		UNIQUE(username, platform)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_probe_cache_expires ON probe_cache(expires_at);`,
	`CREATE INDEX IF NOT EXISTS idx_probe_cache_lookup ON probe_cache(username, platform);`,
}

// Migrate ensures the required database tables exist.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	for _, statement := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("apply store schema: %w", err)
		}
	}

	return nil
}
