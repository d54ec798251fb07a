package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// advisoryLockKey serializes deployers racing to migrate the same database.
const advisoryLockKey = 740215839

var scriptNameRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Runner applies versioned V<N>__<name>.sql scripts from Dir exactly once,
// recording each in a schema_migrations ledger keyed by version and checksum.
type Runner struct {
	Dir    string
	Logger *zap.Logger
}

type script struct {
	version  int64
	name     string
	filename string
	sql      string
	checksum string
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("migration: nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scripts, err := readScripts(r.Dir)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		logger.Info("no migration scripts found", zap.String("dir", r.Dir))
		return nil
	}

	if err := ensureLedger(ctx, db); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, advisoryLockKey); err != nil {
		return fmt.Errorf("migration: acquire lock: %w", err)
	}
	defer func() {
		_, _ = db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, advisoryLockKey)
	}()

	applied, err := appliedChecksums(ctx, db)
	if err != nil {
		return err
	}

	for _, s := range scripts {
		if sum, ok := applied[s.version]; ok {
			if sum != s.checksum {
				return fmt.Errorf("migration: checksum drift for version %d (%s)", s.version, s.filename)
			}
			continue
		}
		if err := apply(ctx, db, s); err != nil {
			return err
		}
		logger.Info("migration applied",
			zap.Int64("version", s.version),
			zap.String("file", s.filename),
		)
	}

	return nil
}

// readScripts parses every V<N>__<name>.sql entry in dir, sorted by version.
// A missing directory means there is nothing to run.
func readScripts(dir string) ([]script, error) {
	if strings.TrimSpace(dir) == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(filepath.Dir(exe), "migrations")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	scripts := make([]script, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		parts := scriptNameRe.FindStringSubmatch(e.Name())
		if parts == nil {
			continue
		}

		version, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration: bad version in %s", e.Name())
		}

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(b))
		if body == "" {
			return nil, fmt.Errorf("migration: empty script %s", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		scripts = append(scripts, script{
			version:  version,
			name:     parts[2],
			filename: e.Name(),
			sql:      body,
			checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(scripts, func(i, j int) bool { return scripts[i].version < scripts[j].version })
	for i := 1; i < len(scripts); i++ {
		if scripts[i].version == scripts[i-1].version {
			return nil, fmt.Errorf("migration: duplicate version %d", scripts[i].version)
		}
	}

	return scripts, nil
}

func ensureLedger(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func appliedChecksums(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var version int64
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		out[version] = checksum
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, s script) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, s.sql); err != nil {
		return fmt.Errorf("migration: apply %s: %w", s.filename, err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`,
		s.version, s.name, s.checksum,
	); err != nil {
		return err
	}

	return tx.Commit()
}
