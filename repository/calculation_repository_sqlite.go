package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pyme-calc/domain"

	_ "modernc.org/sqlite"
)

// CalculationRepositorySQLite persists the history in a SQLite file.
type CalculationRepositorySQLite struct {
	db *sql.DB
}

// NewCalculationRepositorySQLite opens dbPath, creating it if needed, and
// applies pending migrations.
func NewCalculationRepositorySQLite(dbPath string) (*CalculationRepositorySQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &CalculationRepositorySQLite{db: db}, nil
}

func (r *CalculationRepositorySQLite) Save(ctx context.Context, record domain.CalculationRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, kind, input, output, created_at) VALUES (?, ?, ?, ?, ?)`,
		record.ID.String(),
		record.Kind,
		string(record.Input),
		string(record.Output),
		record.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (r *CalculationRepositorySQLite) Recent(ctx context.Context, limit int) ([]domain.CalculationRecord, error) {
	if limit <= 0 {
		limit = -1 // sin límite
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, input, output, created_at FROM calculations
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CalculationRecord{}
	for rows.Next() {
		var (
			id, kind, input, output string
			createdAt               int64
		)
		if err := rows.Scan(&id, &kind, &input, &output, &createdAt); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse calculation id %q: %w", id, err)
		}
		records = append(records, domain.CalculationRecord{
			ID:        parsed,
			Kind:      kind,
			Input:     []byte(input),
			Output:    []byte(output),
			CreatedAt: time.Unix(0, createdAt).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}
	return records, nil
}

func (r *CalculationRepositorySQLite) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
