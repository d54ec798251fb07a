package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mentormatch/internal/database"
	"mentormatch/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	Insert(ctx context.Context, p profile.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
	List(ctx context.Context) ([]profile.Profile, error)

	// GetDocument returns the raw stored document, optionally constrained
	// to a role. The matching flow consumes documents, not entities.
	GetDocument(ctx context.Context, id uuid.UUID, role string) (profile.Document, error)
	ListDocumentsByRole(ctx context.Context, role string) ([]profile.Document, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Insert(ctx context.Context, p profile.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO user_profiles (id, role, doc, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Role, doc, p.CreatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM user_profiles WHERE id = $1`, id)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if isNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT doc FROM user_profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var p profile.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) GetDocument(ctx context.Context, id uuid.UUID, role string) (profile.Document, error) {
	query := `SELECT doc FROM user_profiles WHERE id = $1`
	args := []any{id}
	if role != "" {
		query += ` AND role = $2`
		args = append(args, role)
	}

	row := r.db.QueryRow(ctx, query, args...)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if isNoRows(err) {
			return nil, profile.ErrNotFound
		}
		return nil, err
	}

	var doc profile.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *PostgresProfileRepository) ListDocumentsByRole(ctx context.Context, role string) ([]profile.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM user_profiles WHERE role = $1 ORDER BY created_at`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Document, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var doc profile.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
