package repository

import (
	"context"
	"encoding/json"

	"mentormatch/internal/database"
	"mentormatch/internal/domain/match"

	"github.com/google/uuid"
)

type MatchRepository interface {
	Insert(ctx context.Context, m match.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (match.Match, error)
	FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]match.Match, error)
	FindByMenteeID(ctx context.Context, menteeID uuid.UUID) ([]match.Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Insert(ctx context.Context, m match.Match) error {
	doc, err := json.Marshal(m)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO mentorship_matches (id, mentor_id, mentee_id, doc, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.MentorID, m.MenteeID, doc, m.CreatedAt,
	)
	return err
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Match, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM mentorship_matches WHERE id = $1`, id)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if isNoRows(err) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, err
	}

	var m match.Match
	if err := json.Unmarshal(raw, &m); err != nil {
		return match.Match{}, err
	}
	return m, nil
}

func (r *PostgresMatchRepository) FindByMentorID(ctx context.Context, mentorID uuid.UUID) ([]match.Match, error) {
	return r.findByColumn(ctx, "mentor_id", mentorID)
}

func (r *PostgresMatchRepository) FindByMenteeID(ctx context.Context, menteeID uuid.UUID) ([]match.Match, error) {
	return r.findByColumn(ctx, "mentee_id", menteeID)
}

func (r *PostgresMatchRepository) findByColumn(ctx context.Context, column string, id uuid.UUID) ([]match.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM mentorship_matches WHERE `+column+` = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Match, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var m match.Match
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
