package repository

import (
	"context"
	"encoding/json"

	"mentormatch/internal/database"
	"mentormatch/internal/domain/session"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Insert(ctx context.Context, s session.Session) error
	CountByMatchID(ctx context.Context, matchID uuid.UUID) (int, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]session.Session, error)
}

type PostgresSessionRepository struct {
	db database.DB
}

func NewPostgresSessionRepository(db database.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Insert(ctx context.Context, s session.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO mentorship_sessions (id, match_id, mentor_id, mentee_id, doc, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.MatchID, s.MentorID, s.MenteeID, doc, s.CreatedAt,
	)
	return err
}

func (r *PostgresSessionRepository) CountByMatchID(ctx context.Context, matchID uuid.UUID) (int, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM mentorship_sessions WHERE match_id = $1`, matchID)

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresSessionRepository) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM mentorship_sessions WHERE mentor_id = $1 OR mentee_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]session.Session, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var s session.Session
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
