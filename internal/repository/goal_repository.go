package repository

import (
	"context"
	"encoding/json"

	"mentormatch/internal/database"
	"mentormatch/internal/domain/goal"

	"github.com/google/uuid"
)

type GoalRepository interface {
	Insert(ctx context.Context, g goal.Goal) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error)
}

type PostgresGoalRepository struct {
	db database.DB
}

func NewPostgresGoalRepository(db database.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func (r *PostgresGoalRepository) Insert(ctx context.Context, g goal.Goal) error {
	doc, err := json.Marshal(g)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO goals (id, user_id, doc, created_at) VALUES ($1, $2, $3, $4)`,
		g.ID, g.UserID, doc, g.CreatedAt,
	)
	return err
}

func (r *PostgresGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM goals WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]goal.Goal, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var g goal.Goal
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
