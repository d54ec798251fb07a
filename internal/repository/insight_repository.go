package repository

import (
	"context"
	"encoding/json"
	"time"

	"mentormatch/internal/database"
	"mentormatch/internal/domain/insight"

	"github.com/google/uuid"
)

type InsightRepository interface {
	Insert(ctx context.Context, in insight.Insight) error
	FindRecentByUserID(ctx context.Context, userID uuid.UUID, since time.Time) ([]insight.Insight, error)
	FindLatestByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]insight.Insight, error)
}

type PostgresInsightRepository struct {
	db database.DB
}

func NewPostgresInsightRepository(db database.DB) *PostgresInsightRepository {
	return &PostgresInsightRepository{db: db}
}

func (r *PostgresInsightRepository) Insert(ctx context.Context, in insight.Insight) error {
	doc, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO career_insights (id, user_id, doc, created_at) VALUES ($1, $2, $3, $4)`,
		in.ID, in.UserID, doc, in.CreatedAt,
	)
	return err
}

func (r *PostgresInsightRepository) FindRecentByUserID(ctx context.Context, userID uuid.UUID, since time.Time) ([]insight.Insight, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM career_insights WHERE user_id = $1 AND created_at >= $2 ORDER BY created_at DESC`,
		userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInsights(rows)
}

func (r *PostgresInsightRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]insight.Insight, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT doc FROM career_insights WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInsights(rows)
}

func scanInsights(rows database.Rows) ([]insight.Insight, error) {
	out := make([]insight.Insight, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var in insight.Insight
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
