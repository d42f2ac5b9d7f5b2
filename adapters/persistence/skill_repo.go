package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/J33rry/predusk/internal/domain/skill"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

func (r *postgresSkillRepo) ProfileSkills(ctx context.Context) ([]string, error) {
	query := `SELECT skills FROM profiles ORDER BY created_at ASC LIMIT 1`

	var skills []string
	err := r.db.QueryRow(ctx, query).Scan(&skills)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, apperror.NewInternal("failed to query profile skills", err)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}

func (r *postgresSkillRepo) ProjectSkillRows(ctx context.Context) ([][]string, error) {
	query := `SELECT skills FROM projects ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query project skills", err)
	}
	defer rows.Close()

	skillRows := make([][]string, 0)
	for rows.Next() {
		var skills []string
		if err := rows.Scan(&skills); err != nil {
			return nil, apperror.NewInternal("failed to scan project skills", err)
		}
		skillRows = append(skillRows, skills)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project skill rows", err)
	}
	return skillRows, nil
}
