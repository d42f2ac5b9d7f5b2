package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/project"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, profile_id, title, description, links, skills, created_at"

func scanProjectRow(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var linksBytes []byte

	err := row.Scan(
		&p.ID,
		&p.ProfileID,
		&p.Title,
		&p.Description,
		&linksBytes,
		&p.Skills,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	if err := json.Unmarshal(linksBytes, &p.Links); err != nil {
		l.Warn("Failed to unmarshal project links", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Links = project.Links{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}

	return p, nil
}

func scanProjectRows(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProjectRow(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) CreateBatch(ctx context.Context, projects []*project.Project) error {
	if len(projects) == 0 {
		return nil
	}

	builder := psqlProject.Insert("projects").
		Columns("id", "profile_id", "title", "description", "links", "skills", "created_at")

	for _, p := range projects {
		linksBytes, err := json.Marshal(p.Links)
		if err != nil {
			return apperror.NewInternal("failed to marshal project links", err)
		}
		builder = builder.Values(p.ID, p.ProfileID, p.Title, p.Description, linksBytes, p.Skills, p.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert projects query", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert projects", err)
	}
	return nil
}

func (r *postgresProjectRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by profile", err)
	}

	return scanProjectRows(rows, r.logger)
}

func (r *postgresProjectRepo) ListAll(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list all projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjectRows(rows, r.logger)
}

func (r *postgresProjectRepo) ListBySkill(ctx context.Context, skill string) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		Where(sq.Expr("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE LOWER(s) = ?)", strings.ToLower(skill))).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects by skill query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by skill", err)
	}

	return scanProjectRows(rows, r.logger)
}
