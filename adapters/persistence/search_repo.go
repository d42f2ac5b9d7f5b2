package persistence

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/J33rry/predusk/internal/domain/search"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type postgresSearchRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSearchRepo(db *pgxpool.Pool, logger logger.Logger) search.Repository {
	return &postgresSearchRepo{db: db, logger: logger}
}

var psqlSearch = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeTerm builds the case-insensitive substring pattern shared by all
// keyword searches. Lowercasing both sides keeps LIKE semantics identical
// across collations.
func likeTerm(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

func (r *postgresSearchRepo) SearchProfiles(ctx context.Context, query string) ([]search.ProfileHit, error) {
	term := likeTerm(query)
	builder := psqlSearch.Select("id, name, email, summary, skills").
		From("profiles").
		Where(sq.Or{
			sq.Expr("LOWER(name) LIKE ?", term),
			sq.Expr("LOWER(summary) LIKE ?", term),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE LOWER(s) LIKE ?)", term),
		}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build profile search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search profiles", err)
	}
	defer rows.Close()

	hits := make([]search.ProfileHit, 0)
	for rows.Next() {
		var h search.ProfileHit
		if err := rows.Scan(&h.ID, &h.Name, &h.Email, &h.Summary, &h.Skills); err != nil {
			return nil, apperror.NewInternal("failed to scan profile hit", err)
		}
		if h.Skills == nil {
			h.Skills = []string{}
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating profile hits", err)
	}
	return hits, nil
}

func (r *postgresSearchRepo) SearchProjects(ctx context.Context, query string) ([]search.ProjectHit, error) {
	term := likeTerm(query)
	builder := psqlSearch.Select("id, title, description, skills").
		From("projects").
		Where(sq.Or{
			sq.Expr("LOWER(title) LIKE ?", term),
			sq.Expr("LOWER(description) LIKE ?", term),
			sq.Expr("EXISTS (SELECT 1 FROM unnest(skills) AS s WHERE LOWER(s) LIKE ?)", term),
		}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search projects", err)
	}
	defer rows.Close()

	hits := make([]search.ProjectHit, 0)
	for rows.Next() {
		var h search.ProjectHit
		if err := rows.Scan(&h.ID, &h.Title, &h.Description, &h.Skills); err != nil {
			return nil, apperror.NewInternal("failed to scan project hit", err)
		}
		if h.Skills == nil {
			h.Skills = []string{}
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project hits", err)
	}
	return hits, nil
}

func (r *postgresSearchRepo) SearchWork(ctx context.Context, query string) ([]search.WorkHit, error) {
	term := likeTerm(query)
	builder := psqlSearch.Select("id, role, company, summary").
		From("work_experiences").
		Where(sq.Or{
			sq.Expr("LOWER(role) LIKE ?", term),
			sq.Expr("LOWER(company) LIKE ?", term),
			sq.Expr("LOWER(summary) LIKE ?", term),
		}).
		OrderBy("created_at DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build work search query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to search work experiences", err)
	}
	defer rows.Close()

	hits := make([]search.WorkHit, 0)
	for rows.Next() {
		var h search.WorkHit
		if err := rows.Scan(&h.ID, &h.Role, &h.Company, &h.Summary); err != nil {
			return nil, apperror.NewInternal("failed to scan work hit", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work hits", err)
	}
	return hits, nil
}
