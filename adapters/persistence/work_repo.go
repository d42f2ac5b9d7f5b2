package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/J33rry/predusk/internal/domain/work"
	"github.com/J33rry/predusk/pkg/apperror"
	"github.com/J33rry/predusk/pkg/logger"
)

type postgresWorkRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresWorkRepo(db *pgxpool.Pool, logger logger.Logger) work.Repository {
	return &postgresWorkRepo{db: db, logger: logger}
}

var psqlWork = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const workColumns = "id, profile_id, role, company, location, start_date, end_date, summary, highlights, created_at"

func scanWorkRow(row pgx.Row, l logger.Logger) (*work.WorkExperience, error) {
	w := &work.WorkExperience{}
	var highlightsBytes []byte

	err := row.Scan(
		&w.ID,
		&w.ProfileID,
		&w.Role,
		&w.Company,
		&w.Location,
		&w.StartDate,
		&w.EndDate,
		&w.Summary,
		&highlightsBytes,
		&w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("Work experience", "")
		}
		return nil, apperror.NewInternal("failed to scan work experience row", err)
	}

	if err := json.Unmarshal(highlightsBytes, &w.Highlights); err != nil {
		l.Warn("Failed to unmarshal work highlights", zap.String("work_id", w.ID.String()), zap.Error(err))
		w.Highlights = []work.Highlight{}
	}
	if w.Highlights == nil {
		w.Highlights = []work.Highlight{}
	}

	return w, nil
}

func (r *postgresWorkRepo) CreateBatch(ctx context.Context, experiences []*work.WorkExperience) error {
	if len(experiences) == 0 {
		return nil
	}

	builder := psqlWork.Insert("work_experiences").
		Columns("id", "profile_id", "role", "company", "location", "start_date", "end_date", "summary", "highlights", "created_at")

	for _, w := range experiences {
		highlightsBytes, err := json.Marshal(w.Highlights)
		if err != nil {
			return apperror.NewInternal("failed to marshal work highlights", err)
		}
		builder = builder.Values(w.ID, w.ProfileID, w.Role, w.Company, w.Location, w.StartDate, w.EndDate, w.Summary, highlightsBytes, w.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert work experiences query", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to insert work experiences", err)
	}
	return nil
}

func (r *postgresWorkRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*work.WorkExperience, error) {
	builder := psqlWork.Select(workColumns).
		From("work_experiences").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list work experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work experiences", err)
	}
	defer rows.Close()

	experiences := make([]*work.WorkExperience, 0)
	for rows.Next() {
		w, err := scanWorkRow(rows, r.logger)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return experiences, nil
}
